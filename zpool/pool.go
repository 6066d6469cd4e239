package zpool

import (
	"fmt"
	"strconv"

	"github.com/jakeogh/zfstool/topology"
)

const (
	MIN_ASHIFT = 9
	MAX_ASHIFT = 16

	DEFAULT_COMPRESSION  = "zstd"
	DEFAULT_CHECKSUM     = "fletcher4"
	DEFAULT_PBKDF2_ITERS = 460000
	DEFAULT_CACHEFILE    = "/tmp/zpool.cache"
	ENCRYPTION_CIPHER    = "aes-256-gcm"
)

// Pool features enabled on every created pool. The first 8 are also used for root pools.
var PoolFeatures = []string{
	"async_destroy",      // Destroy filesystems asynchronously.
	"empty_bpobj",        // Snapshots use less space.
	"zstd_compress",      // independent of the compression property
	"spacemap_histogram", // Spacemaps maintain space histograms.
	"extensible_dataset", // Enhanced dataset functionality.
	"bookmarks",          // "zfs bookmark" command
	"enabled_txg",        // Record txg at which a feature is enabled
	"embedded_data",      // Blocks which compress very well use even less space.
	"large_dnode",        // Variable on-disk size of dnodes.
	"large_blocks",       // Support for blocks larger than 128KB.
}

const rootPoolFeatures = 8

// Properties are the tunables of the builders; zero values fall back to the defaults.
type Properties struct {
	Compression string
	Checksum    string
	Pbkdf2Iters int64
	Cachefile   string
}

func (p Properties) compression() string {
	if p.Compression == "" {
		return DEFAULT_COMPRESSION
	}
	return p.Compression
}

func (p Properties) checksum() string {
	if p.Checksum == "" {
		return DEFAULT_CHECKSUM
	}
	return p.Checksum
}

func (p Properties) pbkdf2Iters() int64 {
	if p.Pbkdf2Iters <= 0 {
		return DEFAULT_PBKDF2_ITERS
	}
	return p.Pbkdf2Iters
}

func (p Properties) cachefile() string {
	if p.Cachefile == "" {
		return DEFAULT_CACHEFILE
	}
	return p.Cachefile
}

// CreateOptions describes a "zpool create" invocation of a data pool.
type CreateOptions struct {
	Name       string
	Vdevs      topology.VdevSpec
	Ashift     int // 0: let zfs decide
	Encrypt    bool
	Force      bool
	Properties Properties
}

func feature(name string) string {
	return "feature@" + name + "=enabled"
}

func appendOpt(args []string, flag string, kv ...string) []string {
	for _, s := range kv {
		args = append(args, flag, s)
	}
	return args
}

// CreateArgs returns the full argv of "zpool create" for a data pool.
func CreateArgs(opts CreateOptions) ([]string, error) {
	if err := ValidatePoolName(opts.Name); err != nil {
		return nil, err
	}
	if err := ValidateAshift(opts.Ashift); err != nil {
		return nil, err
	}
	if len(opts.Vdevs) == 0 {
		return nil, fmt.Errorf("%w: empty vdev spec", topology.ErrInvalidTopology)
	}
	props := opts.Properties
	args := []string{"zpool", "create"}
	if opts.Force {
		args = append(args, "-f")
	}
	for _, name := range PoolFeatures {
		args = appendOpt(args, "-o", feature(name))
	}
	if opts.Ashift != 0 {
		args = appendOpt(args, "-o", "ashift="+strconv.Itoa(opts.Ashift))
	}
	args = appendOpt(args, "-o", "listsnapshots=on")
	if opts.Encrypt {
		args = appendOpt(args, "-o", feature("encryption"))
		args = appendOpt(args, "-O",
			"encryption="+ENCRYPTION_CIPHER,
			"keyformat=passphrase",
			"keylocation=prompt",
			"pbkdf2iters="+strconv.FormatInt(props.pbkdf2Iters(), 10),
		)
	}
	args = appendOpt(args, "-O",
		"atime=off", // dont write when reading
		"compression="+props.compression(),
		"copies=1",
		"xattr=off",
		"sharesmb=off",
		"sharenfs=off",
		"checksum="+props.checksum(),
		"dedup=off",
		"utf8only=off",
		"mountpoint=none", // dont mount raw zpools
		"setuid=off",      // only needed on rootfs
	)
	args = append(args, opts.Name)
	args = append(args, opts.Vdevs.Args()...)
	return args, nil
}
