package zpool

import (
	"fmt"
	"path"
	"strings"

	"github.com/jakeogh/zfstool/topology"
)

const DEFAULT_BOOT_ENVIRONMENT = "gentoo"

// RootOptions describes a bootable root pool installed below an alternate root.
type RootOptions struct {
	Name            string
	Vdevs           topology.VdevSpec
	MountPoint      string // altroot, e.g. /mnt/gentoo
	BootEnvironment string // dataset below <pool>/ROOT mounted at /
	Properties      Properties
}

func (opts RootOptions) bootEnvironment() string {
	if opts.BootEnvironment == "" {
		return DEFAULT_BOOT_ENVIRONMENT
	}
	return opts.BootEnvironment
}

// RootCommands returns the ordered argv list that creates a root pool with
// <pool>/ROOT/<be> as bootfs and copies the pool cachefile into the new system.
func RootCommands(opts RootOptions) ([][]string, error) {
	if err := ValidatePoolName(opts.Name); err != nil {
		return nil, err
	}
	if len(opts.Vdevs) == 0 {
		return nil, fmt.Errorf("%w: empty vdev spec", topology.ErrInvalidTopology)
	}
	if !strings.HasPrefix(opts.MountPoint, "/") {
		return nil, fmt.Errorf("%w: mount point %q must be absolute", ErrInvalidOption, opts.MountPoint)
	}
	be := opts.bootEnvironment()
	if err := ValidateDatasetName("ROOT/" + be); err != nil || strings.Contains(be, "/") {
		return nil, fmt.Errorf("%w: boot environment %q", ErrInvalidName, be)
	}
	props := opts.Properties
	mountPoint := path.Clean(opts.MountPoint)
	cachefile := props.cachefile()

	create := []string{"zpool", "create", "-f"}
	for _, name := range PoolFeatures[:rootPoolFeatures] {
		create = appendOpt(create, "-o", feature(name))
	}
	create = appendOpt(create, "-o", "cachefile="+cachefile)
	create = appendOpt(create, "-O",
		"atime=off",
		"compression="+props.compression(),
		"copies=1",
		"xattr=sa",
		"sharesmb=off",
		"sharenfs=off",
		"checksum="+props.checksum(),
		"dedup=off",
		"utf8only=off",
	)
	create = append(create, "-m", "none", "-R", mountPoint, opts.Name)
	create = append(create, opts.Vdevs.Args()...)

	rootDataset := opts.Name + "/ROOT"
	bootfs := rootDataset + "/" + be
	return [][]string{
		create,
		{"zfs", "create", "-o", "mountpoint=none", rootDataset},
		{"zfs", "create", "-o", "mountpoint=/", bootfs},
		{"zpool", "set", "bootfs=" + bootfs, opts.Name},
		{"mkdir", "-p", path.Join(mountPoint, "etc/zfs")},
		{"cp", cachefile, path.Join(mountPoint, "etc/zfs/zpool.cache")},
	}, nil
}
