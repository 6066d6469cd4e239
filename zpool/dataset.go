package zpool

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jakeogh/zfstool/util"
)

// FilesystemOptions describes a "zfs create" of pool/name.
type FilesystemOptions struct {
	Pool        string
	Name        string
	Encrypt     bool
	Exec        bool   // allow executables; "exec=off" otherwise
	NoMount     bool   // skip "mountpoint=/pool/name"
	Reservation string // e.g. "10G"
}

// FilesystemCreateArgs returns the argv of "zfs create" for opts.
func FilesystemCreateArgs(opts FilesystemOptions) ([]string, error) {
	filesystem, err := Filesystem(opts.Pool, opts.Name)
	if err != nil {
		return nil, err
	}
	if err := validateReservation(opts.Reservation); err != nil {
		return nil, err
	}
	args := []string{"zfs", "create", "-o", "setuid=off", "-o", "devices=off"}
	if opts.Encrypt {
		args = appendOpt(args, "-o", "encryption="+ENCRYPTION_CIPHER, "keyformat=passphrase", "keylocation=prompt")
	}
	if !opts.Exec {
		args = appendOpt(args, "-o", "exec=off")
	}
	if opts.Reservation != "" {
		args = appendOpt(args, "-o", "reservation="+opts.Reservation)
	}
	if !opts.NoMount {
		args = appendOpt(args, "-o", "mountpoint=/"+filesystem)
	}
	args = append(args, filesystem)
	return args, nil
}

// Export options of "zfs set sharenfs". "acl" and "no_pnfs" make zfs set fail, do not add them.
var ShareNfsOptions = []string{
	"sync",
	"wdelay",
	"hide",
	"crossmnt",
	"secure",
	"no_all_squash",
	"no_subtree_check",
	"secure_locks",
	"mountpoint",
	"anonuid=65534",
	"anongid=65534",
	"sec=sys",
}

// ShareNfsValue returns the sharenfs property value exporting rw to subnet (e.g. 10.0.0.0/24).
func ShareNfsValue(subnet string, noRootWrite bool) (string, error) {
	if !isToken(subnet) || !strings.Contains(subnet, "/") {
		return "", fmt.Errorf("%w: subnet %q must be in address/prefix form", ErrInvalidOption, subnet)
	}
	options := append([]string{}, ShareNfsOptions...)
	options = append(options, "rw="+subnet)
	if noRootWrite {
		options = append(options, "root_squash")
	} else {
		options = append(options, "no_root_squash")
	}
	return strings.Join(options, ","), nil
}

// ShareNfsArgs returns the argv of "zfs set sharenfs=... filesystem". off disables sharing.
func ShareNfsArgs(filesystem string, subnet string, noRootWrite bool, off bool) ([]string, error) {
	if off && noRootWrite {
		return nil, fmt.Errorf("%w: off and no-root-write are mutually exclusive", ErrInvalidOption)
	}
	if !isToken(filesystem) || strings.HasPrefix(filesystem, "/") || len(filesystem) <= 2 {
		return nil, fmt.Errorf("%w: filesystem %q", ErrInvalidName, filesystem)
	}
	if off {
		return []string{"zfs", "set", "sharenfs=off", filesystem}, nil
	}
	value, err := ShareNfsValue(subnet, noRootWrite)
	if err != nil {
		return nil, err
	}
	return []string{"zfs", "set", "sharenfs=" + value, filesystem}, nil
}

// SnapshotName returns "path@__<unix seconds>".
func SnapshotName(path string, now time.Time) (string, error) {
	if !isToken(path) || strings.HasPrefix(path, "/") || len(path) <= 3 {
		return "", fmt.Errorf("%w: dataset path %q", ErrInvalidName, path)
	}
	return path + "@__" + strconv.FormatInt(now.Unix(), 10), nil
}

func SnapshotArgs(path string, now time.Time) ([]string, error) {
	name, err := SnapshotName(path, now)
	if err != nil {
		return nil, err
	}
	return []string{"zfs", "snapshot", name}, nil
}

func DestroyArgs(pool string, name string) ([]string, error) {
	filesystem, err := Filesystem(pool, name)
	if err != nil {
		return nil, err
	}
	return []string{"zfs", "destroy", filesystem}, nil
}

// "none" or a size zfs accepts, e.g. "512M", "10G".
func validateReservation(reservation string) error {
	if reservation == "" || reservation == "none" {
		return nil
	}
	if !isToken(reservation) {
		return fmt.Errorf("%w: reservation %q", ErrInvalidOption, reservation)
	}
	if _, err := util.RAMInBytes(reservation); err != nil {
		return fmt.Errorf("%w: reservation %q: %v", ErrInvalidOption, reservation, err)
	}
	return nil
}
