// Package device inspects local block devices before they are handed to zpool.
package device

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var (
	ErrNotBlockDevice = errors.New("not a block device")
	ErrMounted        = errors.New("device is mounted")
	ErrPartitionName  = errors.New("device name looks like a partition")
	ErrSizeMismatch   = errors.New("device sizes differ")
)

// Inspector answers questions about block devices. Linux implementation: Local.
type Inspector interface {
	IsBlockSpecial(path string) (bool, error)
	// Size in bytes.
	Size(path string) (int64, error)
	// IsMounted reports whether the device or one of its partitions is mounted.
	IsMounted(path string) (bool, error)
}

// LooksLikePartition reports whether the device name ends with a digit, e.g. "sda1".
// Whole nvme and mmcblk disks always end with a digit and are exempt.
func LooksLikePartition(path string) bool {
	name := filepath.Base(path)
	if name == "" || strings.HasPrefix(name, "nvme") || strings.HasPrefix(name, "mmcblk") {
		return false
	}
	return unicode.IsDigit(rune(name[len(name)-1]))
}

// CheckNames fails on the first device that looks like a partition.
func CheckNames(devices []string) error {
	for _, device := range devices {
		if LooksLikePartition(device) {
			return errors.Wrap(ErrPartitionName, device)
		}
	}
	return nil
}

// CheckUnused requires every device to be a block device that is not mounted.
func CheckUnused(inspector Inspector, devices []string) error {
	for _, device := range devices {
		isBlock, err := inspector.IsBlockSpecial(device)
		if err != nil {
			return errors.Wrapf(err, "failed to stat %s", device)
		}
		if !isBlock {
			return errors.Wrap(ErrNotBlockDevice, device)
		}
		mounted, err := inspector.IsMounted(device)
		if err != nil {
			return errors.Wrapf(err, "failed to get mount state of %s", device)
		}
		if mounted {
			return errors.Wrap(ErrMounted, device)
		}
	}
	return nil
}

// CheckSameSize requires all devices to have the size of the first one and returns that size.
func CheckSameSize(inspector Inspector, devices []string) (int64, error) {
	if len(devices) == 0 {
		return 0, nil
	}
	first, err := inspector.Size(devices[0])
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get size of %s", devices[0])
	}
	for _, device := range devices[1:] {
		size, err := inspector.Size(device)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to get size of %s", device)
		}
		if size != first {
			return 0, errors.Wrapf(ErrSizeMismatch, "%s has %d bytes, %s has %d bytes", devices[0], first, device, size)
		}
	}
	return first, nil
}
