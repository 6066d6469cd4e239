package device

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DEFAULT_SYSFS_ROOT  = "/sys"
	DEFAULT_MOUNTS_FILE = "/proc/self/mounts"
	SECTOR_SIZE         = 512
)

// Local inspects devices of the running host through /dev, sysfs and the mount table.
type Local struct {
	SysfsRoot  string
	MountsFile string
}

func NewLocal() *Local {
	return &Local{
		SysfsRoot:  DEFAULT_SYSFS_ROOT,
		MountsFile: DEFAULT_MOUNTS_FILE,
	}
}

// IsBlockSpecial follows symlinks (e.g. /dev/disk/by-id/*).
func (l *Local) IsBlockSpecial(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	mode := stat.Mode()
	return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0, nil
}

// Size reads /sys/dev/block/<major>:<minor>/size, which is in 512 byte sectors.
func (l *Local) Size(path string) (int64, error) {
	major, minor, err := deviceNumber(path)
	if err != nil {
		return 0, err
	}
	sizeFile := filepath.Join(l.SysfsRoot, "dev", "block", strconv.FormatUint(uint64(major), 10)+":"+
		strconv.FormatUint(uint64(minor), 10), "size")
	return readSectors(sizeFile)
}

func readSectors(sizeFile string) (int64, error) {
	contents, err := os.ReadFile(sizeFile)
	if err != nil {
		return 0, err
	}
	sectors, err := strconv.ParseInt(strings.TrimSpace(string(contents)), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", sizeFile)
	}
	log.Tracef("%s: %d sectors", sizeFile, sectors)
	return sectors * SECTOR_SIZE, nil
}

// IsMounted scans the mount table for the device, its resolved path, or any of its partitions.
func (l *Local) IsMounted(path string) (bool, error) {
	candidates := []string{path}
	if resolved, err := filepath.EvalSymlinks(path); err == nil && resolved != path {
		candidates = append(candidates, resolved)
	}
	file, err := os.Open(l.MountsFile)
	if err != nil {
		return false, err
	}
	defer file.Close()
	return mountedIn(bufio.NewScanner(file), candidates)
}

func mountedIn(scanner *bufio.Scanner, candidates []string) (bool, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		for _, candidate := range candidates {
			if isDeviceOrPartition(fields[0], candidate) {
				log.Debugf("%s is mounted at %s", fields[0], fields[1])
				return true, nil
			}
		}
	}
	return false, scanner.Err()
}

// "/dev/sda1" and "/dev/nvme0n1p2" are partitions of "/dev/sda" and "/dev/nvme0n1".
// Devices whose name ends in a digit need the "p" separator, so "/dev/nvme0n10" is
// not a partition of "/dev/nvme0n1".
func isDeviceOrPartition(source string, device string) bool {
	if source == device {
		return true
	}
	suffix, ok := strings.CutPrefix(source, device)
	if !ok || suffix == "" {
		return false
	}
	if isDigits(device[len(device)-1:]) {
		if suffix, ok = strings.CutPrefix(suffix, "p"); !ok {
			return false
		}
	}
	return isDigits(suffix)
}

func isDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, char := range str {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
