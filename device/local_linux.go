package device

import (
	"golang.org/x/sys/unix"
)

func deviceNumber(path string) (major uint32, minor uint32, err error) {
	var stat unix.Stat_t
	if err = unix.Stat(path, &stat); err != nil {
		return 0, 0, err
	}
	rdev := uint64(stat.Rdev)
	return unix.Major(rdev), unix.Minor(rdev), nil
}
