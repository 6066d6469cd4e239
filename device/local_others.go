//go:build !linux

package device

import "github.com/pkg/errors"

func deviceNumber(path string) (uint32, uint32, error) {
	return 0, 0, errors.Errorf("%s: block device size is only supported on linux", path)
}
