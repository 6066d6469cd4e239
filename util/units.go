package util

// from https://github.com/docker/go-units/blob/master/size.go

import (
	"fmt"
	"strconv"
	"strings"
)

// See: http://en.wikipedia.org/wiki/Binary_prefix
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
	PiB = 1024 * TiB
)

type sizeunitMap map[byte]int64

var (
	binaryMap   = sizeunitMap{'k': KiB, 'm': MiB, 'g': GiB, 't': TiB, 'p': PiB}
	binaryAbbrs = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
)

func getSizeAndUnit(size float64, base float64, _map []string) (float64, string) {
	i := 0
	unitsLimit := len(_map) - 1
	for size >= base && i < unitsLimit {
		size = size / base
		i++
	}
	return size, _map[i]
}

// BytesSize returns a human-readable size in bytes, kibibytes,
// mebibytes, gibibytes, or tebibytes (e.g. "44kiB", "17MiB").
func BytesSize(size float64) string {
	size, unit := getSizeAndUnit(size, 1024.0, binaryAbbrs)
	return fmt.Sprintf("%.4g%s", size, unit)
}

// RAMInBytes parses a human-readable size like zfs quota / reservation values
// ("10G", "1.5T", "512MiB") and returns the number of bytes.
// Units are case-insensitive and binary, the 'b' suffix is optional.
func RAMInBytes(sizeStr string) (int64, error) {
	sep := strings.LastIndexAny(sizeStr, "01234567890.")
	if sep == -1 {
		return -1, fmt.Errorf("invalid size: '%s'", sizeStr)
	}
	num, sfx := sizeStr[:sep+1], strings.ToLower(sizeStr[sep+1:])
	size, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return -1, err
	}
	if size < 0 {
		return -1, fmt.Errorf("invalid size: '%s'", sizeStr)
	}
	switch {
	case sfx == "" || sfx == "b":
		return int64(size), nil
	case len(sfx) > 3:
		return -1, fmt.Errorf("invalid suffix: '%s'", sfx)
	}
	mul, ok := binaryMap[sfx[0]]
	if !ok || (len(sfx) == 2 && sfx[1] != 'b') || (len(sfx) == 3 && sfx[1:] != "ib") {
		return -1, fmt.Errorf("invalid suffix: '%s'", sfx)
	}
	return int64(size * float64(mul)), nil
}
