package zpool

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidOption = errors.New("invalid option")
)

// single token: no whitespace inside and not empty
func isToken(str string) bool {
	return len(strings.Fields(str)) == 1 && strings.TrimSpace(str) == str
}

// ValidatePoolName checks a zpool name: at least 3 chars, one token, no "/".
func ValidatePoolName(pool string) error {
	if !isToken(pool) {
		return fmt.Errorf("%w: pool %q must be a single word", ErrInvalidName, pool)
	}
	if strings.Contains(pool, "/") {
		return fmt.Errorf("%w: pool %q must not contain '/'", ErrInvalidName, pool)
	}
	if len(pool) <= 2 {
		return fmt.Errorf("%w: pool %q is too short", ErrInvalidName, pool)
	}
	return nil
}

// ValidateDatasetName checks the dataset part below a pool, e.g. "home" of "tank/home".
func ValidateDatasetName(name string) error {
	if !isToken(name) {
		return fmt.Errorf("%w: dataset %q must be a single word", ErrInvalidName, name)
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: dataset %q must not start with '/'", ErrInvalidName, name)
	}
	if len(name) <= 2 {
		return fmt.Errorf("%w: dataset %q is too short", ErrInvalidName, name)
	}
	return nil
}

// Filesystem validates pool and name and returns "pool/name".
func Filesystem(pool string, name string) (string, error) {
	if err := ValidatePoolName(pool); err != nil {
		return "", err
	}
	if err := ValidateDatasetName(name); err != nil {
		return "", err
	}
	return pool + "/" + name, nil
}

// ValidateAshift checks ashift (log2 of sector size). 0 means unset.
func ValidateAshift(ashift int) error {
	if ashift == 0 {
		return nil
	}
	if ashift < MIN_ASHIFT || ashift > MAX_ASHIFT {
		return fmt.Errorf("%w: ashift %d must be between %d and %d", ErrInvalidOption, ashift, MIN_ASHIFT, MAX_ASHIFT)
	}
	return nil
}
