package topology

import (
	"fmt"
	"strings"
)

// RaidKind is the redundancy layout requested on the command line.
type RaidKind string

const (
	RaidDisk    RaidKind = "disk"
	RaidMirror  RaidKind = "mirror"
	RaidZ1      RaidKind = "raidz1"
	RaidZ2      RaidKind = "raidz2"
	RaidZ3      RaidKind = "raidz3"
	RaidZ10     RaidKind = "raidz10"
	RaidZ50     RaidKind = "raidz50"
	RaidZ60     RaidKind = "raidz60"
	unknownRaid RaidKind = ""
)

// All accepted raid kinds, in help order.
var RaidKinds = []RaidKind{RaidDisk, RaidMirror, RaidZ1, RaidZ2, RaidZ3, RaidZ10, RaidZ50, RaidZ60}

func ParseRaidKind(str string) (RaidKind, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for _, kind := range RaidKinds {
		if string(kind) == str {
			return kind, nil
		}
	}
	return unknownRaid, fmt.Errorf("%w: unknown raid kind %q", ErrInvalidTopology, str)
}

func (r RaidKind) String() string {
	return string(r)
}

// Kinds accepted for pools of more than one device.
func (r RaidKind) multiDevice() bool {
	return r == RaidMirror || r == RaidZ3
}
