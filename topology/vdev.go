package topology

import (
	"fmt"
	"strings"
)

// GroupKind is the redundancy tag of one vdev group, as written in zpool vdev syntax.
type GroupKind string

const (
	GroupPlain  GroupKind = ""
	GroupMirror GroupKind = "mirror"
	GroupRaidZ1 GroupKind = "raidz1"
	GroupRaidZ2 GroupKind = "raidz2"
	GroupRaidZ3 GroupKind = "raidz3"
)

func (k GroupKind) String() string {
	if k == GroupPlain {
		return "disk"
	}
	return string(k)
}

// Vdev is one redundancy group. A plain group always holds a single device.
type Vdev struct {
	Kind    GroupKind
	Devices []string
}

// VdevSpec is the ordered list of vdev groups given to "zpool create".
type VdevSpec []Vdev

// Args returns the vdev part of a zpool create argv, e.g.
// ["mirror", "/dev/sda", "/dev/sdb", "mirror", "/dev/sdc", "/dev/sdd"].
func (spec VdevSpec) Args() []string {
	args := []string{}
	for _, vdev := range spec {
		if vdev.Kind != GroupPlain {
			args = append(args, string(vdev.Kind))
		}
		args = append(args, vdev.Devices...)
	}
	return args
}

// String returns the textual vdev spec, e.g. "mirror sda sdb mirror sdc sdd".
func (spec VdevSpec) String() string {
	return strings.Join(spec.Args(), " ")
}

// Devices returns all devices of spec in order.
func (spec VdevSpec) Devices() []string {
	devices := []string{}
	for _, vdev := range spec {
		devices = append(devices, vdev.Devices...)
	}
	return devices
}

// Describe returns a compact form like "[mirror:[sda,sdb], mirror:[sdc,sdd]]".
func (spec VdevSpec) Describe() string {
	parts := make([]string, 0, len(spec))
	for _, vdev := range spec {
		parts = append(parts, fmt.Sprintf("%s:[%s]", vdev.Kind, strings.Join(vdev.Devices, ",")))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

var groupKeywords = map[string]GroupKind{
	string(GroupMirror): GroupMirror,
	string(GroupRaidZ1): GroupRaidZ1,
	"raidz":             GroupRaidZ1,
	string(GroupRaidZ2): GroupRaidZ2,
	string(GroupRaidZ3): GroupRaidZ3,
}

// Parse parses a textual vdev spec (as produced by VdevSpec.String) back into groups.
// Devices before any group keyword become plain single-device groups.
func Parse(str string) (VdevSpec, error) {
	spec := VdevSpec{}
	var current *Vdev
	for _, token := range strings.Fields(str) {
		if kind, ok := groupKeywords[token]; ok {
			if current != nil && len(current.Devices) == 0 {
				return nil, fmt.Errorf("%w: empty %s group", ErrInvalidTopology, current.Kind)
			}
			spec = append(spec, Vdev{Kind: kind})
			current = &spec[len(spec)-1]
			continue
		}
		if current == nil || current.Kind == GroupPlain {
			spec = append(spec, Vdev{Kind: GroupPlain, Devices: []string{token}})
			current = &spec[len(spec)-1]
			continue
		}
		current.Devices = append(current.Devices, token)
	}
	if current != nil && len(current.Devices) == 0 {
		return nil, fmt.Errorf("%w: empty %s group", ErrInvalidTopology, current.Kind)
	}
	if len(spec) == 0 {
		return nil, fmt.Errorf("%w: empty vdev spec", ErrInvalidTopology)
	}
	return spec, nil
}
