package topology

import (
	"fmt"
	"slices"
)

// Resolve turns a flat device list plus raid kind and group size into a vdev spec.
//
// Supported layouts:
//   - 1 device, disk: the device itself.
//   - 2 devices, mirror: one mirror pair.
//   - >2 devices, mirror or raidz3, group size 2: striped mirror pairs (raid10).
//   - >2 devices, raidz3, group size 8 or 16: one raidz3 group of all devices.
//     The group size only selects this layout, devices are not sub-grouped.
//   - >2 devices, mirror, any other group size except 4: one wide mirror.
//
// Group size 4 returns ErrNotImplemented. Device order is always preserved.
func Resolve(devices []string, raid RaidKind, groupSize int) (VdevSpec, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: no devices", ErrInvalidTopology)
	}
	seen := map[string]bool{}
	for _, device := range devices {
		if device == "" {
			return nil, fmt.Errorf("%w: empty device name", ErrInvalidTopology)
		}
		if seen[device] {
			return nil, fmt.Errorf("%w: device %s given more than once", ErrInvalidTopology, device)
		}
		seen[device] = true
	}
	if groupSize < 1 {
		return nil, fmt.Errorf("%w: raid group size %d must be >= 1", ErrInvalidTopology, groupSize)
	}
	if groupSize > len(devices) {
		return nil, fmt.Errorf("%w: raid group size %d is larger than the number of devices (%d)",
			ErrInvalidTopology, groupSize, len(devices))
	}
	devices = slices.Clone(devices)

	if len(devices) == 1 {
		if raid != RaidDisk {
			return nil, fmt.Errorf("%w: a single device requires raid %s, got %s", ErrInvalidTopology, RaidDisk, raid)
		}
		return VdevSpec{{Kind: GroupPlain, Devices: devices}}, nil
	}

	if !raid.multiDevice() {
		return nil, fmt.Errorf("%w: raid %s is not supported for %d devices (want %s or %s)",
			ErrInvalidTopology, raid, len(devices), RaidMirror, RaidZ3)
	}
	if groupSize < 2 {
		return nil, fmt.Errorf("%w: raid group size must be >= 2 for %d devices", ErrInvalidTopology, len(devices))
	}

	if len(devices) == 2 {
		if raid != RaidMirror {
			return nil, fmt.Errorf("%w: two devices require raid %s, got %s", ErrInvalidTopology, RaidMirror, raid)
		}
		return VdevSpec{{Kind: GroupMirror, Devices: devices}}, nil
	}

	switch groupSize {
	case 2:
		// mirror pairs for either multi-device raid kind
		pairs, err := Group(devices, 2)
		if err != nil {
			return nil, err
		}
		spec := VdevSpec{}
		for pair := range pairs {
			spec = append(spec, Vdev{Kind: GroupMirror, Devices: pair})
		}
		return spec, nil
	case 4:
		return nil, fmt.Errorf("%w: raid group size 4 (4-way mirror or 2x2 mirror is undecided)", ErrNotImplemented)
	case 8, 16:
		if raid != RaidZ3 {
			return nil, fmt.Errorf("%w: raid group size %d requires raid %s, got %s",
				ErrInvalidTopology, groupSize, RaidZ3, raid)
		}
		if len(devices)%2 != 0 {
			return nil, fmt.Errorf("%w: raid %s requires an even number of devices, got %d",
				ErrInvalidTopology, RaidZ3, len(devices))
		}
		return VdevSpec{{Kind: GroupRaidZ3, Devices: devices}}, nil
	default:
		if raid == RaidMirror {
			return VdevSpec{{Kind: GroupMirror, Devices: devices}}, nil
		}
		return nil, fmt.Errorf("%w: unknown mode: raid %s with raid group size %d", ErrInvalidTopology, raid, groupSize)
	}
}
