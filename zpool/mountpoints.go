package zpool

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

var ErrMountpointMismatch = errors.New("mountpoint mismatch")

// Argv listing the mountpoint property of all datasets and snapshots, tab separated.
var MountpointsArgs = []string{"zfs", "get", "-H", "-o", "name,value", "mountpoint"}

type MountpointIssue struct {
	Dataset    string
	Mountpoint string
	Reason     string
}

func (mi *MountpointIssue) String() string {
	return fmt.Sprintf("%s: mountpoint %q %s", mi.Dataset, mi.Mountpoint, mi.Reason)
}

// CheckMountpoints parses the output of MountpointsArgs and reports every dataset whose
// mountpoint is not "/" + dataset name. "none" is accepted, "-" only for snapshots.
// checked is the number of datasets with a real mountpoint.
func CheckMountpoints(output string) (issues []*MountpointIssue, checked int, err error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) < 2 {
			return nil, checked, fmt.Errorf("unexpected zfs get output line %q", line)
		}
		dataset := fields[0]
		mountpoint := fields[1]
		switch {
		case mountpoint == "none" || mountpoint == "legacy":
			continue
		case mountpoint == "-":
			if !strings.Contains(dataset, "@") {
				issues = append(issues, &MountpointIssue{dataset, mountpoint, "is only expected on snapshots"})
			}
			continue
		case !strings.HasPrefix(mountpoint, "/"):
			issues = append(issues, &MountpointIssue{dataset, mountpoint, "is not absolute"})
		case mountpoint[1:] != dataset:
			issues = append(issues, &MountpointIssue{dataset, mountpoint, "does not match dataset name"})
		}
		checked++
	}
	if err := scanner.Err(); err != nil {
		return nil, checked, err
	}
	return issues, checked, nil
}
