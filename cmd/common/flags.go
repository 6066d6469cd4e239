package common

import (
	"github.com/jakeogh/zfstool/cmd"
	"github.com/jakeogh/zfstool/topology"
)

var raidDescriptions = map[topology.RaidKind]string{
	topology.RaidDisk:   "exactly 1 device",
	topology.RaidMirror: "mirror pairs or one wide mirror",
	topology.RaidZ3:     "one raidz3 group, --raid-group-size 8 or 16",
}

// --raid. Required, no default.
var RaidFlag = &cmd.EnumFlag{
	DefaultOptionIndex: -1,
	Description:        "Raid layout",
	Options:            raidOptions(),
}

func raidOptions() [][2]string {
	options := [][2]string{}
	for _, kind := range topology.RaidKinds {
		options = append(options, [2]string{kind.String(), raidDescriptions[kind]})
	}
	return options
}
