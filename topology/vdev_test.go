package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakeogh/zfstool/topology"
)

func TestVdevSpecString(t *testing.T) {
	spec := topology.VdevSpec{
		{Kind: topology.GroupMirror, Devices: []string{"/dev/sda", "/dev/sdb"}},
		{Kind: topology.GroupMirror, Devices: []string{"/dev/sdc", "/dev/sdd"}},
	}
	assert.Equal(t, "mirror /dev/sda /dev/sdb mirror /dev/sdc /dev/sdd", spec.String())
	assert.Equal(t, []string{"mirror", "/dev/sda", "/dev/sdb", "mirror", "/dev/sdc", "/dev/sdd"}, spec.Args())
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []struct {
		devices   []string
		raid      topology.RaidKind
		groupSize int
	}{
		{[]string{"/dev/sda"}, topology.RaidDisk, 1},
		{[]string{"/dev/sda", "/dev/sdb"}, topology.RaidMirror, 2},
		{devices(6), topology.RaidMirror, 2},
		{devices(5), topology.RaidMirror, 5},
		{devices(8), topology.RaidZ3, 8},
	}
	for _, input := range inputs {
		spec, err := topology.Resolve(input.devices, input.raid, input.groupSize)
		require.NoError(t, err)
		parsed, err := topology.Parse(spec.String())
		require.NoError(t, err)
		assert.Equal(t, spec, parsed)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		desc     string
		input    string
		expected topology.VdevSpec
		err      error
	}{
		{
			desc:  "plain devices",
			input: "sda sdb",
			expected: topology.VdevSpec{
				{Kind: topology.GroupPlain, Devices: []string{"sda"}},
				{Kind: topology.GroupPlain, Devices: []string{"sdb"}},
			},
		},
		{
			desc:  "raidz alias and extra spaces",
			input: "  raidz  sda sdb   sdc ",
			expected: topology.VdevSpec{
				{Kind: topology.GroupRaidZ1, Devices: []string{"sda", "sdb", "sdc"}},
			},
		},
		{
			desc:  "empty group",
			input: "mirror mirror sda sdb",
			err:   topology.ErrInvalidTopology,
		},
		{
			desc:  "trailing keyword",
			input: "mirror sda sdb raidz3",
			err:   topology.ErrInvalidTopology,
		},
		{
			desc:  "empty",
			input: "   ",
			err:   topology.ErrInvalidTopology,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			spec, err := topology.Parse(test.input)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, spec)
		})
	}
}
