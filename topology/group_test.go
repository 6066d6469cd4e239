package topology_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakeogh/zfstool/topology"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		desc     string
		items    []string
		size     int
		expected [][]string
		err      error
	}{
		{
			desc:     "pairs",
			items:    []string{"a", "b", "c", "d"},
			size:     2,
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			desc:     "single group",
			items:    []string{"a", "b", "c"},
			size:     3,
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			desc:     "size one",
			items:    []string{"a", "b"},
			size:     1,
			expected: [][]string{{"a"}, {"b"}},
		},
		{
			desc:     "empty input yields nothing",
			items:    []string{},
			size:     2,
			expected: nil,
		},
		{
			desc:  "remainder is an error",
			items: []string{"a", "b", "c"},
			size:  2,
			err:   topology.ErrInvalidGroupSize,
		},
		{
			desc:  "zero size",
			items: []string{"a"},
			size:  0,
			err:   topology.ErrInvalidGroupSize,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			seq, err := topology.Group(test.items, test.size)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, slices.Collect(seq))
		})
	}
}

func TestGroupStopsEarly(t *testing.T) {
	seq, err := topology.Group([]int{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)
	cnt := 0
	for range seq {
		cnt++
		if cnt == 2 {
			break
		}
	}
	assert.Equal(t, 2, cnt)
}
