package checkmountpoints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jakeogh/zfstool/cmd/checkmountpoints"
	"github.com/jakeogh/zfstool/cmd/cmdtest"
	"github.com/jakeogh/zfstool/zpool"
)

func TestCheckMountpoints(t *testing.T) {
	executor := cmdtest.Setup(t, nil)
	executor.Outputs["zfs"] = "tank\tnone\ntank/home\t/tank/home\ntank/home@__1700000000\t-\n"
	output, err := cmdtest.Run(t, "zfs-check-mountpoints")
	require.NoError(t, err)
	assert.Contains(t, output, "1 datasets checked, 0 mismatch(es)")
	assert.Equal(t, []string{"zfs get -H -o name,value mountpoint"}, executor.Formatted())
}

func TestCheckMountpointsMismatch(t *testing.T) {
	executor := cmdtest.Setup(t, nil)
	executor.Outputs["zfs"] = "tank/home\t/home\ntank/data\t-\ntank/ok\t/tank/ok\n"
	output, err := cmdtest.Run(t, "zfs-check-mountpoints")
	assert.ErrorIs(t, err, zpool.ErrMountpointMismatch)
	assert.Contains(t, output, `tank/home: mountpoint "/home" does not match dataset name`)
	assert.Contains(t, output, `tank/data: mountpoint "-" is only expected on snapshots`)
}
