package zpool_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakeogh/zfstool/zpool"
)

func TestFilesystemCreateArgs(t *testing.T) {
	tests := []struct {
		desc     string
		opts     zpool.FilesystemOptions
		expected string
	}{
		{
			desc:     "defaults",
			opts:     zpool.FilesystemOptions{Pool: "tank", Name: "home"},
			expected: "zfs create -o setuid=off -o devices=off -o exec=off -o mountpoint=/tank/home tank/home",
		},
		{
			desc: "encrypted with reservation",
			opts: zpool.FilesystemOptions{Pool: "tank", Name: "vault", Encrypt: true, Reservation: "10G"},
			expected: "zfs create -o setuid=off -o devices=off -o encryption=aes-256-gcm -o keyformat=passphrase" +
				" -o keylocation=prompt -o exec=off -o reservation=10G -o mountpoint=/tank/vault tank/vault",
		},
		{
			desc:     "exec and nomount",
			opts:     zpool.FilesystemOptions{Pool: "tank", Name: "bin", Exec: true, NoMount: true},
			expected: "zfs create -o setuid=off -o devices=off tank/bin",
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			args, err := zpool.FilesystemCreateArgs(test.opts)
			require.NoError(t, err)
			assert.Equal(t, test.expected, strings.Join(args, " "))
		})
	}
}

func TestFilesystemReservation(t *testing.T) {
	args, err := zpool.FilesystemCreateArgs(zpool.FilesystemOptions{Pool: "tank", Name: "home", Reservation: "none"})
	require.NoError(t, err)
	assert.Contains(t, args, "reservation=none")
	for _, bad := range []string{"lots", "10 G", "10X"} {
		_, err := zpool.FilesystemCreateArgs(zpool.FilesystemOptions{Pool: "tank", Name: "home", Reservation: bad})
		assert.ErrorIs(t, err, zpool.ErrInvalidOption, bad)
	}
}

func TestFilesystemNames(t *testing.T) {
	for _, bad := range [][2]string{
		{"tank", "/home"},
		{"tank", "ho"},
		{"tank", "my home"},
		{"ta", "home"},
		{"tank/sub", "home"},
		{"", "home"},
	} {
		_, err := zpool.Filesystem(bad[0], bad[1])
		assert.ErrorIs(t, err, zpool.ErrInvalidName, "%v", bad)
	}
	fs, err := zpool.Filesystem("tank", "home/user")
	require.NoError(t, err)
	assert.Equal(t, "tank/home/user", fs)
}

func TestShareNfsArgs(t *testing.T) {
	args, err := zpool.ShareNfsArgs("tank/home", "10.0.0.0/24", false, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"zfs", "set", "sharenfs=sync,wdelay,hide,crossmnt,secure,no_all_squash," +
		"no_subtree_check,secure_locks,mountpoint,anonuid=65534,anongid=65534,sec=sys,rw=10.0.0.0/24," +
		"no_root_squash", "tank/home"}, args)

	args, err = zpool.ShareNfsArgs("tank/home", "10.0.0.0/24", true, false)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(args[2], ",rw=10.0.0.0/24,root_squash"))

	args, err = zpool.ShareNfsArgs("tank/home", "", false, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"zfs", "set", "sharenfs=off", "tank/home"}, args)

	_, err = zpool.ShareNfsArgs("tank/home", "", true, true)
	assert.ErrorIs(t, err, zpool.ErrInvalidOption)
	_, err = zpool.ShareNfsArgs("tank/home", "10.0.0.1", false, false)
	assert.ErrorIs(t, err, zpool.ErrInvalidOption)
	_, err = zpool.ShareNfsArgs("/tank/home", "10.0.0.0/8", false, false)
	assert.ErrorIs(t, err, zpool.ErrInvalidName)
}

func TestSnapshotArgs(t *testing.T) {
	now := time.Unix(1700000000, 500)
	args, err := zpool.SnapshotArgs("tank/home", now)
	require.NoError(t, err)
	assert.Equal(t, []string{"zfs", "snapshot", "tank/home@__1700000000"}, args)
	for _, bad := range []string{"/tank/home", "tan", "tank home"} {
		_, err := zpool.SnapshotArgs(bad, now)
		assert.ErrorIs(t, err, zpool.ErrInvalidName, bad)
	}
}

func TestDestroyArgs(t *testing.T) {
	args, err := zpool.DestroyArgs("tank", "home")
	require.NoError(t, err)
	assert.Equal(t, []string{"zfs", "destroy", "tank/home"}, args)
	_, err = zpool.DestroyArgs("tank", "/")
	assert.ErrorIs(t, err, zpool.ErrInvalidName)
}

func TestCheckMountpoints(t *testing.T) {
	output := "tank\t/tank\n" +
		"tank/home\t/tank/home\n" +
		"tank/home@__1700000000\t-\n" +
		"tank/swap\tnone\n" +
		"tank/data\t/srv/data\n" +
		"tank/odd\t-\n" +
		"\n"
	issues, checked, err := zpool.CheckMountpoints(output)
	require.NoError(t, err)
	assert.Equal(t, 3, checked)
	require.Len(t, issues, 2)
	assert.Equal(t, "tank/data", issues[0].Dataset)
	assert.Contains(t, issues[0].String(), "does not match")
	assert.Equal(t, "tank/odd", issues[1].Dataset)
	assert.Contains(t, issues[1].String(), "only expected on snapshots")

	_, _, err = zpool.CheckMountpoints("garbage\n")
	assert.Error(t, err)
	_, _, err = zpool.CheckMountpoints("tank/media /tank/media\n")
	assert.Error(t, err)
}

func TestCheckMountpointsWithSpaces(t *testing.T) {
	output := "tank/my files\t/tank/my files\n" +
		"tank/other\t/mnt/my files\n"
	issues, checked, err := zpool.CheckMountpoints(output)
	require.NoError(t, err)
	assert.Equal(t, 2, checked)
	require.Len(t, issues, 1)
	assert.Equal(t, "tank/other", issues[0].Dataset)
	assert.Equal(t, "/mnt/my files", issues[0].Mountpoint)
}
