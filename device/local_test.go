package device

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mountsFixture = `sysfs /sys sysfs rw,nosuid,nodev,noexec,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
/dev/nvme0n1p2 / ext4 rw,relatime 0 0
/dev/sdb1 /mnt/usb vfat rw,relatime 0 0
/dev/nvme2n10 /srv xfs rw,relatime 0 0
tank/home /tank/home zfs rw,xattr,noacl 0 0
`

func TestMountedIn(t *testing.T) {
	tests := []struct {
		device   string
		expected bool
	}{
		{"/dev/nvme0n1", true},
		{"/dev/nvme0n1p2", true},
		{"/dev/nvme1n1", false},
		{"/dev/nvme2n1", false},
		{"/dev/nvme2n10", true},
		{"/dev/sdb", true},
		{"/dev/sda", false},
		{"/dev/sd", false},
	}
	for _, test := range tests {
		mounted, err := mountedIn(bufio.NewScanner(strings.NewReader(mountsFixture)), []string{test.device})
		require.NoError(t, err)
		assert.Equal(t, test.expected, mounted, test.device)
	}
}

func TestIsDeviceOrPartition(t *testing.T) {
	tests := []struct {
		source   string
		device   string
		expected bool
	}{
		{"/dev/sda", "/dev/sda", true},
		{"/dev/sda1", "/dev/sda", true},
		{"/dev/sda12", "/dev/sda", true},
		{"/dev/sdab", "/dev/sda", false},
		{"/dev/sdap1", "/dev/sda", false},
		{"/dev/nvme0n1p2", "/dev/nvme0n1", true},
		{"/dev/nvme0n10", "/dev/nvme0n1", false},
		{"/dev/nvme0n10p1", "/dev/nvme0n1", false},
		{"/dev/nvme0n1p", "/dev/nvme0n1", false},
		{"/dev/mmcblk0p1", "/dev/mmcblk0", true},
		{"/dev/mmcblk01", "/dev/mmcblk0", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, isDeviceOrPartition(test.source, test.device), test.source)
	}
}

func TestLocalIsMounted(t *testing.T) {
	dir := t.TempDir()
	mounts := filepath.Join(dir, "mounts")
	require.NoError(t, os.WriteFile(mounts, []byte(mountsFixture), 0600))
	local := &Local{SysfsRoot: dir, MountsFile: mounts}
	mounted, err := local.IsMounted("/dev/sdb")
	require.NoError(t, err)
	assert.True(t, mounted)
	mounted, err = local.IsMounted("/dev/sdc")
	require.NoError(t, err)
	assert.False(t, mounted)
}

func TestLocalIsBlockSpecial(t *testing.T) {
	file := filepath.Join(t.TempDir(), "disk.img")
	require.NoError(t, os.WriteFile(file, nil, 0600))
	local := NewLocal()
	isBlock, err := local.IsBlockSpecial(file)
	require.NoError(t, err)
	assert.False(t, isBlock)
	_, err = local.IsBlockSpecial(file + ".missing")
	assert.Error(t, err)
}

func TestReadSectors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "size")
	require.NoError(t, os.WriteFile(file, []byte("7814037168\n"), 0600))
	size, err := readSectors(file)
	require.NoError(t, err)
	assert.Equal(t, int64(7814037168*512), size)

	require.NoError(t, os.WriteFile(file, []byte("abc\n"), 0600))
	_, err = readSectors(file)
	assert.Error(t, err)
}
