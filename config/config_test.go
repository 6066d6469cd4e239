package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakeogh/zfstool/zpool"
)

func TestParseDefaults(t *testing.T) {
	data, err := Parse(nil, "toml")
	require.NoError(t, err)
	assert.Equal(t, zpool.DEFAULT_COMPRESSION, data.Compression)
	assert.Equal(t, zpool.DEFAULT_CHECKSUM, data.Checksum)
	assert.Equal(t, int64(zpool.DEFAULT_PBKDF2_ITERS), data.Pbkdf2Iters)
	assert.Equal(t, zpool.DEFAULT_CACHEFILE, data.Cachefile)
	assert.Equal(t, zpool.DEFAULT_BOOT_ENVIRONMENT, data.BootEnvironment)
	assert.True(t, data.HistoryEnabled())
}

func TestParseExamples(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			contents, err := DefaultConfigFs.ReadFile(EXAMPLE_CONFIG_FILE + "." + format)
			require.NoError(t, err)
			data, err := Parse(contents, format)
			require.NoError(t, err)
			assert.Equal(t, "zstd", data.Compression)
			assert.Equal(t, int64(460000), data.Pbkdf2Iters)
			require.Len(t, data.Aliases, 2)
			assert.Equal(t, "mirror2", data.Aliases[0].Name)
			assert.Equal(t, int64(3), data.Aliases[0].MinArgs)
			assert.Equal(t, "tank/home", data.Aliases[1].DefaultArgs)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("ashift = 20\n"), "toml")
	assert.ErrorIs(t, err, zpool.ErrInvalidOption)
	_, err = Parse([]byte("[[aliases]]\ncmd = \"plan\"\n"), "toml")
	assert.Error(t, err)
	_, err = Parse([]byte("a: b"), "ini")
	assert.Error(t, err)
}

func TestParseOverrides(t *testing.T) {
	data, err := Parse([]byte("compression: lz4\nashift: 12\n"), "yaml")
	require.NoError(t, err)
	props := data.PoolProperties()
	assert.Equal(t, "lz4", props.Compression)
	assert.Equal(t, int64(12), data.Ashift)

	data, err = Parse([]byte("history = false\n"), "toml")
	require.NoError(t, err)
	assert.False(t, data.HistoryEnabled())
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	SetConfigFile(filepath.Join(dir, "sub", "zfstool.yaml"))
	assert.Equal(t, "yaml", ConfigType)
	require.NoError(t, CreateDefaultConfig())
	contents, err := os.ReadFile(ConfigFile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "bootEnvironment: gentoo")
	assert.Error(t, CreateDefaultConfig(), "refuses to overwrite")
}
