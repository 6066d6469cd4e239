package config

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jakeogh/zfstool/util"
	"github.com/jakeogh/zfstool/zpool"
)

const (
	EXAMPLE_CONFIG_FILE = "zfstool.example"
	HISTORY_FILENAME    = "zfstool_history.txt"
)

//go:embed zfstool.example.*
var DefaultConfigFs embed.FS

type AliasConfigStruct struct {
	Name        string `yaml:"name" toml:"name"`
	Cmd         string `yaml:"cmd" toml:"cmd"`
	DefaultArgs string `yaml:"defaultArgs" toml:"defaultArgs"`
	MinArgs     int64  `yaml:"minArgs" toml:"minArgs"`
}

type ConfigStruct struct {
	Compression     string               `yaml:"compression" toml:"compression"`
	Checksum        string               `yaml:"checksum" toml:"checksum"`
	Pbkdf2Iters     int64                `yaml:"pbkdf2Iters" toml:"pbkdf2Iters"`
	Ashift          int64                `yaml:"ashift" toml:"ashift"`
	Cachefile       string               `yaml:"cachefile" toml:"cachefile"`
	BootEnvironment string               `yaml:"bootEnvironment" toml:"bootEnvironment"`
	History         *bool                `yaml:"history" toml:"history"`
	Aliases         []*AliasConfigStruct `yaml:"aliases" toml:"aliases"`
}

var (
	VerboseLevel = 0
	ConfigDir    = ""
	ConfigFile   = ""
	ConfigType   = "toml"
	LockFile     = ""
	configLoaded = false
	configData   = &ConfigStruct{}
	mu           sync.Mutex
)

// Parse config file contents. format is "toml" or "yaml".
func Parse(contents []byte, format string) (*ConfigStruct, error) {
	data := &ConfigStruct{}
	var err error
	switch format {
	case "yaml", "yml":
		err = yaml.Unmarshal(contents, data)
	case "toml":
		err = toml.NewDecoder(bytes.NewReader(contents)).Decode(data)
	default:
		err = fmt.Errorf("unsupported config file format %q, neither toml nor yaml", format)
	}
	if err != nil {
		return nil, err
	}
	if err := data.normalize(); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *ConfigStruct) normalize() error {
	if c.Compression == "" {
		c.Compression = zpool.DEFAULT_COMPRESSION
	}
	if c.Checksum == "" {
		c.Checksum = zpool.DEFAULT_CHECKSUM
	}
	if c.Pbkdf2Iters <= 0 {
		c.Pbkdf2Iters = zpool.DEFAULT_PBKDF2_ITERS
	}
	if c.Cachefile == "" {
		c.Cachefile = zpool.DEFAULT_CACHEFILE
	}
	if c.BootEnvironment == "" {
		c.BootEnvironment = zpool.DEFAULT_BOOT_ENVIRONMENT
	}
	if err := zpool.ValidateAshift(int(c.Ashift)); err != nil {
		return fmt.Errorf("config ashift: %w", err)
	}
	for _, alias := range c.Aliases {
		alias.Name = strings.TrimSpace(alias.Name)
		if alias.Name == "" {
			return fmt.Errorf("alias with cmd %q has no name", alias.Cmd)
		}
	}
	return nil
}

// Get returns the loaded config. A missing config file yields the defaults.
func Get() *ConfigStruct {
	if !configLoaded {
		mu.Lock()
		defer mu.Unlock()
		if !configLoaded {
			log.Debugf("Read config file %s", ConfigFile)
			file, err := os.ReadFile(ConfigFile)
			if err != nil {
				if !os.IsNotExist(err) {
					log.Fatalf("Failed to read config file: %v", err)
				}
				file = nil
			}
			data, err := Parse(file, ConfigType)
			if err != nil {
				log.Fatalf("Error parsing config file: %v", err)
			}
			configData = data
			configLoaded = true
		}
	}
	return configData
}

// Set the config file and derive ConfigDir and ConfigType from it.
func SetConfigFile(file string) {
	ConfigFile = file
	ConfigDir = filepath.Dir(file)
	switch ext := strings.TrimPrefix(filepath.Ext(file), "."); ext {
	case "yaml", "yml":
		ConfigType = "yaml"
	default:
		ConfigType = "toml"
	}
}

// Whether executed commands are appended to the journal. Default true.
func (c *ConfigStruct) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// Path of the journal file, next to the config file.
func HistoryFile() string {
	return filepath.Join(ConfigDir, HISTORY_FILENAME)
}

func GetAliasConfig(name string) *AliasConfigStruct {
	for _, alias := range Get().Aliases {
		if alias.Name == name {
			return alias
		}
	}
	return nil
}

func (c *ConfigStruct) PoolProperties() zpool.Properties {
	return zpool.Properties{
		Compression: c.Compression,
		Checksum:    c.Checksum,
		Pbkdf2Iters: c.Pbkdf2Iters,
		Cachefile:   c.Cachefile,
	}
}

func (alias *AliasConfigStruct) MatchFilter(filter string) bool {
	return util.ContainsI(alias.Name, filter) || util.ContainsI(alias.Cmd, filter)
}

// CreateDefaultConfig writes the example config to ConfigFile. It refuses to overwrite.
func CreateDefaultConfig() error {
	if _, err := os.Stat(ConfigFile); err == nil {
		return fmt.Errorf("config file %s already exists", ConfigFile)
	}
	contents, err := DefaultConfigFs.ReadFile(EXAMPLE_CONFIG_FILE + "." + ConfigType)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(ConfigDir, 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return atomic.WriteFile(ConfigFile, bytes.NewReader(contents))
}
