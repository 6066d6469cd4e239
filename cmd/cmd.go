package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jakeogh/zfstool/config"
)

// Root represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "zfstool",
	Short: "zfstool builds and runs zpool / zfs commands to provision ZFS pools and filesystems.",
	Long: `zfstool builds and runs zpool / zfs commands to provision ZFS pools and filesystems.
It validates devices and raid topology before anything is executed.
Use "--simulate" on any provisioning command to print the commands instead.`,
	SilenceUsage: true,
}

var (
	lock *flock.Flock
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		// level: panic(0), fatal(1), error(2), warn(3), info(4), debug(5), trace(6). Default level = warning(3)
		config.SetConfigFile(config.ConfigFile)
		logLevel := 3 + config.VerboseLevel
		if logLevel > int(log.TraceLevel) {
			logLevel = int(log.TraceLevel)
		}
		log.SetLevel(log.Level(logLevel))
		log.Debugf("zfstool start: %s", os.Args)
		log.Infof("config file: %s", config.ConfigFile)
		if config.LockFile != "" && lock == nil {
			log.Debugf("Locking file: %s", config.LockFile)
			lock = flock.New(config.LockFile)
			if err := lock.Lock(); err != nil {
				log.Fatalf("Unable to lock file %s: %v", config.LockFile, err)
			}
			log.Infof("Lock acquired")
		}
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if lock != nil {
		lock.Unlock()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	UserHomeDir, _ := os.UserHomeDir()
	configFile := "zfstool.toml"
	configFiles := []string{
		UserHomeDir + "/.config/zfstool/zfstool.toml",
		UserHomeDir + "/.config/zfstool/zfstool.yaml",
		"zfstool.toml",
		"zfstool.yaml",
	}
	for _, cf := range configFiles {
		_, err := os.Stat(cf)
		if err == nil {
			configFile = cf
			break
		}
	}
	if configFile == "zfstool.toml" && UserHomeDir != "" {
		configFile = UserHomeDir + "/.config/zfstool/zfstool.toml"
	}
	config.SetConfigFile(configFile)

	// global flags
	RootCmd.PersistentFlags().StringVarP(&config.ConfigFile, "config", "", configFile, "Config file ([zfstool.toml])")
	RootCmd.PersistentFlags().StringVarP(&config.LockFile, "lock", "", "", "Lock filename. If set, zfstool will acquire the lock on the file before executing command. It is intended to be used to prevent multiple invocations of zfstool process at the same time. If the lock file does not exist, it will be created automatically. However, it will NOT be deleted after zfstool process exits")
	RootCmd.PersistentFlags().CountVarP(&config.VerboseLevel, "verbose", "v", "verbose (-v, -vv, -vvv)")
}
