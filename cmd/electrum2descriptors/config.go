package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// ChecksumKey appends a BIP380 checksum to every printed descriptor.
	ChecksumKey = "CHECKSUM"
	// LogLevelKey is the logrus level name (panic, fatal, error, warn, info,
	// debug, trace).
	LogLevelKey = "LOG_LEVEL"

	envPrefix = "E2D"
)

var vip *viper.Viper

// initConfig loads settings from the environment (E2D_*) and the command's
// flags. A flag given on the command line wins over the environment.
func initConfig(cmd *cobra.Command) error {
	vip = viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.AutomaticEnv()

	vip.SetDefault(ChecksumKey, false)
	vip.SetDefault(LogLevelKey, log.WarnLevel.String())

	bindings := map[string]string{
		ChecksumKey: "checksum",
		LogLevelKey: "log-level",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := vip.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("could not bind flag --%s: %w", name, err)
		}
	}

	level, err := log.ParseLevel(GetString(LogLevelKey))
	if err != nil {
		return fmt.Errorf("invalid %s_%s: %w", envPrefix, LogLevelKey, err)
	}
	log.SetLevel(level)

	return nil
}

// GetString returns the string setting stored under key.
func GetString(key string) string {
	return vip.GetString(key)
}

// GetBool returns the boolean setting stored under key.
func GetBool(key string) bool {
	return vip.GetBool(key)
}
