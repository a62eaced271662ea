package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dashring/internal/dirs"
)

// Init wires Viper with config paths, env, defaults, and flag bindings.
// It is non-fatal: any errors are returned for optional handling by caller.
func Init(root *cobra.Command) error {
	// Ensure base directories exist
	_ = dirs.EnsureAll()

	// Setup config search path
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		_ = dirs.Ensure(cfgDir)
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: DASHRING_*
	viper.SetEnvPrefix("DASHRING")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	for flag, key := range map[string]string{
		"percent":       "percent",
		"diameter":      "diameter",
		"ring-color":    "ring_color",
		"arc-color":     "arc_color",
		"success-color": "success_color",
		"failure-color": "failure_color",
		"unknown-color": "unknown_color",
		"sweep-speed":   "sweep_speed",
		"arc-length":    "arc_length",
		"debug":         "debug",
		"no-ui":         "no_ui",
	} {
		_ = viper.BindPFlag(key, root.PersistentFlags().Lookup(flag))
	}

	// Read config file if present (ignore not found)
	_ = viper.ReadInConfig()

	return nil
}
