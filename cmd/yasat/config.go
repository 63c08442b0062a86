package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// solverConfig mirrors the sat.Options fields the CLI exposes
// (MaxConflicts and Timeout). Cobra flags bind into the same
// Viper instance so a config file supplies defaults and flags always
// override it — the conventional Cobra+Viper wiring.
type solverConfig struct {
	MaxConflicts int64         `mapstructure:"max-conflicts"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// bindSolverFlags registers the flags shared by the solve command and
// binds each one into v, so v.Get* reflects flag > config-file > default
// in that order.
func bindSolverFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().Int64("max-conflicts", 0, "stop after this many learned clauses (0 = unbounded)")
	cmd.Flags().Duration("timeout", 0, "stop after this much wall-clock time (0 = unbounded)")

	v.BindPFlag("max-conflicts", cmd.Flags().Lookup("max-conflicts"))
	v.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
}

// loadSolverConfig reads an optional yasat.yaml (or yasat.json/.toml) from
// the current directory, if present, then layers the bound flags on top.
func loadSolverConfig(v *viper.Viper) (solverConfig, error) {
	v.SetConfigName("yasat")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return solverConfig{}, err
		}
	}

	var cfg solverConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return solverConfig{}, err
	}
	return cfg, nil
}
