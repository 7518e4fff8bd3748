package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/timeline-go/pkg/timeline"
)

// Configuration keys; environment variables use the TIMELINE_ prefix.
const (
	keyWorkbook  = "workbook"
	keyOutput    = "output"
	keyPreSheet  = "pre-sheet"
	keyPostSheet = "post-sheet"
	keyPreDir    = "pre-dir"
	keyPostDir   = "post-dir"
	keyCompact   = "compact"
	keyVerbose   = "verbose"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

// initConfig layers flags over environment, an optional config file and defaults.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	// A missing .env is not an error.
	_ = godotenv.Load()

	v.SetDefault(keyWorkbook, timeline.DefaultWorkbook)

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("timeline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TIMELINE")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// optionsFromConfig builds timeline options from the resolved configuration.
func optionsFromConfig(v *viper.Viper) timeline.Options {
	opts := timeline.DefaultOptions()
	opts.WorkbookPath = v.GetString(keyWorkbook)
	opts.OutputPath = v.GetString(keyOutput)
	opts.Pre = timeline.SheetSource{Sheet: v.GetString(keyPreSheet), PhotoDir: v.GetString(keyPreDir)}
	opts.Post = timeline.SheetSource{Sheet: v.GetString(keyPostSheet), PhotoDir: v.GetString(keyPostDir)}
	opts.Pretty = !v.GetBool(keyCompact)
	return opts
}
