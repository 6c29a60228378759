package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ewanmcnab/plume/internal/config"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "plume",
	Short: "plume - a Markdown blog generator",
	Long: `plume takes a directory of Markdown posts with title/date metadata
and generates per-post HTML pages, an index, year and month archive pages,
and RSS/JSON feeds.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./plume.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("output", "")
	v.SetDefault("templates", "")
	v.SetDefault("base_url", "http://localhost")
	v.SetDefault("url_prefix", "/blog/")
	v.SetDefault("timezone", "America/New_York")
	v.SetDefault("extensions", []string{"md", "markdown"})
	v.SetDefault("site_title", "")
	v.SetDefault("site_description", "")
	v.SetDefault("feed_max_items", 20)
	v.SetDefault("incremental", false)
	v.SetDefault("clean", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("plume")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PLUME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			// No config file is fine; defaults and environment apply.
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}
