// Package config holds the build configuration. A Config is constructed once
// at startup and passed by value; nothing mutates it afterwards.
package config

import (
	"strings"
	"time"
)

type Config struct {
	// ContentDir is the root scanned for source documents. Set from the CLI
	// positional argument, never from the config file.
	ContentDir string `mapstructure:"-"`

	// OutputDir, when set, mirrors the content tree under a separate
	// directory. Empty means build in place next to the sources.
	OutputDir string `mapstructure:"output"`

	// TemplateDir overrides the embedded templates by name. Empty means
	// embedded defaults only.
	TemplateDir string `mapstructure:"templates"`

	BaseURL   string `mapstructure:"base_url"`
	URLPrefix string `mapstructure:"url_prefix"`

	// Timezone is the fixed reference zone used to localize naive dates.
	Timezone string `mapstructure:"timezone"`

	// Extensions are the recognized source extensions, lowercase, without
	// the leading dot.
	Extensions []string `mapstructure:"extensions"`

	SiteTitle       string `mapstructure:"site_title"`
	SiteDescription string `mapstructure:"site_description"`

	// FeedMaxItems caps feed entries. Zero includes everything.
	FeedMaxItems int `mapstructure:"feed_max_items"`

	Incremental bool `mapstructure:"incremental"`
	Clean       bool `mapstructure:"clean"`
}

// OutputRoot is where artifacts land: OutputDir when set, otherwise the
// content root itself.
func (c Config) OutputRoot() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return c.ContentDir
}

// InPlace reports whether artifacts are written next to their sources.
func (c Config) InPlace() bool {
	return c.OutputDir == "" || c.OutputDir == c.ContentDir
}

// Location resolves the configured reference timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// AbsoluteBase is the site base URL without a trailing slash.
func (c Config) AbsoluteBase() string {
	return strings.TrimSuffix(c.BaseURL, "/")
}
