package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ewanmcnab/plume/internal/blog"
)

var (
	buildOutput      string
	buildTemplates   string
	buildBaseURL     string
	buildURLPrefix   string
	buildIncremental bool
	buildClean       bool
)

var buildCmd = &cobra.Command{
	Use:   "build CONTENT_DIR",
	Short: "Builds the blog from a directory of Markdown posts",
	Long: `The build command scans CONTENT_DIR recursively for Markdown posts,
renders each to HTML, and generates the index, year/month archive pages,
rss.xml and feed.json. Every post must carry a metadata block with at
least a title and a date; a post without them fails the whole build.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		cfg.ContentDir = args[0]
		if cmd.Flags().Changed("output") {
			cfg.OutputDir = buildOutput
		}
		if cmd.Flags().Changed("templates") {
			cfg.TemplateDir = buildTemplates
		}
		if cmd.Flags().Changed("base-url") {
			cfg.BaseURL = buildBaseURL
		}
		if cmd.Flags().Changed("url-prefix") {
			cfg.URLPrefix = buildURLPrefix
		}
		if cmd.Flags().Changed("incremental") {
			cfg.Incremental = buildIncremental
		}
		if cmd.Flags().Changed("clean") {
			cfg.Clean = buildClean
		}
		return blog.Build(cfg)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (default: build in place)")
	buildCmd.Flags().StringVarP(&buildTemplates, "templates", "t", "", "directory of override templates")
	buildCmd.Flags().StringVar(&buildBaseURL, "base-url", "", "site base URL used for absolute feed links")
	buildCmd.Flags().StringVar(&buildURLPrefix, "url-prefix", "", "public URL prefix for posts")
	buildCmd.Flags().BoolVar(&buildIncremental, "incremental", false, "skip re-rendering unchanged posts")
	buildCmd.Flags().BoolVar(&buildClean, "clean", false, "remove orphaned artifacts from the output directory")
	rootCmd.AddCommand(buildCmd)
}
