package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ewanmcnab/plume/internal/blog"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve DIR",
	Short: "Serves a built blog locally",
	Long:  `The serve command starts a local web server over a previously built blog directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return blog.ServeDir(args[0], servePort)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to serve the blog on")
	rootCmd.AddCommand(serveCmd)
}
