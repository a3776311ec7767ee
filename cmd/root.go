package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "menuengine",
	Short: "Build and publish offline-friendly restaurant menus",
	Long: `Menu Engine turns a loosely written JSON menu document into a polished,
single-file HTML viewer that works offline. It tolerates comments,
trailing commas and word-processor quotes in the input, normalizes
mixed-up field names, and renders the result with switchable templates
and themes.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".menuengine.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
