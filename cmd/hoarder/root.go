package main

import (
	"github.com/spf13/cobra"
)

type runFlags struct {
	prefix    string
	suffix    string
	directory bool
	workers   int
	logLevel  string
	logFormat string
	noPrompt  bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags runFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "hoarder [paths or globs...]",
		Short: "Rename and organize photos, videos and other files",
		Long: `Hoarder renames files in bulk.

Images are named after their capture date (EXIF, then a YYYYMMDD run in the
file name), videos after their TMDB title and year, and other files get an
optional prefix or suffix. With --directory, images and videos are moved into
year folders instead.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runBatch(cmd, ctx, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	fs := rootCmd.Flags()
	fs.StringVarP(&flags.prefix, "prefix", "p", "", "Prefix added to plain file names")
	fs.StringVarP(&flags.suffix, "suffix", "s", "", "Suffix added to plain file names, before the extension")
	fs.BoolVarP(&flags.directory, "directory", "d", false, "Organize images and videos into year folders")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "Files processed in parallel (default from config, 0 means one per CPU)")
	fs.StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	fs.StringVar(&flags.logFormat, "log-format", "", "Log format override (console, json)")
	fs.BoolVar(&flags.noPrompt, "no-prompt", false, "Never prompt for a missing TMDB API key")
	rootCmd.MarkFlagsMutuallyExclusive("prefix", "suffix")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
