package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hoarder/internal/config"
	"hoarder/internal/preflight"
	"hoarder/internal/textutil"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigSetAPIKeyCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set tmdb.api_key (or export TMDB_API_KEY) to enable video identification.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	var runChecks bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if _, err := os.Stat(ctx.configPath); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "TMDB API key: %s\n", yesNo(cfg.HasTMDBKey()))
			fmt.Fprintf(out, "Lookup cache: %s\n", yesNo(cfg.LookupCache.Enabled))
			fmt.Fprintln(out, "Configuration valid")

			if runChecks {
				results := preflight.RunAll(cmd.Context(), cfg)
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Name, textutil.Ternary(r.Passed, "OK", "FAIL"), r.Detail})
				}
				fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&runChecks, "check", false, "Also check TMDB reachability and cache/log directory access")
	return cmd
}

func newConfigSetAPIKeyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "set-api-key [KEY]",
		Short:       "Store the TMDB API key in the configuration file",
		Long:        "Store the TMDB API key in the configuration file. Without KEY the key is read from stdin.",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = strings.TrimSpace(args[0])
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "TMDB API key: ")
				read, err := readSecret(cmd.InOrStdin())
				fmt.Fprintln(cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read api key: %w", err)
				}
				key = read
			}
			if key == "" {
				return errors.New("api key is empty")
			}

			path, err := ctx.targetConfigPath()
			if err != nil {
				return err
			}
			if err := config.SaveAPIKey(path, key); err != nil {
				return fmt.Errorf("save api key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved TMDB API key to %s\n", path)
			return nil
		},
	}
}
