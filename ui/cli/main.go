// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command: persistent flags, config loading and
// the default action of launching the interactive workbench.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/payveri/affine/buildvars"
	"github.com/payveri/affine/core/affine"
	"github.com/payveri/affine/internal/config"
	"github.com/payveri/affine/internal/i18n"
	"github.com/payveri/affine/internal/logging"
	"github.com/payveri/affine/internal/tui"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/payveri/affine"

var version = buildvars.VersionOrDefault("dev") // this will be set by the linker
var gitCommit = "dev"                            // set at build time with the short commit SHA
var buildDate = ""                               // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// configFileUsed is the config file that was read, if any.
var configFileUsed string

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, configFileUsed, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in a user's file fall back to defaults.
	defaults := config.Defaults()
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = defaults["log_level"].(string)
	}
	if appConfig.Server.Addr == "" {
		appConfig.Server.Addr = defaults["server.addr"].(string)
	}

	if err := logging.SetLevel(appConfig.LogLevel); err != nil {
		logging.Warnf("%v, using info", err)
		_ = logging.SetLevel("info")
	}
	if verbose {
		logging.SetDebug(true)
	}
	if configFileUsed != "" {
		logging.Debugf("using config file %s", configFileUsed)
	}

	i18n.Init(appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command with fresh
// subcommands, so tests can build isolated instances.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affine",
		Short: "Affine cipher toolkit: encrypt, decrypt and inspect affine keys.",
		Long: `Affine encrypts and decrypts text with the affine substitution cipher
E(x) = (a·x + b) mod 26. Letters keep their case; everything else passes
through unchanged. The multiplier a must be coprime with 26.

Running without a subcommand launches the interactive workbench.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion(nil))
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Options{
				Key:     affine.Key{A: appConfig.Key.A, B: appConfig.Key.B},
				StrictB: appConfig.Key.StrictB,
			})
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "id")`)
	cmd.PersistentFlags().String("log_level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newEncryptCmd(),
		newDecryptCmd(),
		newCheckCmd(),
		newKeysCmd(),
		newCrackCmd(),
		newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
			return nil
		},
	}
}

func compositeVersion(info *debug.BuildInfo) string {
	v, c, d := resolveBuildVersion(info)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// When built as a dependency, Main may not carry our version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
