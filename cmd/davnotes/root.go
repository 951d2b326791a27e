package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/davnotes"
	"github.com/aretw0/davnotes/pkg/config"
	"github.com/aretw0/davnotes/pkg/core"
)

var (
	verbose    bool
	configFile string
	adapter    string
	envFile    string

	// serviceOptions are applied to every service the CLI opens.
	serviceOptions []davnotes.Option
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "davnotes",
	Short: "Markdown notes on a WebDAV server, for humans and MCP agents",
	Long: `davnotes manages Markdown notes stored under /Notes on a WebDAV server
(Nextcloud, ownCloud, ...). Categories are folders directly below /Notes.

Run 'davnotes serve' to expose the same operations as MCP tools over stdio.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		// stdout carries MCP traffic in serve mode, so logs always go to stderr.
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a davnotes.yaml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: webdav or memory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file with WEBDAV_* variables")
}

// loadConfig resolves the config file and merges it with the environment.
func loadConfig() (config.Config, error) {
	path := configFile
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, err := davnotes.FindConfig(wd); err == nil {
				path = found
			}
		}
	}
	cfg, err := config.Load(config.Sources{File: path, DotEnv: envFile})
	if err != nil {
		return cfg, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	} else {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		}
	}
	if path != "" {
		slog.Debug("config loaded", "file", path)
	}
	return cfg, nil
}

// openService builds the note service shared by every command.
func openService(ctx context.Context, opts ...davnotes.Option) *core.Service {
	cfg, err := loadConfig()
	if err != nil {
		fatal("Failed to load configuration", err)
	}

	base := []davnotes.Option{davnotes.WithLogger(slog.Default())}
	base = append(base, serviceOptions...)
	if adapter != "" {
		base = append(base, davnotes.WithAdapter(adapter))
	}
	svc, err := davnotes.New(ctx, cfg, append(base, opts...)...)
	if err != nil {
		fatal("Failed to initialize davnotes", err)
	}
	return svc
}

// readContent returns --content, or the contents of --file ("-" reads stdin).
func readContent(content, file string) (string, error) {
	if file == "" {
		return content, nil
	}
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
