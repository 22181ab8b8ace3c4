// Package main запускает HTTP-сервис поиска участников команд.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"member-search-service/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "member-search-service",
	Short:         "Search and paging over team members",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default: ./config.yaml if present)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup читает конфигурацию и собирает логгер для любой команды.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(cfg.Log), nil
}

func newLogger(l config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}

	var handler slog.Handler
	switch strings.ToLower(l.Format) {
	case "text", "console":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
