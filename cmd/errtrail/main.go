// Package main implements the errtrail CLI for exercising a collector
// configuration by hand: it builds a client from config and sends one
// report, so a misconfigured endpoint or key shows up before the SDK is
// wired into an application.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/errtrail/internal/config"
	"github.com/fyrsmithlabs/errtrail/internal/logging"
	"github.com/fyrsmithlabs/errtrail/pkg/telemetry"
)

// version information (set via ldflags during build)
var version = "dev"

var (
	configPath string
	message    string
	level      string
	asError    bool
	tags       map[string]string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "errtrail",
	Short: "CLI for the errtrail error-telemetry client",
	Long: `errtrail sends a single test report to a collection endpoint using the
same client the SDK embeds, so configuration problems surface immediately.

Configuration comes from a YAML file and ERRTRAIL_* environment variables;
see internal/config for the full mapping.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send one test report to the configured collector",
	Long: `Send one test report to the configured collector.

Examples:
  # Send an info message
  ERRTRAIL_API_KEY=k ERRTRAIL_ENDPOINT=https://errors.example.com errtrail send

  # Send as an exception with extra tags
  errtrail send --config errtrail.yaml --error --message "synthetic failure" --tag team=infra`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&message, "message", "errtrail test report", "report message")
	sendCmd.Flags().StringVar(&level, "level", "info", "report level (error, warning, info, debug)")
	sendCmd.Flags().BoolVar(&asError, "error", false, "capture as an exception instead of a message")
	sendCmd.Flags().StringToStringVar(&tags, "tag", nil, "call-site tags as key=value")
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logger, err := logging.New(&cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := telemetry.New(telemetry.Config{
		APIKey:      cfg.APIKey.Value(),
		Endpoint:    cfg.Endpoint,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		Tags:        cfg.Tags,
		Logger:      logger,
	})

	// A fresh session id per invocation lets individual test sends be told
	// apart on the collector side.
	sessionID := uuid.NewString()
	client.SetTag("session_id", sessionID)

	client.AddBreadcrumb(telemetry.Breadcrumb{
		Message:  "errtrail send invoked",
		Category: "cli",
		Level:    telemetry.LevelInfo,
	})

	if asError {
		client.CaptureException(fmt.Errorf("%s", message), &telemetry.CaptureOptions{Tags: tags})
	} else {
		client.SetTags(tags)
		client.CaptureMessage(message, telemetry.Level(level))
	}

	if !client.Flush(10 * time.Second) {
		return fmt.Errorf("send did not complete within 10s")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "report dispatched (session_id=%s)\n", sessionID)
	return nil
}
