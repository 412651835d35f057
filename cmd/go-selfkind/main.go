package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/go-selfkind/cmd/go-selfkind/check"
	"github.com/walteh/go-selfkind/cmd/go-selfkind/demo"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "go-selfkind",
		Short: "A checker for the fluent self-return convention",
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.AddCommand(check.NewCheckCommand())
	rootCmd.AddCommand(demo.NewDemoCommand())

	logger := zerolog.New(zerolog.NewConsoleWriter()).With().
		Timestamp().
		Str("app", "go-selfkind").
		Logger()
	ctx := logger.WithContext(context.Background())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
