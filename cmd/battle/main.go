// Package main is the entry point for the rpg-battle CLI
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// cli carries state shared by every subcommand
type cli struct {
	v   *viper.Viper
	cfg *config.Config
	in  io.Reader
	out io.Writer

	configPath string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{
		v:   config.NewViper(),
		in:  in,
		out: out,
	}

	rootCmd := &cobra.Command{
		Use:   "rpg-battle",
		Short: "Turn-based creature battles in the terminal",
		Long: `rpg-battle runs two-actor creature battles: play against a bot,
simulate bot-vs-bot batches, or list recorded results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Int64("seed", 0, "dice seed; 0 draws a random one, reported so the run can be replayed")
	flags.String("history", config.HistoryMemory, "history backend: none, memory, redis")
	flags.String("prototypes", "", "path to a creature YAML pack; empty uses the built-in pack")

	bindings := map[string]string{
		"log.level":            "log-level",
		"log.format":           "log-format",
		"battle.seed":          "seed",
		"history.backend":      "history",
		"data.prototypes_file": "prototypes",
	}
	for key, flag := range bindings {
		// BindPFlag only fails on a nil flag
		_ = c.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		c.newPlayCmd(),
		c.newSimulateCmd(),
		c.newHistoryCmd(),
	)

	return rootCmd
}

// load reads configuration and installs the default slog handler
func (c *cli) load(cmd *cobra.Command) error {
	cfg, err := config.Load(c.v, c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(os.Stdin, os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// reportError prints err followed by any field-level validation failures
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	if !ok {
		return
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(fields[name], ", "))
	}
}
