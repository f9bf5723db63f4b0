package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tarkov_market/internal/application"
	"tarkov_market/internal/config"
	"tarkov_market/internal/domain/service/questindex"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/contextx"
	"tarkov_market/pkg/logx"
)

// globalFlags общие флаги всех подкоманд.
type globalFlags struct {
	lang     string
	json     bool
	logLevel string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1) //nolint:gocritic
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "tarkovctl",
		Short: "Escape from Tarkov market tables from tarkov.dev",
		Long: `tarkovctl renders the same panels as the tarkov-market HTTP API in the terminal.

Configuration is read from the environment (TARKOV_DEV_ENDPOINT, TARKOV_DEV_REQUEST_TIMEOUT,
LOCALE_FILE, ...) and an optional .env file.`,
		SilenceUsage: true,
	}

	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "response language: ja or en (default APP_DEFAULT_LANGUAGE)")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "print the panel as JSON instead of a table")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newAmmoCmd(flags),
		newItemsCmd(flags),
		newCategoryCmd(flags),
		newBartersCmd(flags),
		newTaskItemsCmd(flags),
		newTasksCmd(flags),
		newCraftsCmd(flags),
	)

	return rootCmd
}

// session готовый к работе дашборд и выбранный язык.
type session struct {
	deps application.Dashboard
	lang value.Language
}

// newSession возвращает контекст команды с логгером.
func newSession(cmd *cobra.Command, flags *globalFlags) (context.Context, session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, session{}, fmt.Errorf("config.Load: %w", err)
	}

	log := logx.New(cmd.ErrOrStderr(), logx.ParseLevel(flags.logLevel), cfg.App.LogNoColor)
	ctx := contextx.WithLogger(cmd.Context(), log)

	deps, err := application.NewDashboard(cfg, questindex.NewMemoryStore(cfg.QuestIndex.TTL))
	if err != nil {
		return nil, session{}, fmt.Errorf("application.NewDashboard: %w", err)
	}

	lang := deps.DefaultLanguage

	if flags.lang != "" {
		if lang, err = value.ParseLanguage(flags.lang); err != nil {
			return nil, session{}, fmt.Errorf("value.ParseLanguage: %w", err)
		}
	}

	log.Debug("tarkovctl session", slog.String(logx.FieldLanguage, lang.String()))

	return ctx, session{deps: deps, lang: lang}, nil
}
