package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/weekplan/internal/config"
	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/planner"
	"github.com/sandeepkv93/weekplan/internal/server"
	"github.com/sandeepkv93/weekplan/internal/storage"
	"github.com/sandeepkv93/weekplan/internal/taskapi"
	"github.com/sandeepkv93/weekplan/internal/update"
	"github.com/sandeepkv93/weekplan/internal/views"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.FromEnv(config.Default())

	rootCmd := &cobra.Command{
		Use:           "weekplan",
		Short:         "A weekly task planner for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "task store base URL")
	flags.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file used by serve")
	flags.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "listen address used by serve")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reference task store on SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	todayCmd := &cobra.Command{
		Use:   "today [day]",
		Short: "Print the tasks of today or of the given day",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := make([]string, 0, 7)
			for _, day := range model.Days() {
				names = append(names, string(day))
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			day := model.Today(time.Now())
			if len(args) > 0 {
				parsed, err := model.ParseDay(args[0])
				if err != nil {
					return err
				}
				day = parsed
			}
			client, err := taskapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
			if err != nil {
				return err
			}
			tasks, err := client.ListTasks(cmd.Context(), taskapi.ListFilter{Day: day})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n\n%s\n", day, views.RenderStats(planner.ComputeStats(tasks)), views.RenderTaskList(tasks, -1))
			return nil
		},
	}

	timetableCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Print the weekly timetable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := taskapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
			if err != nil {
				return err
			}
			tasks, err := client.ListTasks(cmd.Context(), taskapi.ListFilter{})
			if err != nil {
				return err
			}
			grid, err := planner.BuildTimetable(tasks)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderTimetable(views.TimetableData{Grid: grid, Selected: model.Today(time.Now())}))
			return nil
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print weekly completion analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := taskapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
			if err != nil {
				return err
			}
			summary, err := client.Summary(cmd.Context())
			if errors.Is(err, taskapi.ErrNotFound) {
				summary, err = taskapi.SummaryFromTasks(cmd.Context(), client)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderAnalytics(views.AnalyticsData{
				Summary: summary,
				Week:    planner.WeekTotals(summary),
				Today:   model.Today(time.Now()),
			}))
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(timetableCmd)
	rootCmd.AddCommand(summaryCmd)

	return rootCmd
}

func runTUI(cfg config.RuntimeConfig) error {
	client, err := taskapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return err
	}
	program := tea.NewProgram(update.NewModel(client, cfg), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func runServe(ctx context.Context, cfg config.RuntimeConfig) error {
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repo.Close()

	srv, err := server.New(repo, log.New(os.Stderr, "weekplan ", log.LstdFlags))
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.ListenAddr)
}
