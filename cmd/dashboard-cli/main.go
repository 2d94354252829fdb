package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-sentiment-dashboard/internal/dashboard/config"
	"stock-sentiment-dashboard/internal/dashboard/render"
	"stock-sentiment-dashboard/internal/dashboard/repository"
	"stock-sentiment-dashboard/internal/dashboard/service"
	"stock-sentiment-dashboard/pkg/logger"
	"stock-sentiment-dashboard/pkg/terminal"
	"stock-sentiment-dashboard/pkg/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configPath string
	keyword    string
	noColor    bool
	htmlPath   string

	email     string
	startDate string
	endDate   string
)

var rootCmd = &cobra.Command{
	Use:           "dashboard-cli",
	Short:         "A terminal client for the stock sentiment dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Loads and prints the dashboard for a keyword",
	RunE:  runSnapshot,
}

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Requests an emailed sentiment report",
	RunE:  runEmail,
}

func setup(cmd *cobra.Command) (*service.ViewController, *terminal.Formatter, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if keyword == "" {
		keyword = cfg.Dashboard.SeedKeyword
	}

	backendRepo := repository.NewBackendRepository(cfg.Backend, appLogger)
	controller := service.NewViewController(backendRepo, appLogger, keyword)
	formatter := terminal.NewFormatter(cmd.OutOrStdout(), !noColor && !color.NoColor)
	return controller, formatter, func() { _ = appLogger.Sync() }, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller, formatter, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	loadErr := controller.Activate(ctx)
	if htmlPath != "" {
		if err := writeHTML(htmlPath, controller.State()); err != nil {
			return err
		}
		return loadErr
	}
	if err := formatter.Render(controller.State()); err != nil {
		return err
	}
	return loadErr
}

// writeHTML saves the dashboard page for state to path.
func writeHTML(path string, state service.ViewState) error {
	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := renderer.RenderPage(f, render.NewPage(state)); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return f.Close()
}

func runEmail(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller, formatter, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	defaultStart, defaultEnd := utils.DefaultReportRange(time.Now())
	if startDate == "" {
		startDate = defaultStart
	}
	if endDate == "" {
		endDate = defaultEnd
	}
	controller.SetEmailForm(email, startDate, endDate)

	submitErr := controller.SubmitEmailRequest(ctx)
	if status := controller.State().EmailStatus; status != nil {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.EmailStatus(render.EmailStatusView{Kind: string(status.Kind), Text: status.Text}))
	}
	return submitErr
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&keyword, "keyword", "k", "", "Stock keyword (defaults to dashboard.seed_keyword)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	snapshotCmd.Flags().StringVar(&htmlPath, "html", "", "Write the dashboard as an HTML page to this file instead of printing it")

	emailCmd.Flags().StringVarP(&email, "email", "e", "", "Recipient address")
	emailCmd.Flags().StringVar(&startDate, "start", "", "Report start date (YYYY-MM-DD), defaults to two days ago")
	emailCmd.Flags().StringVar(&endDate, "end", "", "Report end date (YYYY-MM-DD), defaults to today")

	rootCmd.AddCommand(snapshotCmd, emailCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-cli: %s\n", err)
		os.Exit(1)
	}
}
