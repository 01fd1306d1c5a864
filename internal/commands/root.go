package commands

import (
	"fmt"

	"github.com/shiftlog/duty-dashboard-go/internal/config"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/dashboard"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/employee"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/report"
	"github.com/shiftlog/duty-dashboard-go/internal/repository/csvfile"
	dashboardService "github.com/shiftlog/duty-dashboard-go/internal/service/dashboard"
	dutyService "github.com/shiftlog/duty-dashboard-go/internal/service/duty"
	employeeService "github.com/shiftlog/duty-dashboard-go/internal/service/employee"
	reportService "github.com/shiftlog/duty-dashboard-go/internal/service/report"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagDataGlob   string
	flagReportsDir string
)

var rootCmd = &cobra.Command{
	Use:   "dutyboard",
	Short: "Duty schedule analysis and dashboards",
	Long: `dutyboard ingests duty on/off swipe logs, reconstructs per-day work
sessions and serves the results as terminal reports, CSV artifacts and
a web dashboard.`,
}

// app bundles the wired services shared by every command.
type app struct {
	cfg       *config.Config
	duty      duty.DutyService
	dashboard dashboard.DashboardService
	employee  employee.EmployeeService
	report    report.ReportService
}

// newApp loads config and wires repositories and services. Command-line
// flags override the environment.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDataGlob != "" {
		cfg.Data.Glob = flagDataGlob
	}
	if flagReportsDir != "" {
		cfg.Data.ReportsDir = flagReportsDir
	}

	eventRepo := csvfile.NewEventRepository(cfg.Data.Glob)
	dutySvc := dutyService.NewDutyService(eventRepo)

	return &app{
		cfg:       cfg,
		duty:      dutySvc,
		dashboard: dashboardService.NewDashboardService(dutySvc),
		employee:  employeeService.NewEmployeeService(dutySvc),
		report:    reportService.NewReportService(dutySvc, cfg.Data.ReportsDir),
	}, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataGlob, "data", "", "Glob pattern of duty log CSV files (overrides DATA_GLOB)")
	rootCmd.PersistentFlags().StringVar(&flagReportsDir, "reports-dir", "", "Directory for generated reports (overrides REPORTS_DIR)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
