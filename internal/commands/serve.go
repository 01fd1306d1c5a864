package commands

import (
	"fmt"
	"net/http"

	appHTTP "github.com/shiftlog/duty-dashboard-go/internal/handler/http"
	"github.com/shiftlog/duty-dashboard-go/internal/pkg/htmldash"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API and web page",
	Long: `Starts the HTTP server exposing the JSON dashboard API under /api/v1
and the HTML dashboard page at /dashboard.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	renderer, err := htmldash.NewRenderer()
	if err != nil {
		return err
	}

	dashboardHandler := appHTTP.NewDashboardHandler(app.dashboard)
	dutyHandler := appHTTP.NewDutyHandler(app.duty)
	employeeHandler := appHTTP.NewEmployeeHandler(app.employee)
	reportHandler := appHTTP.NewReportHandler(app.report)
	pageHandler := appHTTP.NewPageHandler(app.dashboard, renderer)

	router := appHTTP.NewRouter(
		app.cfg.App.Env,
		app.cfg.App.FrontendURL,
		dashboardHandler,
		dutyHandler,
		employeeHandler,
		reportHandler,
		pageHandler,
	)

	port := fmt.Sprintf(":%d", app.cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	return http.ListenAndServe(port, router)
}
