package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/pkg/htmldash"
	"github.com/spf13/cobra"
)

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Generate the static HTML dashboard",
	Long: `Renders the full dashboard (metrics, daily/hourly/weekday activity and
work-hour statistics) into a self-contained HTML file.`,
	RunE: runHTML,
}

func init() {
	htmlCmd.Flags().StringP("output", "o", "duty_dashboard.html", "Output HTML file")
}

func runHTML(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	data, err := app.dashboard.GetDashboard(context.Background(), duty.Filter{})
	if err != nil {
		return fmt.Errorf("building dashboard data: %w", err)
	}

	renderer, err := htmldash.NewRenderer()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := renderer.Render(f, data); err != nil {
		os.Remove(output)
		return fmt.Errorf("rendering dashboard: %w", err)
	}

	fmt.Printf("HTML dashboard created: %s\n", output)
	return nil
}
