package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/employee"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [employee name]",
	Short: "Show one employee's duty schedule",
	Long: `Shows the complete per-date duty schedule and quick insights for one
employee. Without an argument, lists the available employees.

Examples:
  dutyboard lookup
  dutyboard lookup "Alice Smith"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if len(args) == 0 {
		return printEmployeeList(ctx, app)
	}

	name := args[0]
	schedule, err := app.employee.GetSchedule(ctx, name, duty.Filter{})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("no duty records found for %q (try 'dutyboard lookup' to list employees)", name)
		}
		return err
	}
	insights, err := app.employee.GetInsights(ctx, name)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Duty schedule for " + schedule.Name))
	fmt.Println()
	fmt.Printf("%-12s %-10s %-28s %-28s %-14s %s\n", "DATE", "DAY", "DUTY ON", "DUTY OFF", "DURATION", "RECORDS")
	fmt.Println(mutedStyle.Render(strings.Repeat("-", 100)))
	for _, row := range schedule.Schedule {
		duration := "N/A"
		if row.WorkHours != nil {
			duration = fmt.Sprintf("%.2f hours", *row.WorkHours)
		}
		fmt.Printf("%-12s %-10s %-28s %-28s %-14s %d\n",
			row.Date,
			row.Weekday,
			joinOrNA(row.DutyOn),
			joinOrNA(row.DutyOff),
			duration,
			row.Records,
		)
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Quick insights"))
	fmt.Printf("  Working days:       %d\n", insights.TotalDays)
	fmt.Printf("  Duty on records:    %s\n", onStyle.Render(fmt.Sprintf("%d", insights.DutyOnRecords)))
	fmt.Printf("  Duty off records:   %s\n", offStyle.Render(fmt.Sprintf("%d", insights.DutyOffRecords)))
	fmt.Printf("  Records per day:    %.1f\n", insights.RecordsPerDay)
	fmt.Printf("  First record:       %s\n", insights.FirstRecord)
	fmt.Printf("  Last record:        %s\n", insights.LastRecord)
	if insights.CommonDutyOnHour != nil {
		fmt.Printf("  Common duty-on hour: %02d:00\n", *insights.CommonDutyOnHour)
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Recent activity"))
	for _, e := range insights.RecentActivity {
		style := onStyle
		if e.Status == "DutyOff" {
			style = offStyle
		}
		fmt.Printf("  %s  %s  %s\n", e.Date, style.Render(fmt.Sprintf("%-7s", e.Status)), e.Time)
	}
	return nil
}

func printEmployeeList(ctx context.Context, app *app) error {
	items, err := app.employee.List(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Available employees"))
	for _, item := range items {
		fmt.Printf("  %s %s\n", item.Name, mutedStyle.Render(fmt.Sprintf("(%d records)", item.Records)))
	}
	return nil
}

func joinOrNA(times []string) string {
	if len(times) == 0 {
		return "N/A"
	}
	return strings.Join(times, ", ")
}
