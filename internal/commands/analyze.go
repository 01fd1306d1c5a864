package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the duty log in the terminal",
	Long: `Prints the duty schedule organized by person and by date, with per-day
work durations, then writes the four CSV report artifacts.

Examples:
  dutyboard analyze
  dutyboard analyze --data 'logs/*.csv' --no-reports`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("no-reports", false, "Skip writing the CSV report files")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	events, err := app.duty.FilteredEvents(ctx, duty.Filter{})
	if err != nil {
		return fmt.Errorf("loading duty log: %w", err)
	}
	sessions, err := app.duty.ListSessions(ctx, duty.Filter{})
	if err != nil {
		return err
	}

	printOverview(events)
	printByPerson(events, sessions)
	printByDate(events)

	if skip, _ := cmd.Flags().GetBool("no-reports"); skip {
		return nil
	}

	batch, err := app.report.GenerateAll(ctx)
	if err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Reports written:"))
	for _, f := range batch.Files {
		fmt.Printf("  %s (%s rows)\n", f.Path, humanize.Comma(int64(f.Rows)))
	}
	return nil
}

func printOverview(events []duty.Event) {
	names := make(map[string]struct{})
	first, last := "", ""
	for _, e := range events {
		names[e.Name] = struct{}{}
		date := e.Date()
		if first == "" || date < first {
			first = date
		}
		if date > last {
			last = date
		}
	}

	fmt.Println(titleStyle.Render("Duty Schedule Analysis"))
	fmt.Printf("Total records:    %s\n", humanize.Comma(int64(len(events))))
	fmt.Printf("Date range:       %s to %s\n", first, last)
	fmt.Printf("Unique employees: %d\n", len(names))
}

func printByPerson(events []duty.Event, sessions []duty.Session) {
	fmt.Println()
	fmt.Println(sectionStyle.Render(strings.Repeat("=", 60)))
	fmt.Println(sectionStyle.Render("Duty schedule by person"))
	fmt.Println(sectionStyle.Render(strings.Repeat("=", 60)))

	durations := make(map[string]float64, len(sessions))
	for _, s := range sessions {
		durations[s.Name+"|"+s.Date] = s.Hours
	}

	byPerson := make(map[string][]duty.Event)
	for _, e := range events {
		byPerson[e.Name] = append(byPerson[e.Name], e)
	}

	for _, name := range sortedKeys(byPerson) {
		fmt.Printf("\nEmployee: %s\n", sectionStyle.Render(strings.ToUpper(name)))
		fmt.Println(mutedStyle.Render(strings.Repeat("-", 50)))

		byDate := make(map[string][]duty.Event)
		for _, e := range byPerson[name] {
			byDate[e.Date()] = append(byDate[e.Date()], e)
		}

		for _, date := range sortedKeys(byDate) {
			fmt.Printf("\n  Date: %s\n", date)
			for _, e := range byDate[date] {
				clock := e.Timestamp.Format("15:04:05")
				if e.Status == duty.StatusDutyOn {
					fmt.Printf("    %s  %s\n", onStyle.Render("Duty ON: "), clock)
				} else {
					fmt.Printf("    %s  %s\n", offStyle.Render("Duty OFF:"), clock)
				}
			}
			if hours, ok := durations[name+"|"+date]; ok {
				fmt.Printf("    Total duty time: %.2f hours\n", hours)
			}
		}
	}
}

func printByDate(events []duty.Event) {
	fmt.Println()
	fmt.Println(sectionStyle.Render(strings.Repeat("=", 60)))
	fmt.Println(sectionStyle.Render("Duty schedule by date"))
	fmt.Println(sectionStyle.Render(strings.Repeat("=", 60)))

	byDate := make(map[string][]duty.Event)
	for _, e := range events {
		byDate[e.Date()] = append(byDate[e.Date()], e)
	}

	for _, date := range sortedKeys(byDate) {
		fmt.Printf("\nDate: %s\n", sectionStyle.Render(date))
		fmt.Println(mutedStyle.Render(strings.Repeat("-", 50)))

		day := byDate[date]
		sort.SliceStable(day, func(i, j int) bool { return day[i].Timestamp.Before(day[j].Timestamp) })

		var on, off int
		fmt.Println(onStyle.Render("  Duty on:"))
		for _, e := range day {
			if e.Status == duty.StatusDutyOn {
				fmt.Printf("    %s - %s\n", e.Timestamp.Format("15:04:05"), e.Name)
				on++
			}
		}
		fmt.Println(offStyle.Render("  Duty off:"))
		for _, e := range day {
			if e.Status == duty.StatusDutyOff {
				fmt.Printf("    %s - %s\n", e.Timestamp.Format("15:04:05"), e.Name)
				off++
			}
		}
		fmt.Printf("  Summary: %d on duty, %d off duty\n", on, off)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
