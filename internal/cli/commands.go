package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxometer/backend/internal/application/usecase/dashboard"
	"github.com/taxometer/backend/internal/application/usecase/shift"
	"github.com/taxometer/backend/internal/infra/dependency"
	"github.com/taxometer/backend/internal/integration/entrypoint/dto"
)

const (
	labelColWidth = 18
	valueColWidth = 12
)

func newSummaryCommand(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the totals of one day, week or month",
		Long: `Print the totals of the period containing --date (today by default).

Weeks run Monday to Sunday. Dates are read in the configured TIMEZONE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			period, _ := cmd.Flags().GetString("period")
			dateStr, _ := cmd.Flags().GetString("date")
			asJSON, _ := cmd.Flags().GetBool("json")

			return withInjector(cmd, open, func(injector *dependency.Injector) error {
				input := dashboard.GetPeriodSummaryInput{Period: period}
				if dateStr != "" {
					date, err := dashboard.ParseDay(dateStr, injector.Location)
					if err != nil {
						return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", dateStr)
					}
					input.Date = &date
				}

				output, err := injector.GetPeriodSummary.Execute(cmd.Context(), input)
				if err != nil {
					return err
				}

				response := dto.ToPeriodSummaryResponse(output.Summary)
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), response)
				}
				printSummary(cmd, output.Summary, response)
				return nil
			})
		},
	}

	cmd.Flags().StringP("period", "p", "day", "Period: day, week or month")
	cmd.Flags().StringP("date", "d", "", "Any day inside the period (YYYY-MM-DD)")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func printSummary(cmd *cobra.Command, summary dashboard.PeriodSummary, r dto.PeriodSummaryResponse) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, dashboard.PeriodTitle(summary.Period))
	fmt.Fprintln(w, dashboard.PeriodHeader(summary.Period, summary.Start))
	fmt.Fprintln(w)

	t := newTable(w, labelColWidth, valueColWidth, "Value")
	t.printHeader("Item")
	t.printSeparator()
	t.printRow("Shifts", strconv.Itoa(r.ShiftCount))
	t.printRow("Gross", money(r.Gross))
	t.printRow("Fuel", money(r.FuelCost))
	t.printRow("Commissions", money(r.Commissions))
	t.printRow("Fines", money(r.Fines))
	t.printRow("Tax", money(r.Tax))
	t.printRow("Distance, km", km(r.Km))
	t.printRow("Range used, km", km(r.RangeChange))
	t.printSeparator()
	t.printRow("Net", money(r.Net))
}

func newChartCommand(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print net earnings per day, week or month up to today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			period, _ := cmd.Flags().GetString("period")
			length, _ := cmd.Flags().GetInt("length")
			asJSON, _ := cmd.Flags().GetBool("json")

			return withInjector(cmd, open, func(injector *dependency.Injector) error {
				output, err := injector.GetChartSeries.Execute(cmd.Context(), dashboard.GetChartSeriesInput{
					Period: period,
					Length: length,
				})
				if err != nil {
					return err
				}

				response := dto.ToChartSeriesResponse(output)
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), response)
				}
				printChart(cmd, response)
				return nil
			})
		},
	}

	cmd.Flags().StringP("period", "p", "day", "Period: day, week or month")
	cmd.Flags().IntP("length", "n", 0, "Number of buckets (default depends on period)")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func printChart(cmd *cobra.Command, r dto.ChartSeriesResponse) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %s\n\n", r.Headline.Label, money(r.Headline.Net))

	t := newTable(w, labelColWidth, valueColWidth, "Net", "Shifts")
	t.printHeader("Bucket")
	t.printSeparator()
	for _, b := range r.Buckets {
		label := b.Label
		if b.IsCurrent {
			label += " *"
		}
		count := ""
		if b.ShiftCount > 0 {
			count = strconv.Itoa(b.ShiftCount)
		}
		t.printRow(label, money(b.Net), count)
	}
}

func newListCommand(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded shifts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			asJSON, _ := cmd.Flags().GetBool("json")

			return withInjector(cmd, open, func(injector *dependency.Injector) error {
				output, err := injector.ListShifts.Execute(cmd.Context(), shift.ListShiftsInput{Limit: limit})
				if err != nil {
					return err
				}

				response := dto.ToShiftListResponse(output)
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), response)
				}
				printShifts(cmd, response, injector.Location)
				return nil
			})
		},
	}

	cmd.Flags().IntP("limit", "l", 20, "Maximum number of shifts to print, 0 for all")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func printShifts(cmd *cobra.Command, r dto.ShiftListResponse, loc *time.Location) {
	w := cmd.OutOrStdout()

	t := newTable(w, labelColWidth, valueColWidth, "Gross", "Expenses", "Net", "Km")
	t.printHeader("Date")
	t.printSeparator()
	for _, s := range r.Shifts {
		t.printRow(
			s.Date.In(loc).Format("2006-01-02 15:04"),
			money(s.Breakdown.Gross),
			money(s.Breakdown.Expenses),
			money(s.Breakdown.Net),
			km(s.Breakdown.Distance),
		)
	}
	t.printSeparator()
	fmt.Fprintf(w, "%d of %d shifts\n", len(r.Shifts), r.Total)
}

func newTokenCommand(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API",
		Long:  "Issue a bearer token signed with JWT_SECRET. The API only checks tokens when JWT_SECRET is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, _ := cmd.Flags().GetDuration("ttl")
			subject, _ := cmd.Flags().GetString("subject")

			return withInjector(cmd, open, func(injector *dependency.Injector) error {
				if ttl <= 0 {
					ttl = injector.Config.JWT.TokenTTL
				}

				token, err := injector.TokenService.IssueToken(cmd.Context(), subject, ttl)
				if err != nil {
					return fmt.Errorf("failed to issue token: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}

	cmd.Flags().Duration("ttl", 0, "Token lifetime (default JWT_TOKEN_TTL)")
	cmd.Flags().String("subject", "driver", "Token subject")
	return cmd
}
