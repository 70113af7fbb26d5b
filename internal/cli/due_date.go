package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paydate-engine/internal/calendar"
	"paydate-engine/internal/holidays"
	"paydate-engine/internal/paydate"
)

const displayLayout = "Mon January 2, 2006"

type dueDateOptions struct {
	FundDay       string
	PayDay        string
	PaySpan       string
	DirectDeposit bool
	Holidays      []string
	HolidaysFile  string
	Calendar      string
	Strict        bool
	Trace         bool
}

var dueDateCmd = LeafCommand{
	Use:   "due-date",
	Short: "Resolve the due date for one funded loan",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "fund-day", Usage: "date the loan was funded (YYYY-MM-DD)"},
		{Name: "pay-day", Usage: "one of the borrower's paydays (YYYY-MM-DD)"},
		{Name: "pay-span", Usage: "pay cadence: weekly, bi-weekly or monthly"},
		{Name: "holidays-file", Usage: "YAML or CSV file with named holiday calendars"},
		{Name: "calendar", Usage: "holiday calendar to use from --holidays-file"},
	},
	BoolFlags: []BoolFlag{
		{Name: "direct-deposit", Usage: "borrower is paid by direct deposit"},
		{Name: "strict", Usage: "reject unknown pay spans instead of using a 30 day cadence"},
		{Name: "trace", Usage: "print every projected payday"},
	},
	SliceFlags: []StringSliceFlag{
		{Name: "holiday", Usage: "holiday date (YYYY-MM-DD), repeatable"},
	},
	Required: []string{"fund-day", "pay-day", "pay-span"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts dueDateOptions
		opts.FundDay, _ = cmd.Flags().GetString("fund-day")
		opts.PayDay, _ = cmd.Flags().GetString("pay-day")
		opts.PaySpan, _ = cmd.Flags().GetString("pay-span")
		opts.HolidaysFile, _ = cmd.Flags().GetString("holidays-file")
		opts.Calendar, _ = cmd.Flags().GetString("calendar")
		opts.DirectDeposit, _ = cmd.Flags().GetBool("direct-deposit")
		opts.Strict, _ = cmd.Flags().GetBool("strict")
		opts.Trace, _ = cmd.Flags().GetBool("trace")
		opts.Holidays, _ = cmd.Flags().GetStringSlice("holiday")

		return runDueDate(cmd, opts)
	},
}.Build()

func runDueDate(cmd *cobra.Command, opts dueDateOptions) error {
	fundDay, err := calendar.Parse(opts.FundDay)
	if err != nil {
		return fmt.Errorf("fund day: %w", err)
	}
	payDay, err := calendar.Parse(opts.PayDay)
	if err != nil {
		return fmt.Errorf("pay day: %w", err)
	}

	holidaySet, err := loadHolidays(opts)
	if err != nil {
		return err
	}

	calc := paydate.Calculator{Strict: opts.Strict}
	res, err := calc.DueDate(paydate.FundingRecord{
		FundDay:       fundDay,
		PaySpan:       paydate.PaySpan(opts.PaySpan),
		KnownPayDay:   payDay,
		DirectDeposit: opts.DirectDeposit,
		Holidays:      holidaySet,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !paydate.PaySpan(opts.PaySpan).Known() {
		_, _ = fmt.Fprintf(out, "warning: unknown pay span %q, using a 30 day cadence\n", opts.PaySpan)
	}
	if opts.Trace {
		for _, s := range res.Steps {
			_, _ = fmt.Fprintf(out, "#%d payday %s candidate %s adjusted %s\n", s.Iteration, s.Projected, s.Candidate, s.Adjusted)
		}
	}
	_, _ = fmt.Fprintf(out, "Due date: %s\n", res.DueDate.Format(displayLayout))
	return nil
}

func loadHolidays(opts dueDateOptions) (calendar.HolidaySet, error) {
	set, err := calendar.ParseHolidays(opts.Holidays)
	if err != nil {
		return nil, err
	}

	if opts.Calendar == "" {
		return set, nil
	}
	if opts.HolidaysFile == "" {
		return nil, fmt.Errorf("--calendar requires --holidays-file")
	}

	reg, err := holidays.Load(opts.HolidaysFile)
	if err != nil {
		return nil, err
	}
	named, err := reg.Get(opts.Calendar)
	if err != nil {
		return nil, err
	}
	return set.Union(named), nil
}
