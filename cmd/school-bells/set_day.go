package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/school-bells/internal/schedule"
	"github.com/username/school-bells/pkg/dateutil"
	"go.uber.org/zap"
)

func setDayCmd() *cobra.Command {
	var dateStr string
	var letterStr string
	var specialName string
	var noSchool bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "set-day",
		Short: "Set the letter and schedule of a calendar day",
		Long:  "Write one day of the school calendar. Without --special the letter's default schedule is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dateStr == "" {
				return fmt.Errorf("--date must be specified")
			}
			if noSchool == (letterStr != "") {
				return fmt.Errorf("exactly one of --letter and --no-school must be specified")
			}
			if noSchool && specialName != "" {
				return fmt.Errorf("--special cannot be combined with --no-school")
			}

			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			date, err := dateutil.ParseDate(dateStr, app.location)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			day := schedule.NoSchool()
			if !noSchool {
				letter, err := schedule.ParseLetter(letterStr)
				if err != nil {
					return err
				}
				if specialName == "" {
					day, err = app.catalog.NewDay(letter, date)
					if err != nil {
						return err
					}
				} else {
					special, err := app.catalog.Lookup(specialName)
					if err != nil {
						return fmt.Errorf("%w (known schedules: %v)", err, app.catalog.Names())
					}
					day = schedule.NewDayWithSpecial(letter, special)
				}
			}

			name, ok := day.Name()
			if !ok {
				name = "no school"
			}

			logger.Info("Setting calendar day",
				zap.String("date", date.Format(dateutil.DateLayout)),
				zap.String("day", name),
				zap.Bool("dry_run", dryRun))

			if dryRun {
				outPrintf("📋 %s would become %s\n", date.Format(dateutil.DateLayout), name)
				return nil
			}

			if err := app.calendar.SetDay(cmd.Context(), date, day); err != nil {
				return err
			}
			outPrintf("✅ %s is now %s\n", date.Format(dateutil.DateLayout), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to set (YYYY-MM-DD)")
	cmd.Flags().StringVar(&letterStr, "letter", "", "Day letter (M, R, A, B, C, E, F)")
	cmd.Flags().StringVar(&specialName, "special", "", "Schedule name, defaults to the letter's schedule")
	cmd.Flags().BoolVar(&noSchool, "no-school", false, "Remove the day from the calendar")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the change without writing it")

	return cmd
}
