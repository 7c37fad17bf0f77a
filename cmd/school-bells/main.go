package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/school-bells/internal/calendar"
	"github.com/username/school-bells/internal/config"
	"github.com/username/school-bells/internal/schedule"
	"github.com/username/school-bells/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
	out        io.Writer = os.Stdout
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "school-bells",
		Short: "School bell schedule",
		Long:  "Resolve the school day, the period in session and the month's letter-day calendar",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			level := ""
			if err == nil {
				level = cfg.Log.Level
			}
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, level)
				if err != nil {
					initLogger(level) // Fallback to console
				}
			} else {
				initLogger(level) // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(todayCmd())
	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(icalCmd())
	rootCmd.AddCommand(setDayCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(issuesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func todayCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's letter day and schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			date := app.clock.Now()
			if dateStr != "" {
				if date, err = dateutil.ParseDate(dateStr, app.location); err != nil {
					return err
				}
			}

			info, err := app.manager.Day(cmd.Context(), date)
			if err != nil {
				return err
			}

			name, ok := info.Day.Name()
			if !ok {
				outPrintf("%s: no school\n", info.Date.Format("Monday, January 2"))
				return nil
			}
			outPrintf("%s: %s\n", info.Date.Format("Monday, January 2"), name)
			printSchedule(info.Day.Special)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to show (YYYY-MM-DD), defaults to today")

	return cmd
}

func nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the period in session right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			status, err := app.manager.Now(cmd.Context())
			if err != nil {
				return err
			}

			switch {
			case !status.Day.InSession():
				outPrintln("No school today")
			case !status.Active:
				outPrintf("%s, no period in session\n", status.Name)
			default:
				outPrintf("%s, %s (%s)\n", status.Name, status.Label, status.Range)
			}
			return nil
		},
	}
}

func monthCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month's letter days",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			date, err := parseMonth(monthStr, app)
			if err != nil {
				return err
			}

			month, err := app.manager.MonthOf(cmd.Context(), date)
			if err != nil {
				return err
			}

			outPrintf("\n📅 %s %d\n", month.Month, month.Year)
			outPrintln("═══════════════════════════════════════════════════════")
			for _, info := range month.Days {
				name, _ := info.Day.Name()
				outPrintf("  %s | %s\n", info.Date.Format("Mon Jan 02"), name)
			}
			outPrintln("───────────────────────────────────────────────────────")
			outPrintf("  School days: %d\n", month.SchoolDays)
			for _, l := range schedule.Letters {
				if n := month.ByLetter[l]; n > 0 {
					outPrintf("  %s days: %d\n", l, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to show (YYYY-MM), defaults to the current month")

	return cmd
}

func icalCmd() *cobra.Command {
	var monthStr string
	var output string

	cmd := &cobra.Command{
		Use:   "ical",
		Short: "Export the month's schedule as iCalendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			date, err := parseMonth(monthStr, app)
			if err != nil {
				return err
			}

			month, err := app.manager.MonthOf(cmd.Context(), date)
			if err != nil {
				return err
			}

			data, err := calendar.ExportICal(month, app.clock.Now())
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			logger.Info("Calendar exported",
				zap.String("file", output),
				zap.Int("days", month.SchoolDays))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to export (YYYY-MM), defaults to the current month")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func parseMonth(monthStr string, app *application) (time.Time, error) {
	if monthStr == "" {
		return app.clock.Now(), nil
	}
	date, err := time.ParseInLocation("2006-01", monthStr, app.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", monthStr, err)
	}
	return date, nil
}

func printSchedule(special schedule.Special) {
	width := 0
	for i := range special.Periods {
		width = max(width, len(special.Label(i)))
	}
	for i, r := range special.Periods {
		label := special.Label(i)
		outPrintf("  %s%s  %s\n", label, strings.Repeat(" ", width-len(label)), r)
	}
}

func outPrintf(format string, a ...interface{}) {
	fmt.Fprintf(out, format, a...)
}

func outPrintln(a ...interface{}) {
	fmt.Fprintln(out, a...)
}

func initLogger(level string) {
	var err error
	logger, err = newConsoleLogger(level)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func newConsoleLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}

// parseLevel reads a zap level name, defaulting to info
func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}
