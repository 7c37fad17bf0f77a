package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/school-bells/pkg/dateutil"
)

func issuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues <publication>",
		Short: "List a publication's issue archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			svc, err := app.publications()
			if err != nil {
				return err
			}

			meta, err := svc.Describe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			archive, err := svc.Archive(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			outPrintf("\n📰 %s\n", meta.Name)
			if meta.Description != "" {
				outPrintln("  " + meta.Description)
			}
			outPrintln("═══════════════════════════════════════════════════════")
			if len(archive) == 0 {
				outPrintln("  No issues yet")
			}
			for _, year := range archive {
				outPrintf("%d\n", year.Year)
				for _, month := range year.Months {
					outPrintf("  %s\n", month.Month)
					for _, issue := range month.Issues {
						outPrintf("    %s  %s\n", issue.Title(), issue.Name)
					}
				}
			}
			return nil
		},
	}

	cmd.AddCommand(uploadIssueCmd())

	return cmd
}

func uploadIssueCmd() *cobra.Command {
	var dateStr string
	var suffix string
	var coverPath string

	cmd := &cobra.Command{
		Use:   "upload <publication> <file.pdf>",
		Short: "Upload a new issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			date := app.clock.Now()
			if dateStr != "" {
				if date, err = dateutil.ParseDate(dateStr, app.location); err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read issue: %w", err)
			}

			svc, err := app.publications()
			if err != nil {
				return err
			}

			issue, err := svc.Upload(cmd.Context(), args[0], date, suffix, data)
			if err != nil {
				return err
			}

			if coverPath != "" {
				cover, err := os.ReadFile(coverPath)
				if err != nil {
					return fmt.Errorf("failed to read cover: %w", err)
				}
				if err := svc.UploadCover(cmd.Context(), issue, cover); err != nil {
					return err
				}
			}

			outPrintf("✅ Uploaded %s\n", issue.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Issue date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Optional name suffix, e.g. special")
	cmd.Flags().StringVar(&coverPath, "cover", "", "Cover image (JPEG) to upload with the issue")

	return cmd
}
