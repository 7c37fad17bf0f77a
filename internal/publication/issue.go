// Package publication serves the school's published issues (newsletters,
// bulletins) stored as PDF blobs named by publication and date.
package publication

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/username/school-bells/pkg/dateutil"
)

const (
	issueExt   = ".pdf"
	coverExt   = ".jpg"
	coversDir  = "covers"
	dateLength = len(dateutil.DateLayout)
)

// Issue is one published PDF, named <publication>/<YYYY-MM-DD>[-suffix].pdf
type Issue struct {
	Publication string
	Name        string // blob name
	Date        time.Time
	Suffix      string
}

// ParseIssue recognizes an issue blob name. Covers and unrelated blobs are rejected.
func ParseIssue(name string) (Issue, bool) {
	dir, file := path.Split(name)
	publication := strings.TrimSuffix(dir, "/")
	if publication == "" || strings.Contains(publication, "/") {
		return Issue{}, false
	}
	if !strings.HasSuffix(file, issueExt) {
		return Issue{}, false
	}

	stem := strings.TrimSuffix(file, issueExt)
	if len(stem) < dateLength {
		return Issue{}, false
	}
	date, err := time.Parse(dateutil.DateLayout, stem[:dateLength])
	if err != nil {
		return Issue{}, false
	}

	suffix := stem[dateLength:]
	if suffix != "" {
		if suffix[0] != '-' || len(suffix) == 1 {
			return Issue{}, false
		}
		suffix = suffix[1:]
	}

	return Issue{
		Publication: publication,
		Name:        name,
		Date:        date,
		Suffix:      suffix,
	}, true
}

// IssueName builds the blob name of an issue
func IssueName(publication string, date time.Time, suffix string) string {
	stem := date.Format(dateutil.DateLayout)
	if suffix != "" {
		stem += "-" + suffix
	}
	return path.Join(publication, stem+issueExt)
}

// CoverName returns the blob name of the issue's cover image
func (i Issue) CoverName() string {
	return path.Join(i.Publication, coversDir, i.Date.Format(dateutil.DateLayout)+coverExt)
}

// Title is a human-readable label for the issue
func (i Issue) Title() string {
	title := i.Date.Format("January 2, 2006")
	if i.Suffix != "" {
		title = fmt.Sprintf("%s (%s)", title, i.Suffix)
	}
	return title
}

// MonthIssues holds the issues of one month, newest first
type MonthIssues struct {
	Month  time.Month
	Issues []Issue
}

// YearIssues holds the months of one year that have issues, newest first
type YearIssues struct {
	Year   int
	Months []MonthIssues
}

// Archive groups issues by year and month. Issues must already be sorted newest first.
func Archive(issues []Issue) []YearIssues {
	var years []YearIssues
	for _, issue := range issues {
		year, month := issue.Date.Year(), issue.Date.Month()

		if len(years) == 0 || years[len(years)-1].Year != year {
			years = append(years, YearIssues{Year: year})
		}
		y := &years[len(years)-1]

		if len(y.Months) == 0 || y.Months[len(y.Months)-1].Month != month {
			y.Months = append(y.Months, MonthIssues{Month: month})
		}
		m := &y.Months[len(y.Months)-1]
		m.Issues = append(m.Issues, issue)
	}
	return years
}
