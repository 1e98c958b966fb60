package siteconfig

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

/*
CopyrightYear returns the year, or year range, shown in the footer.
"start-date" takes precedence over "start-year". A start in the future is
ignored with a warning.
*/
func CopyrightYear(config SiteConfig, now time.Time) string {
	var (
		err       error
		startYear int
		hasStart  bool
	)

	currentYear := now.Year()

	if startDate := strings.TrimSpace(config.Value(KeyStartDate)); startDate != "" {
		if startYear, err = parseStartDate(startDate); err != nil {
			slog.Warn("unable to parse start-date, ignoring it", "startDate", startDate, "error", err)
		} else {
			hasStart = true
		}
	}

	if !hasStart {
		if raw := strings.TrimSpace(config.Value(KeyStartYear)); raw != "" {
			if startYear, err = strconv.Atoi(raw); err != nil {
				slog.Warn("unable to parse start-year, ignoring it", "startYear", raw, "error", err)
			} else {
				hasStart = true
			}
		}
	}

	if !hasStart {
		return strconv.Itoa(currentYear)
	}

	if startYear > currentYear {
		slog.Warn("start year is after the current year, using the current year", "startYear", startYear, "currentYear", currentYear)
		return strconv.Itoa(currentYear)
	}

	if startYear == currentYear {
		return strconv.Itoa(currentYear)
	}

	return fmt.Sprintf("%d-%d", startYear, currentYear)
}

func parseStartDate(value string) (int, error) {
	var (
		err    error
		parsed time.Time
	)

	layout := ""

	switch {
	case strings.Contains(value, "-"):
		layout = "2006-1-2"
	case strings.Contains(value, "/"):
		layout = "2006/1/2"
	case strings.Contains(value, "."):
		layout = "2006.1.2"
	}

	if layout == "" {
		return strconv.Atoi(value)
	}

	if parsed, err = time.Parse(layout, value); err != nil {
		return 0, fmt.Errorf("error parsing start date '%s': %w", value, err)
	}

	return parsed.Year(), nil
}
