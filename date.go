package eortologio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParsedDate holds the components of an upstream Greek date string
// such as "1 Ιουλίου" or "1 Ιουλίου2025 Τρίτη".
type ParsedDate struct {
	Day           int
	Month         int
	MonthGenitive string
	Year          int

	// Weekday is the canonical Greek weekday when one was resolved,
	// the raw captured token when not, or empty when the text carried
	// no weekday at all.
	Weekday string
}

// dateTextRE captures day digits, a genitive Greek month name, an
// optional 4-digit year, and an optional trailing weekday token. The
// year is frequently glued to the month name without a space, and the
// weekday to the year.
var dateTextRE = regexp.MustCompile(`^(\d+)\s+([Α-Ωα-ωίϊΐόάέύϋΰήώ]+)(?:(\d{4}))?(?:\s*([Α-Ωα-ωίϊΐόάέύϋΰήώ]+))?`)

// ParseGreekDate parses upstream date text into its components.
// defaultYear is used when the text carries no year, which the
// upstream page omits for the current cycle. Returns false when no
// day number or mappable month can be recovered.
func ParseGreekDate(text string, defaultYear int) (ParsedDate, bool) {
	m := dateTextRE.FindStringSubmatch(text)
	if m == nil {
		return parseGreekDateSplit(text, defaultYear)
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedDate{}, false
	}
	month, ok := MonthFromGenitive(m[2])
	if !ok {
		return ParsedDate{}, false
	}

	year := defaultYear
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	weekday := m[4]
	if weekday != "" {
		if canonical, ok := CanonicalWeekday(weekday); ok {
			weekday = canonical
		}
	}

	return ParsedDate{
		Day:           day,
		Month:         month,
		MonthGenitive: m[2],
		Year:          year,
		Weekday:       weekday,
	}, true
}

// parseGreekDateSplit is the naive fallback: the first two whitespace
// tokens taken as day and genitive month.
func parseGreekDateSplit(text string, defaultYear int) (ParsedDate, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return ParsedDate{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return ParsedDate{}, false
	}
	month, ok := MonthFromGenitive(parts[1])
	if !ok {
		return ParsedDate{}, false
	}
	return ParsedDate{
		Day:           day,
		Month:         month,
		MonthGenitive: parts[1],
		Year:          defaultYear,
	}, true
}

// String reconstructs the date in the Greek human-readable form.
func (d ParsedDate) String() string {
	if d.Weekday != "" {
		return fmt.Sprintf("%s, %d %s %d", d.Weekday, d.Day, d.MonthGenitive, d.Year)
	}
	return fmt.Sprintf("%d %s %d", d.Day, d.MonthGenitive, d.Year)
}
