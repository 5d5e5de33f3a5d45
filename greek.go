package eortologio

import (
	"strings"
	"unicode/utf8"
)

// monthsNominative maps month numbers to nominative Greek month names,
// as used in the upstream month page URLs.
var monthsNominative = map[int]string{
	1:  "Ιανουάριος",
	2:  "Φεβρουάριος",
	3:  "Μάρτιος",
	4:  "Απρίλιος",
	5:  "Μάιος",
	6:  "Ιούνιος",
	7:  "Ιούλιος",
	8:  "Αύγουστος",
	9:  "Σεπτέμβριος",
	10: "Οκτώβριος",
	11: "Νοέμβριος",
	12: "Δεκέμβριος",
}

// monthsGenitive maps genitive Greek month names, as they appear in
// date text on the name lookup pages, to month numbers.
var monthsGenitive = map[string]int{
	"Ιανουαρίου":  1,
	"Φεβρουαρίου": 2,
	"Μαρτίου":     3,
	"Απριλίου":    4,
	"Μαΐου":       5,
	"Ιουνίου":     6,
	"Ιουλίου":     7,
	"Αυγούστου":   8,
	"Σεπτεμβρίου": 9,
	"Οκτωβρίου":   10,
	"Νοεμβρίου":   11,
	"Δεκεμβρίου":  12,
}

// weekdays holds the canonical Greek weekday names, Monday first.
var weekdays = []string{
	"Δευτέρα",
	"Τρίτη",
	"Τετάρτη",
	"Πέμπτη",
	"Παρασκευή",
	"Σάββατο",
	"Κυριακή",
}

// MonthNominative returns the nominative Greek name for month (1-12).
func MonthNominative(month int) (string, bool) {
	name, ok := monthsNominative[month]
	return name, ok
}

// MonthFromGenitive maps a genitive Greek month name to its number.
func MonthFromGenitive(name string) (int, bool) {
	month, ok := monthsGenitive[name]
	return month, ok
}

// CanonicalWeekday resolves a possibly truncated weekday token to its
// canonical Greek name. A token matches a canonical name when it is a
// substring of it and its rune length is at least 70% of the canonical
// length; the first match in Monday-first order wins. Upstream pages
// concatenate the weekday to the year without a space, so tokens
// arrive clipped more often than not.
func CanonicalWeekday(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	n := utf8.RuneCountInString(token)
	for _, day := range weekdays {
		if !strings.Contains(day, token) {
			continue
		}
		// Rune math avoids byte-length skew on multibyte Greek text.
		if n*10 >= utf8.RuneCountInString(day)*7 {
			return day, true
		}
	}
	return "", false
}

// NormalizeName returns the canonical cache-key form of a queried name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
