package eortologio

import "context"

// NamedayEntry holds one calendar day's worth of nameday data for a
// given month. All list fields preserve first-seen document order and
// contain no duplicates.
type NamedayEntry struct {
	// Day is the day of the month, 1-31.
	Day int `json:"day"`

	// Month is the month number, 1-12. Set by the caller, not derived
	// from the page.
	Month int `json:"month"`

	// CelebratingNames are the names that celebrate on this day.
	CelebratingNames []string `json:"celebrating_names"`

	// Saints describes the associated saints and feasts.
	Saints []string `json:"saints"`

	// OtherInfo holds auxiliary notices such as world days.
	OtherInfo []string `json:"other_info"`

	// NamesWithOtherDates lists names flagged on the page as also
	// celebrating elsewhere in the year.
	NamesWithOtherDates []string `json:"names_with_other_dates"`
}

// MonthService returns nameday entries for a calendar month.
type MonthService interface {
	// MonthEntries returns one entry per listed day of the month,
	// in row order. Returns EINVALID if month is outside 1-12,
	// before any network access.
	MonthEntries(ctx context.Context, month int) ([]NamedayEntry, error)
}
