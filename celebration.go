package eortologio

import "context"

// CelebrationDate is one occurrence of a searched name's celebration.
type CelebrationDate struct {
	// Day and Month are derived from the parsed Greek date text.
	Day   int `json:"day"`
	Month int `json:"month"`

	// DateStr is the human-readable Greek reconstruction, either
	// "<weekday>, <day> <month-genitive> <year>" or
	// "<day> <month-genitive> <year>" when no weekday was resolved.
	DateStr string `json:"date_str"`

	// SaintDescription is free text describing the associated saint
	// or feast.
	SaintDescription string `json:"saint_description"`

	// SaintURL is an absolute URL to a saint detail page, empty if
	// the row carries no link.
	SaintURL string `json:"saint_url,omitempty"`

	// RelatedNames lists alternate name forms found in the same row.
	RelatedNames []string `json:"related_names"`

	// Etymology is an optional note about the name's origin. It is
	// attached only to the first record of a result sequence.
	Etymology string `json:"etymology,omitempty"`
}

// NameService returns the dates on which a name celebrates.
type NameService interface {
	// CelebrationDates returns every celebration date for name, in
	// page order. Returns ENOTFOUND if the upstream site confirms
	// the name does not exist.
	CelebrationDates(ctx context.Context, name string) ([]CelebrationDate, error)
}
