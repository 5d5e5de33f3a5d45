package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkaravias/eortologio"
)

// notFoundPhrase is the upstream wording for a missing name. Fragile
// by nature; there is no structured signal on the page.
const notFoundPhrase = "δεν βρέθηκε"

// seeMoreMarker indicates the related-names cell holds a link to a
// longer list instead of the names themselves.
const seeMoreMarker = ">>"

// Etymology marker phrases scanned for below the results table.
const (
	etymologyMarker  = "Πιθανή Ετυμολογία"
	etymologyMarker2 = "σημαίνει:"
	etymologyHeading = "Πιθανή Ετυμολογία / Τι σημαίνει"
)

// ParseNameDates extracts every celebration date for name from its
// lookup page. baseURL resolves relative saint links; defaultYear
// fills dates whose text omits the year. Returns EPARSE when the main
// content region is missing and ENOTFOUND when the page confirms the
// name does not exist. A page whose heading confirms the name but has
// no results table yields an empty sequence. Rows whose date text
// cannot be parsed are skipped with a warning.
func ParseNameDates(htmlText, name, baseURL string, defaultYear int, logger *slog.Logger) ([]eortologio.CelebrationDate, error) {
	logger = discard(logger)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, eortologio.Errorf(eortologio.EPARSE, "failed to parse name page: %v", err)
	}

	content := doc.Find("div.post-content").First()
	if content.Length() == 0 {
		return nil, eortologio.Errorf(eortologio.EPARSE, "content region not found on name page")
	}

	heading := content.Find("h1").First()
	headingConfirms := heading.Length() > 0 &&
		strings.Contains(strings.ToLower(heading.Text()), strings.ToLower(name))
	if !headingConfirms {
		if strings.Contains(content.Text(), notFoundPhrase) {
			return nil, eortologio.Errorf(eortologio.ENOTFOUND, "name %q not found", name)
		}
		// Heading text varies; try the table anyway.
		logger.Warn("heading does not mention queried name", "name", name)
	}

	table := content.Find("table.calendar").First()
	if table.Length() == 0 {
		if headingConfirms {
			// The name exists but has no tabulated dates.
			return []eortologio.CelebrationDate{}, nil
		}
		return nil, eortologio.Errorf(eortologio.ENOTFOUND, "name %q not found", name)
	}

	dates := make([]eortologio.CelebrationDate, 0)

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		dateText := strings.TrimSpace(cells.Eq(0).Text())
		parsed, ok := eortologio.ParseGreekDate(dateText, defaultYear)
		if !ok {
			logger.Warn("skipping row with unparseable date", "name", name, "date", dateText)
			return
		}

		saintCell := cells.Eq(1)
		saintURL := ""
		if href, exists := saintCell.Find("a").First().Attr("href"); exists {
			saintURL = resolveURL(baseURL, href)
		}

		dates = append(dates, eortologio.CelebrationDate{
			Day:              parsed.Day,
			Month:            parsed.Month,
			DateStr:          parsed.String(),
			SaintDescription: collapseSpace(saintCell.Text()),
			SaintURL:         saintURL,
			RelatedNames:     relatedNames(cells),
		})
	})

	if len(dates) > 0 {
		if note := etymology(table); note != "" {
			dates[0].Etymology = note
		}
	}

	return dates, nil
}

// relatedNames collects distinct link texts from the third cell, if
// present. A cell carrying the "see more" marker holds navigation, not
// names, and is skipped entirely.
func relatedNames(cells *goquery.Selection) []string {
	names := make([]string, 0)
	if cells.Length() <= 2 {
		return names
	}

	cell := cells.Eq(2)
	if strings.Contains(cell.Text(), seeMoreMarker) {
		return names
	}

	cell.Find("a").Each(func(_ int, link *goquery.Selection) {
		if name := strings.TrimSpace(link.Text()); name != "" {
			names = append(names, name)
		}
	})
	return dedupe(names)
}

// etymology scans the siblings following the results table for the
// first one mentioning an etymology marker and returns the text after
// the first colon, or the text with the marker heading stripped when
// no colon is present.
func etymology(table *goquery.Selection) string {
	note := ""
	table.NextAll().Filter("p, div, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := collapseSpace(sel.Text())
		if text == "" {
			return true
		}
		if !strings.Contains(text, etymologyMarker) && !strings.Contains(text, etymologyMarker2) {
			return true
		}
		if _, after, found := strings.Cut(text, ":"); found {
			note = strings.TrimSpace(after)
		} else {
			note = strings.TrimSpace(strings.ReplaceAll(text, etymologyHeading, ""))
		}
		return false
	})
	return note
}
