package goquery

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkaravias/eortologio"
	"golang.org/x/net/html"
)

// parenRE matches parenthesized annotations in saint text.
var parenRE = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// ParseMonth extracts one NamedayEntry per calendar day from a month
// page. month is attached to every entry as-is; it is not derived
// from the page. Returns EPARSE when the day-by-day data table is
// missing, which signals an upstream format change rather than a
// transient condition. A table without body rows yields an empty
// sequence. Malformed rows are skipped with a warning, never aborting
// the month.
func ParseMonth(htmlText string, month int, logger *slog.Logger) ([]eortologio.NamedayEntry, error) {
	logger = discard(logger)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, eortologio.Errorf(eortologio.EPARSE, "failed to parse month page: %v", err)
	}

	table := doc.Find("table#table0").First()
	if table.Length() == 0 {
		return nil, eortologio.Errorf(eortologio.EPARSE, "data table not found on month page")
	}

	tbody := table.Find("tbody").First()
	if tbody.Length() == 0 {
		logger.Warn("month table has no body rows", "month", month)
		return []eortologio.NamedayEntry{}, nil
	}

	rows := tbody.ChildrenFiltered("tr.row")
	entries := make([]eortologio.NamedayEntry, 0, rows.Length())

	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() != 4 {
			return
		}

		day, ok := dayNumber(cells.Eq(0))
		if !ok {
			logger.Warn("skipping row without usable day number", "month", month)
			return
		}

		namesCell := cells.Eq(2)
		saintsCell := cells.Eq(3)

		names, flagged := celebratingNames(namesCell)

		entries = append(entries, eortologio.NamedayEntry{
			Day:                 day,
			Month:               month,
			CelebratingNames:    names,
			Saints:              saints(saintsCell),
			OtherInfo:           notices(namesCell, saintsCell),
			NamesWithOtherDates: flagged,
		})
	})

	if len(entries) == 0 && rows.Length() > 0 {
		logger.Warn("no entries extracted although rows were present", "month", month, "rows", rows.Length())
	}

	return entries, nil
}

// dayNumber reads the day from the first cell: the cell's name
// attribute when it is numeric, otherwise the text of an embedded
// link.
func dayNumber(cell *goquery.Selection) (int, bool) {
	dayStr, _ := cell.Attr("name")
	if !isDigits(dayStr) {
		dayStr = strings.TrimSpace(cell.Find("a").First().Text())
		if !isDigits(dayStr) {
			return 0, false
		}
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return 0, false
	}
	return day, true
}

// celebratingNames collects link texts from the name containers in
// document order, deduplicated. A name whose link is immediately
// followed by a text node containing an asterisk also celebrates
// elsewhere in the year and lands in the second return value.
func celebratingNames(cell *goquery.Selection) (names []string, flagged []string) {
	names = make([]string, 0)
	flagged = make([]string, 0)

	cell.Find("div.name a").Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}
		names = append(names, name)

		sibling := link.Get(0).NextSibling
		if sibling != nil && sibling.Type == html.TextNode && strings.Contains(sibling.Data, "*") {
			flagged = append(flagged, name)
		}
	})

	return dedupe(names), dedupe(flagged)
}

// saints prefers bold and link text in document order as the saint
// list, falling back to the cell's full text with parenthesized
// annotations stripped.
func saints(cell *goquery.Selection) []string {
	list := make([]string, 0)

	items := cell.Find("b, a")
	if items.Length() == 0 {
		text := collapseSpace(parenRE.ReplaceAllString(cell.Text(), " "))
		if text != "" {
			list = append(list, text)
		}
		return list
	}

	items.Each(func(_ int, item *goquery.Selection) {
		if text := strings.TrimSpace(item.Text()); text != "" {
			list = append(list, text)
		}
	})
	return dedupe(list)
}

// notices extracts auxiliary notices (world days and similar) from the
// first "whats" container found in either cell, splitting on embedded
// line breaks.
func notices(cells ...*goquery.Selection) []string {
	info := make([]string, 0)

	for _, cell := range cells {
		span := cell.Find("span.whats").First()
		if span.Length() == 0 {
			continue
		}
		span.Contents().Each(func(_ int, content *goquery.Selection) {
			node := content.Get(0)
			if node.Type == html.ElementNode && node.Data == "br" {
				return
			}
			if text := strings.TrimSpace(content.Text()); text != "" {
				info = append(info, text)
			}
		})
		break
	}

	return dedupe(info)
}
