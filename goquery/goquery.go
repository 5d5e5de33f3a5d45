// Package goquery implements the HTML extraction pipelines for the
// upstream nameday site: the month table parser and the name lookup
// parser. Both are pure functions over fetched document text; network
// access lives elsewhere.
package goquery

import (
	"log/slog"
	"net/url"
	"strings"
	"unicode"
)

// dedupe removes duplicate strings, preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// isDigits reports whether s is non-empty and consists only of digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// collapseSpace trims s and collapses internal whitespace runs to a
// single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolveURL resolves href against base, returning an absolute URL or
// an empty string if either part is unparseable.
func resolveURL(base string, href string) string {
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	h, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(h).String()
}

// discard returns logger, or a no-op logger when nil.
func discard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
