// Package eortologio provides a Greek nameday lookup service backed by
// the eortologio.net calendar. It answers which names celebrate on a
// given day or month, and on which dates a given name celebrates, by
// fetching and parsing the upstream site's HTML.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. http/,
// goquery/, lru/).
package eortologio
