// Package bookmarks serializes a collections library into the
// NETSCAPE-Bookmark-file-1 format that Chrome's importer reads.
package bookmarks

import (
	"strings"

	"collex/internal/models"
)

// The importer keys on this exact preamble; changing a byte breaks import.
var preamble = []string{
	"<!DOCTYPE NETSCAPE-Bookmark-file-1>",
	"<!-- This is an automatically generated file.",
	"     It will be read and overwritten.",
	"     DO NOT EDIT! -->",
	`<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">`,
	"<TITLE>Bookmarks</TITLE>",
	"<H1>Bookmarks</H1>",
}

// Serialize renders the library as a single bookmark document. Each
// collection becomes a folder; items keep their encountered order. Items
// without a URL never reach this package, but empty collections still emit
// an empty folder so the structure survives the round trip.
func Serialize(lib *models.Library) string {
	parts := make([]string, 0, len(preamble)+2+4*len(lib.Collections))
	parts = append(parts, preamble...)
	parts = append(parts, "<DL><p>")

	for _, collection := range lib.Collections {
		parts = append(parts,
			"    <DT><H3>"+Escape(collection.Name)+"</H3>",
			"    <DL><p>")

		for _, item := range collection.Items {
			if item.URL == "" {
				continue
			}

			parts = append(parts,
				`        <DT><A HREF="`+item.URL+`">`+Escape(item.Title)+"</A>")
		}

		parts = append(parts, "    </DL><p>")
	}

	parts = append(parts, "</DL><p>")

	return strings.Join(parts, "\n")
}

// Escape replaces the three markup metacharacters in titles and folder
// names. URLs are emitted verbatim.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")

	return s
}
