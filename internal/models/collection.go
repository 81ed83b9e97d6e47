// Package models defines data structures for the collections exporter.
package models

// Item represents a single saved page inside a collection. Only the
// "website" item type carries a URL, and only those survive extraction.
type Item struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	// DateAdded is the source database's creation timestamp, carried as an
	// opaque string and never parsed.
	DateAdded string `json:"dateAdded,omitempty"`
}

// Collection represents a named folder of saved pages.
type Collection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Library holds every collection read from the source database.
// Collections appear in database read order and items in join-query order,
// which keeps repeated exports byte-identical.
type Library struct {
	Collections []Collection `json:"collections"`
}

// IsEmpty reports whether the library holds no collections at all.
func (l *Library) IsEmpty() bool {
	return len(l.Collections) == 0
}

// ItemCount returns the total number of items across all collections.
func (l *Library) ItemCount() int {
	count := 0

	for _, c := range l.Collections {
		count += len(c.Items)
	}

	return count
}
