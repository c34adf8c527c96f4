package refgen

import (
	"strings"
	"unicode/utf8"
)

// Groups maps titles to converted record texts. Titles keep the order in
// which they were first added and each title's records keep insertion order,
// so overloads render in source order.
type Groups struct {
	titles  []string
	records map[string][]string
	total   int
}

// NewGroups returns an empty Groups.
func NewGroups() *Groups {
	return &Groups{records: make(map[string][]string)}
}

// GroupRecords folds records into title groups in a single pass.
func GroupRecords(records []*Record) *Groups {
	g := NewGroups()
	for _, r := range records {
		g.Add(r.Title, r.Text)
	}
	return g
}

// Add appends text to the group for title, creating the group if needed.
func (g *Groups) Add(title, text string) {
	if _, ok := g.records[title]; !ok {
		g.titles = append(g.titles, title)
	}
	g.records[title] = append(g.records[title], text)
	g.total++
}

// Titles returns the group titles in first-encounter order.
func (g *Groups) Titles() []string {
	titles := make([]string, len(g.titles))
	copy(titles, g.titles)
	return titles
}

// Records returns the texts grouped under title.
func (g *Groups) Records(title string) []string {
	return g.records[title]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.titles)
}

// Total returns the number of records across all groups.
func (g *Groups) Total() int {
	return g.total
}

// FormatGroup renders a title group as a reStructuredText-style document:
// the title between two asterisk lines of the same width, a blank line, and
// the records separated by blank lines.
func FormatGroup(title string, records []string) string {
	pad := strings.Repeat("*", utf8.RuneCountInString(title))

	var b strings.Builder
	b.WriteString(pad)
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(pad)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(records, "\n\n"))
	return b.String()
}
