package refgen

import (
	"fmt"
	"strings"
)

// Format identifies a target markup format.
type Format string

// Supported markup formats.
const (
	FormatRST      Format = "rst"
	FormatMarkdown Format = "md"
)

// Ext returns the file extension for the format, including the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatRST:
		return FormatRST, nil
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	}
	return "", Errorf(EINVALID, "unsupported format %q: use rst or md", s)
}

// Converter converts HTML to a markup format.
type Converter interface {
	// Convert transforms an HTML fragment into the converter's format.
	Convert(html string) (string, error)

	// Format returns the markup format Convert produces.
	Format() Format
}

// Record is the converted text of a single Block.
type Record struct {
	Title string
	Text  string
}

// ConvertBlock converts a block with c and strips carriage returns from the
// result so output is identical across platforms.
func ConvertBlock(c Converter, b *Block) (*Record, error) {
	text, err := c.Convert(b.HTML)
	if err != nil {
		return nil, fmt.Errorf("convert block %d (%s): %w", b.Index, b.Title, err)
	}
	return &Record{
		Title: b.Title,
		Text:  strings.ReplaceAll(text, "\r", ""),
	}, nil
}
