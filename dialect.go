package refgen

// Dialect identifies the tool that generated a reference page. Each dialect
// marks up documentation blocks differently.
type Dialect string

// Supported dialects.
const (
	DialectUnknown Dialect = ""
	DialectCrystal Dialect = "crystal"
	DialectSphinx  Dialect = "sphinx"
)

// DialectDetector identifies the dialect of a reference page.
type DialectDetector interface {
	// Detect analyzes HTML and returns the identified dialect.
	// Returns DialectUnknown if the dialect cannot be determined.
	Detect(html string) Dialect
}
