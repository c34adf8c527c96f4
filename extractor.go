package refgen

// Block is one documented method or function extracted from a reference page.
// Its HTML has already been sanitized: the permalink anchor is gone and the
// signature links no longer carry targets.
type Block struct {
	// Index is the block's position in the source document, starting at 0.
	Index int

	// Title is the method or function name taken from the signature.
	Title string

	// HTML is the block's full outer HTML after sanitizing.
	HTML string
}

// Extractor locates and sanitizes documentation blocks in an HTML page.
type Extractor interface {
	// Extract parses html and returns every documentation block in document
	// order. A page without blocks yields an empty slice and no error.
	// Returns EINVALID if a block does not have the expected structure.
	Extract(html string) ([]*Block, error)
}
