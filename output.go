package refgen

import "context"

// OutputFile is the rendered content for one title group.
type OutputFile struct {
	Title   string
	Format  Format
	Records []string
}

// Content returns the file body.
func (f *OutputFile) Content() string {
	return FormatGroup(f.Title, f.Records)
}

// FileStatus describes what happened to an output file.
type FileStatus string

// FileStatus constants.
const (
	FileCreated   FileStatus = "created"
	FileUpdated   FileStatus = "updated"
	FileUnchanged FileStatus = "unchanged"
	FileStale     FileStatus = "stale"
)

// FileResult reports the outcome of writing or checking one output file.
type FileResult struct {
	Title   string     `json:"title"`
	Name    string     `json:"name"`
	Records int        `json:"records"`
	Hash    string     `json:"hash"`
	Status  FileStatus `json:"status"`
}

// GroupWriter persists rendered title groups.
type GroupWriter interface {
	// WriteFile writes f, silently replacing any existing file of the same
	// name. Writing identical content reports FileUnchanged.
	WriteFile(ctx context.Context, f *OutputFile) (*FileResult, error)

	// CheckFile compares f with what is stored without writing anything.
	// A missing or different file reports FileStale.
	CheckFile(ctx context.Context, f *OutputFile) (*FileResult, error)

	// RemoveFile deletes a previously written file by name.
	// Removing a file that does not exist is not an error.
	RemoveFile(ctx context.Context, name string) error
}

// Progress reports conversion progress.
type Progress struct {
	Title     string
	Completed int
	Total     int
}

// ProgressFunc is called after each block is converted.
type ProgressFunc func(Progress)
