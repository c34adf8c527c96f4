package refgen

import (
	"context"
	"path"
	"strings"
)

// Type is a documented type in a documentation object model. The root of a
// model is the program namespace; its nested types are the documented types.
type Type struct {
	FullName  string     `json:"fullName"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Locations []Location `json:"locations"`
	Types     []*Type    `json:"types"`
}

// Location points at the source of a type.
type Location struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	URL      string `json:"url"`
}

// EditURL returns the URL of the type's first location, or "".
func (t *Type) EditURL() string {
	if len(t.Locations) == 0 {
		return ""
	}
	return t.Locations[0].URL
}

// WalkTypes calls fn for every type nested under root, depth-first in
// declaration order. The root itself is not visited. Walking stops at the
// first error fn returns.
func WalkTypes(root *Type, fn func(*Type) error) error {
	for _, t := range root.Types {
		if err := fn(t); err != nil {
			return err
		}
		if err := WalkTypes(t, fn); err != nil {
			return err
		}
	}
	return nil
}

// AbsID returns the type's path without generic type arguments,
// e.g. "Hash(K, V)::Entry" becomes "Hash::Entry".
func AbsID(fullName string) string {
	segments := strings.Split(fullName, "::")
	for i, s := range segments {
		if j := strings.IndexByte(s, '('); j >= 0 {
			segments[i] = s[:j]
		}
	}
	return strings.Join(segments, "::")
}

// StubPath maps a type's absolute ID to its stub page path,
// e.g. "Foo::Bar" becomes "Foo/Bar/index.md".
func StubPath(absID string) (string, error) {
	segments := strings.Split(absID, "::")
	for _, s := range segments {
		if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
			return "", Errorf(EINVALID, "invalid type path %q", absID)
		}
	}
	return path.Join(append(segments, "index.md")...), nil
}

// StubContent returns the body of a stub page, a single directive that the
// site generator expands into the type's documentation.
func StubContent(absID string) string {
	return "# ::: " + absID + "\n"
}

// Stub is a placeholder page for one documented type.
type Stub struct {
	// Path is slash-separated and relative to the docs directory.
	Path    string
	Content string

	// EditURL links the page to the type's source. May be empty.
	EditURL string
}

// BuildStubs returns one stub per type nested under root.
// Types that share an absolute ID produce a single stub.
func BuildStubs(root *Type) ([]*Stub, error) {
	var stubs []*Stub
	seen := make(map[string]bool)
	err := WalkTypes(root, func(t *Type) error {
		id := AbsID(t.FullName)
		p, err := StubPath(id)
		if err != nil {
			return err
		}
		if seen[p] {
			return nil
		}
		seen[p] = true
		stubs = append(stubs, &Stub{
			Path:    p,
			Content: StubContent(id),
			EditURL: t.EditURL(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stubs, nil
}

// StubWriter persists stub pages.
type StubWriter interface {
	WriteStubs(ctx context.Context, stubs []*Stub) error
}
