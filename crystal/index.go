// Package crystal reads the documentation index emitted by `crystal docs`.
package crystal

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/refgen"
)

// index is the top level of index.json.
type index struct {
	RepositoryName string    `json:"repository_name"`
	Program        *jsonType `json:"program"`
}

type jsonType struct {
	FullName  string         `json:"full_name"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Locations []jsonLocation `json:"locations"`
	Types     []*jsonType    `json:"types"`
}

type jsonLocation struct {
	Filename   string `json:"filename"`
	LineNumber int    `json:"line_number"`
	URL        string `json:"url"`
}

// Load decodes an index.json document and returns its program namespace.
func Load(r io.Reader) (*refgen.Type, error) {
	var idx index
	if err := json.NewDecoder(r).Decode(&idx); err != nil {
		return nil, refgen.Errorf(refgen.EINVALID, "decode index: %s", err)
	}
	if idx.Program == nil {
		return nil, refgen.Errorf(refgen.EINVALID, "index has no program")
	}
	return convert(idx.Program, 0)
}

// maxDepth bounds type nesting so a malformed index cannot recurse without end.
const maxDepth = 256

func convert(t *jsonType, depth int) (*refgen.Type, error) {
	if depth > maxDepth {
		return nil, refgen.Errorf(refgen.EINVALID, "types nested deeper than %d", maxDepth)
	}
	if t.FullName == "" && depth > 0 {
		return nil, refgen.Errorf(refgen.EINVALID, "type %q has no full name", t.Name)
	}
	out := &refgen.Type{
		FullName: t.FullName,
		Name:     t.Name,
		Kind:     t.Kind,
	}
	for _, l := range t.Locations {
		out.Locations = append(out.Locations, refgen.Location{
			Filename: l.Filename,
			Line:     l.LineNumber,
			URL:      l.URL,
		})
	}
	for i, child := range t.Types {
		if child == nil {
			return nil, refgen.Errorf(refgen.EINVALID, "%s: type %d is null", t.FullName, i)
		}
		c, err := convert(child, depth+1)
		if err != nil {
			return nil, err
		}
		out.Types = append(out.Types, c)
	}
	return out, nil
}
