package mock

import (
	"context"

	"github.com/fwojciec/refgen"
)

// Compile-time interface verification.
var (
	_ refgen.GroupWriter = (*GroupWriter)(nil)
	_ refgen.StubWriter  = (*StubWriter)(nil)
)

// GroupWriter is a mock implementation of refgen.GroupWriter.
type GroupWriter struct {
	WriteFileFn  func(ctx context.Context, f *refgen.OutputFile) (*refgen.FileResult, error)
	CheckFileFn  func(ctx context.Context, f *refgen.OutputFile) (*refgen.FileResult, error)
	RemoveFileFn func(ctx context.Context, name string) error
}

func (w *GroupWriter) WriteFile(ctx context.Context, f *refgen.OutputFile) (*refgen.FileResult, error) {
	return w.WriteFileFn(ctx, f)
}

func (w *GroupWriter) CheckFile(ctx context.Context, f *refgen.OutputFile) (*refgen.FileResult, error) {
	return w.CheckFileFn(ctx, f)
}

func (w *GroupWriter) RemoveFile(ctx context.Context, name string) error {
	return w.RemoveFileFn(ctx, name)
}

// StubWriter is a mock implementation of refgen.StubWriter.
type StubWriter struct {
	WriteStubsFn func(ctx context.Context, stubs []*refgen.Stub) error
}

func (w *StubWriter) WriteStubs(ctx context.Context, stubs []*refgen.Stub) error {
	return w.WriteStubsFn(ctx, stubs)
}
