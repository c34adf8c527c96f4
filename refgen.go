// Package refgen generates reference documentation sources from generated
// HTML API pages. It locates per-method documentation blocks, converts them
// to a lightweight markup format, groups overloads by method title, and
// writes one file per title. It also emits placeholder pages for an mkdocs
// site from a documentation object model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, pandoc/, sqlite/).
package refgen
