package goquery_test

import (
	"testing"

	"github.com/fwojciec/refgen"
	"github.com/fwojciec/refgen/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements refgen.DialectDetector at compile time.
var _ refgen.DialectDetector = (*goquery.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want refgen.Dialect
	}{
		{
			name: "detects Crystal from meta generator",
			html: `<html><head><meta name="generator" content="Crystal Docs 1.14.0"></head><body></body></html>`,
			want: refgen.DialectCrystal,
		},
		{
			name: "detects Crystal from method permalinks",
			html: `<html><body>
<div class="entry-detail" id="sum-instance-method">
	<div class="signature">def <strong>sum</strong><a class="method-permalink" href="#sum-instance-method">#</a></div>
</div>
</body></html>`,
			want: refgen.DialectCrystal,
		},
		{
			name: "detects Crystal from types sidebar",
			html: `<html><body><div class="sidebar"><div class="types-list"><ul><li>Num</li></ul></div></div></body></html>`,
			want: refgen.DialectCrystal,
		},
		{
			name: "detects Sphinx from meta generator",
			html: `<html><head><meta name="generator" content="Docutils 0.19: https://docutils.sourceforge.io/"><meta name="generator" content="Sphinx 7.2.6"></head></html>`,
			want: refgen.DialectSphinx,
		},
		{
			name: "detects Sphinx from autodoc markup",
			html: `<html><body>
<dl class="py method">
	<dt class="sig sig-object py" id="Num.sum"><span class="sig-name descname"><span class="pre">sum</span></span></dt>
	<dd><p>Sum.</p></dd>
</dl>
</body></html>`,
			want: refgen.DialectSphinx,
		},
		{
			name: "returns unknown for plain page",
			html: `<html><body><p>Hello</p></body></html>`,
			want: refgen.DialectUnknown,
		},
		{
			name: "returns unknown for unrecognized generator",
			html: `<html><head><meta name="generator" content="Hugo 0.120"></head><body></body></html>`,
			want: refgen.DialectUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := goquery.NewDetector()

			assert.Equal(t, tt.want, d.Detect(tt.html))
		})
	}
}
