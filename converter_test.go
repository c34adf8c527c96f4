package refgen_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/refgen"
	"github.com/fwojciec/refgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBlock(t *testing.T) {
	t.Parallel()

	t.Run("strips carriage returns", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "line one\r\nline two\r\n", nil
			},
		}

		rec, err := refgen.ConvertBlock(conv, &refgen.Block{Title: "sum", HTML: "<div></div>"})

		require.NoError(t, err)
		assert.Equal(t, "sum", rec.Title)
		assert.Equal(t, "line one\nline two\n", rec.Text)
	})

	t.Run("passes block HTML to converter", func(t *testing.T) {
		t.Parallel()

		var got string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "", nil
			},
		}

		_, err := refgen.ConvertBlock(conv, &refgen.Block{Title: "sum", HTML: `<div class="entry-detail">x</div>`})

		require.NoError(t, err)
		assert.Equal(t, `<div class="entry-detail">x</div>`, got)
	})

	t.Run("propagates conversion failure", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("pandoc crashed")
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", cause
			},
		}

		rec, err := refgen.ConvertBlock(conv, &refgen.Block{Index: 4, Title: "sum"})

		require.Error(t, err)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "sum")
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    refgen.Format
		wantErr bool
	}{
		{in: "rst", want: refgen.FormatRST},
		{in: "RST", want: refgen.FormatRST},
		{in: "md", want: refgen.FormatMarkdown},
		{in: "markdown", want: refgen.FormatMarkdown},
		{in: "html", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := refgen.ParseFormat(tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, refgen.EINVALID, refgen.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Ext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".rst", refgen.FormatRST.Ext())
	assert.Equal(t, ".md", refgen.FormatMarkdown.Ext())
}
