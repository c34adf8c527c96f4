package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/refgen"
	"github.com/fwojciec/refgen/mock"
	refslog "github.com/fwojciec/refgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs dialect, block count, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) ([]*refgen.Block, error) {
				return []*refgen.Block{{Title: "sum"}, {Title: "mean"}}, nil
			},
		}
		detector := &mock.DialectDetector{
			DetectFn: func(html string) refgen.Dialect {
				return refgen.DialectCrystal
			},
		}

		extractor := refslog.NewLoggingExtractor(inner, detector, logger)
		blocks, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		assert.Len(t, blocks, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "dialect=crystal")
		assert.Contains(t, output, "blocks=2")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unknown dialect", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) ([]*refgen.Block, error) {
				return nil, nil
			},
		}
		detector := &mock.DialectDetector{
			DetectFn: func(html string) refgen.Dialect {
				return refgen.DialectUnknown
			},
		}

		extractor := refslog.NewLoggingExtractor(inner, detector, logger)
		_, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "dialect=(unknown)")
	})

	t.Run("works without detector and logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) ([]*refgen.Block, error) {
				return nil, errors.New("bad markup")
			},
		}

		extractor := refslog.NewLoggingExtractor(inner, nil, logger)
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		output := buf.String()
		assert.NotContains(t, output, "dialect=")
		assert.Contains(t, output, `err="bad markup"`)
	})
}
