// Package staffmap provides a fluent API for turning engraved music
// notation pages (SVG) into a queryable spatial index that maps page
// coordinates back to notation elements.
//
// Basic usage:
//
//	index, warnings, err := staffmap.Open("page.svg").Build()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", staffmap.FormatWarnings(warnings))
//	}
//	id := index.ElementAt(x, y)
//
// With options:
//
//	index, _, err := staffmap.Open("page.svg").
//	    WithConfig(cfg).
//	    Build()
//
// For advanced use cases, the lower-level svgdoc, glyphs, extract, and
// grid packages are also available.
package staffmap

import (
	"io"

	"github.com/tsawler/staffmap/grid"
	"github.com/tsawler/staffmap/model"
)

// Warning is a non-fatal problem recorded while building an index.
type Warning = model.Warning

// FormatWarnings formats a slice of warnings as a human-readable string,
// one per line.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}

// Open prepares a Builder for an engraved page on disk. The file is not
// read until a terminal operation like Build is called.
//
// Example:
//
//	index, warnings, err := staffmap.Open("page.svg").Build()
func Open(filename string) *Builder {
	return &Builder{
		filename: filename,
		cfg:      model.DefaultConfig(),
	}
}

// FromReader prepares a Builder for an engraved page from an
// already-opened reader. The caller retains ownership of the reader.
//
// Example:
//
//	index, warnings, err := staffmap.FromReader(f).Build()
func FromReader(r io.Reader) *Builder {
	return &Builder{
		source: r,
		cfg:    model.DefaultConfig(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustIndex is a helper that wraps a call to Build and panics if the
// error is non-nil. It discards warnings and returns just the index.
//
// Example:
//
//	index := staffmap.MustIndex(staffmap.Open("page.svg").Build())
func MustIndex(ix *grid.Index, _ []Warning, err error) *grid.Index {
	if err != nil {
		panic(err)
	}
	return ix
}
