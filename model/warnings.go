package model

import (
	"fmt"
	"strings"
)

// WarningCategory classifies a non-fatal problem encountered during a
// build. The build degrades locally and continues; structural failures
// are returned as errors instead.
type WarningCategory int

const (
	// WarnMissingStructure marks optional structure that was absent or
	// unrecognized: an unknown element class, an accidental without
	// content, a symbol without an outline.
	WarnMissingStructure WarningCategory = iota

	// WarnMissingAttribute marks a leaf element skipped because a
	// required attribute (id, x, y, width, height) was missing.
	WarnMissingAttribute

	// WarnUnknownGlyph marks a placement reference whose glyph id has no
	// symbol definition. The element gets a zero-sized box.
	WarnUnknownGlyph

	// WarnUnsupportedCommand marks a path command the bounds engine does
	// not interpret. The token is skipped and parsing continues.
	WarnUnsupportedCommand

	// WarnUnsupported marks element kinds whose measurement is an
	// intentional upstream gap (slur connectors, free-text directives).
	WarnUnsupported
)

func (c WarningCategory) String() string {
	switch c {
	case WarnMissingStructure:
		return "missing-structure"
	case WarnMissingAttribute:
		return "missing-attribute"
	case WarnUnknownGlyph:
		return "unknown-glyph"
	case WarnUnsupportedCommand:
		return "unsupported-command"
	case WarnUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Warning records one non-fatal problem encountered while building the
// index.
type Warning struct {
	// Category classifies the problem.
	Category WarningCategory

	// Element identifies the element or glyph involved, when known.
	Element string

	// Message describes what happened.
	Message string
}

func (w Warning) String() string {
	if w.Element != "" {
		return fmt.Sprintf("[%s] %s: %s", w.Category, w.Element, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Category, w.Message)
}

// Warningf creates a warning with a formatted message.
func Warningf(cat WarningCategory, element, format string, args ...interface{}) Warning {
	return Warning{
		Category: cat,
		Element:  element,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(w.String())
	}
	return sb.String()
}
