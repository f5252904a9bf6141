package pathbounds

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/staffmap/model"
)

// Extents holds integer path extents in page units.
type Extents struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Width returns the horizontal extent.
func (e Extents) Width() int {
	return e.MaxX - e.MinX
}

// Height returns the vertical extent.
func (e Extents) Height() int {
	return e.MaxY - e.MinY
}

// Rect returns the extents as a rectangle.
func (e Extents) Rect() model.Rect {
	return model.Rect{
		X:      e.MinX,
		Y:      e.MinY,
		Width:  e.Width(),
		Height: e.Height(),
	}
}

// Bounds interprets path data and returns its extents. The boolean
// reports whether any coordinate was seen; warnings record skipped
// commands. A bad token degrades locally and never fails the parse.
func Bounds(d string) (Extents, []model.Warning, bool) {
	eng := &engine{}
	eng.run(tokenize(d))

	if !eng.seen {
		return Extents{}, eng.warnings, false
	}
	return eng.extents(), eng.warnings, true
}

// PolylineBounds bounds a raw vertex list ("x,y x,y ...") by scanning
// min/max directly.
func PolylineBounds(points string) (Extents, bool) {
	toks := strings.FieldsFunc(points, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})

	eng := &engine{}
	for i := 0; i+1 < len(toks); i += 2 {
		x, okX := parseCoord(toks[i])
		y, okY := parseCoord(toks[i+1])
		if !okX || !okY {
			continue
		}
		eng.point(x, y)
	}

	if !eng.seen {
		return Extents{}, false
	}
	return eng.extents(), true
}

// tokenize inserts separators around command letters and commas, then
// splits on whitespace, so "M850 2790" and "M0,0C0,100..." both yield
// one token per command letter or coordinate.
func tokenize(d string) []string {
	var sb strings.Builder
	sb.Grow(len(d) + len(d)/2)

	for _, r := range d {
		switch {
		case r == ',':
			sb.WriteByte(' ')
		case isCommandLetter(r):
			sb.WriteByte(' ')
			sb.WriteRune(r)
			sb.WriteByte(' ')
		default:
			sb.WriteRune(r)
		}
	}
	return strings.Fields(sb.String())
}

func isCommandLetter(r rune) bool {
	switch r {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'Q', 'q', 'S', 's', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func parseCoord(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// engine walks tokens maintaining the current pen position and the
// running extents.
type engine struct {
	x, y           float64
	startX, startY float64

	minX, minY float64
	maxX, maxY float64
	seen       bool

	warnings []model.Warning
}

func (e *engine) extents() Extents {
	return Extents{
		MinX: int(math.Round(e.minX)),
		MinY: int(math.Round(e.minY)),
		MaxX: int(math.Round(e.maxX)),
		MaxY: int(math.Round(e.maxY)),
	}
}

// point moves the pen and folds the endpoint into the extents.
func (e *engine) point(x, y float64) {
	if !e.seen {
		e.minX, e.maxX = x, x
		e.minY, e.maxY = y, y
		e.seen = true
	} else {
		e.minX = math.Min(e.minX, x)
		e.maxX = math.Max(e.maxX, x)
		e.minY = math.Min(e.minY, y)
		e.maxY = math.Max(e.maxY, y)
	}
	e.x, e.y = x, y
}

// extendX widens the X extents without moving the pen.
func (e *engine) extendX(v float64) {
	if !e.seen {
		return
	}
	e.minX = math.Min(e.minX, v)
	e.maxX = math.Max(e.maxX, v)
}

// extendY widens the Y extents without moving the pen.
func (e *engine) extendY(v float64) {
	if !e.seen {
		return
	}
	e.minY = math.Min(e.minY, v)
	e.maxY = math.Max(e.maxY, v)
}

func (e *engine) run(toks []string) {
	cmd := byte(0)
	i := 0

	// take parses n coordinates starting at i, advancing i only when all
	// n parse. A short or malformed run disarms the current command.
	take := func(n int) ([]float64, bool) {
		if i+n > len(toks) {
			i = len(toks)
			return nil, false
		}
		vals := make([]float64, n)
		for k := 0; k < n; k++ {
			tok := toks[i+k]
			if len(tok) == 1 && isCommandLetter(rune(tok[0])) {
				// Short coordinate run; leave the letter for the main loop.
				i += k
				return nil, false
			}
			v, ok := parseCoord(tok)
			if !ok {
				i += k + 1
				return nil, false
			}
			vals[k] = v
		}
		i += n
		return vals, true
	}

	for i < len(toks) {
		tok := toks[i]
		if len(tok) == 1 && isCommandLetter(rune(tok[0])) {
			cmd = tok[0]
			i++

			switch cmd {
			case 'Z', 'z':
				e.x, e.y = e.startX, e.startY
				cmd = 0
			case 'T', 't', 'A', 'a':
				e.warnings = append(e.warnings, model.Warningf(
					model.WarnUnsupportedCommand, "",
					"path command %q not interpreted, skipping", string(cmd)))
				cmd = 0
			}
			continue
		}

		switch cmd {
		case 'M', 'L':
			if v, ok := take(2); ok {
				e.point(v[0], v[1])
				if cmd == 'M' {
					e.startX, e.startY = v[0], v[1]
					cmd = 'L'
				}
			}
		case 'm', 'l':
			if v, ok := take(2); ok {
				e.point(e.x+v[0], e.y+v[1])
				if cmd == 'm' {
					e.startX, e.startY = e.x, e.y
					cmd = 'l'
				}
			}
		case 'H':
			if v, ok := take(1); ok {
				e.point(v[0], e.y)
			}
		case 'h':
			if v, ok := take(1); ok {
				e.point(e.x+v[0], e.y)
			}
		case 'V':
			if v, ok := take(1); ok {
				e.point(e.x, v[0])
			}
		case 'v':
			if v, ok := take(1); ok {
				e.point(e.x, e.y+v[0])
			}
		case 'C':
			if v, ok := take(6); ok {
				e.curve(v[0], v[1], v[2], v[3], v[4], v[5])
			}
		case 'c':
			if v, ok := take(6); ok {
				e.curve(e.x+v[0], e.y+v[1], e.x+v[2], e.y+v[3], e.x+v[4], e.y+v[5])
			}
		case 'Q':
			if v, ok := take(4); ok {
				e.curve(v[0], v[1], v[0], v[1], v[2], v[3])
			}
		case 'q':
			if v, ok := take(4); ok {
				e.curve(e.x+v[0], e.y+v[1], e.x+v[0], e.y+v[1], e.x+v[2], e.y+v[3])
			}
		case 'S':
			if v, ok := take(4); ok {
				e.curve(v[0], v[1], v[0], v[1], v[2], v[3])
			}
		case 's':
			if v, ok := take(4); ok {
				e.curve(e.x+v[0], e.y+v[1], e.x+v[0], e.y+v[1], e.x+v[2], e.y+v[3])
			}
		default:
			// Numbers with no live command: leftovers of a skipped
			// command, drop them.
			i++
		}
	}
}

// curve bounds a curve with the dominant-axis approximation: the chord
// decides which axis is dominant; that axis is bounded by the endpoint,
// the other is extended to the midpoint between the start point and the
// most extreme control point.
func (e *engine) curve(c1x, c1y, c2x, c2y, ex, ey float64) {
	sx, sy := e.x, e.y

	if math.Abs(ex-sx) >= math.Abs(ey-sy) {
		// X-dominant: approximate Y.
		e.extendY((sy + math.Max(c1y, c2y)) / 2)
		e.extendY((sy + math.Min(c1y, c2y)) / 2)
	} else {
		// Y-dominant: approximate X.
		e.extendX((sx + math.Max(c1x, c2x)) / 2)
		e.extendX((sx + math.Min(c1x, c2x)) / 2)
	}

	e.point(ex, ey)
}
