package svgdoc

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var translatePattern = regexp.MustCompile(`translate\(\s*(-?\d+)(?:[,\s]+(-?\d+))?\s*\)`)

// Attr returns the value of the named attribute, or "". Attribute names
// are matched case-insensitively; the html parser lowercases them.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// Class returns the node's class attribute.
func Class(n *html.Node) string {
	return Attr(n, "class")
}

// HasClass reports whether the node carries the given class token.
func HasClass(n *html.Node, class string) bool {
	for _, tok := range strings.Fields(Class(n)) {
		if tok == class {
			return true
		}
	}
	return false
}

// StripUnit removes the fixed two-character unit suffix from a dimension
// value ("180px" -> "180"). Values without a suffix pass through.
func StripUnit(s string) string {
	if len(s) > 2 && isLetter(s[len(s)-1]) && isLetter(s[len(s)-2]) {
		return s[:len(s)-2]
	}
	return s
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IntAttr returns the named attribute parsed as an integer after unit
// stripping. The boolean reports whether the attribute was present and
// parsable.
func IntAttr(n *html.Node, key string) (int, bool) {
	raw := Attr(n, key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(StripUnit(strings.TrimSpace(raw)))
	if err != nil {
		return 0, false
	}
	return v, true
}

// HrefID returns the glyph id a placement reference points at, stripping
// the leading "#". Both xlink:href and plain href are accepted.
func HrefID(n *html.Node) string {
	ref := Attr(n, "xlink:href")
	if ref == "" {
		ref = Attr(n, "href")
	}
	return strings.TrimPrefix(ref, "#")
}

// ParseTranslate extracts the (dx, dy) offset from a transform value,
// defaulting to (0, 0) when no translation is present.
func ParseTranslate(transform string) (int, int) {
	m := translatePattern.FindStringSubmatch(transform)
	if m == nil {
		return 0, 0
	}
	dx, _ := strconv.Atoi(m[1])
	dy := 0
	if m[2] != "" {
		dy, _ = strconv.Atoi(m[2])
	}
	return dx, dy
}

// FindTag returns the first element with the given tag name, depth-first.
func FindTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAllTag returns every element with the given tag name, depth-first.
func FindAllTag(n *html.Node, tag string) []*html.Node {
	var result []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			result = append(result, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return result
}

// FindClass returns the first element carrying the class, depth-first.
func FindClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && HasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// FindAllClass returns every element carrying the class. Matches are not
// searched for nested occurrences of the same class; the walker handles
// nesting explicitly.
func FindAllClass(n *html.Node, class string) []*html.Node {
	var result []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && HasClass(n, class) {
			result = append(result, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return result
}

// ElementChildren returns the node's direct element children.
func ElementChildren(n *html.Node) []*html.Node {
	var result []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			result = append(result, c)
		}
	}
	return result
}
