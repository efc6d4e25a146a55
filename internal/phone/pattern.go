// Package phone recognizes German telephone numbers in free text.
//
// The package is deliberately narrow: it targets the German numbering
// plan only (landline, mobile, toll-free) and validates shape, not
// reachability. All functions are pure and never fail; absence of a
// result is an empty slice or ("", false).
package phone

import "regexp"

// Shape categorizes a pattern rule by the number form it recognizes.
type Shape int

const (
	ShapeInternational Shape = iota // +49 with area code and subscriber groups
	ShapeInternationalBracketed     // +49 (xxx) ...
	ShapeNational                   // leading-0 trunk form
	ShapeBracketed                  // (xxx) ... without country prefix
	ShapeSlash                      // area/subscriber
	ShapeTollFree                   // 0800 ...
	ShapeMobile                     // 015x/016x/017x ranges
)

// String returns a short name for the shape, used in logs and tests.
func (s Shape) String() string {
	switch s {
	case ShapeInternational:
		return "international"
	case ShapeInternationalBracketed:
		return "international-bracketed"
	case ShapeNational:
		return "national"
	case ShapeBracketed:
		return "bracketed"
	case ShapeSlash:
		return "slash"
	case ShapeTollFree:
		return "toll-free"
	case ShapeMobile:
		return "mobile"
	}
	return "unknown"
}

// Rule is a single structural matcher over text. Each rule carries two
// compiled forms of the same expression: an unanchored one for scanning
// whole pages and an anchored one for re-validating candidates.
type Rule struct {
	Shape  Shape
	scan   *regexp.Regexp
	prefix *regexp.Regexp
}

func newRule(shape Shape, expr string) Rule {
	return Rule{
		Shape:  shape,
		scan:   regexp.MustCompile(expr),
		prefix: regexp.MustCompile(`^(?:` + expr + `)`),
	}
}

// rules is the full pattern library. Rules overlap on purpose: this
// stage validates, it does not classify, so a string matching several
// rules is fine. Digit-group widths follow German area-code and
// subscriber-number lengths.
var rules = []Rule{
	// +49-89-89 555 242 style, mixed hyphens and spaces
	newRule(ShapeInternational, `\+49[\s\-]*\d{2,4}[\s\-]*\d{2,4}[\s\-]*\d{1,4}[\s\-]*\d{1,4}`),
	// +49(0)721-91225-35 before trunk collapse, +49 (721) ... after
	newRule(ShapeInternationalBracketed, `\+49\s*\(\d{2,4}\)\s*\d{2,4}[\s\-]*\d{1,4}[\s\-]*\d{1,4}`),
	// +49 2823 97 654 - 0
	newRule(ShapeInternational, `\+49\s*\d{2,4}\s*\d{2,4}\s*\d{1,4}[\s\-]*\d{1,4}`),
	// 02131-718-92-0
	newRule(ShapeNational, `0\d{2,4}[\s\-]*\d{2,4}[\s\-]*\d{1,4}[\s\-]*\d{1,4}`),
	// 02131 718 92-0
	newRule(ShapeNational, `0\d{2,4}\s*\d{2,4}\s*\d{1,4}[\s\-]*\d{1,4}`),
	// 07123-94723-0
	newRule(ShapeNational, `0\d{2,4}[\s\-]*\d{2,4}[\s\-]*\d{1,4}`),
	newRule(ShapeInternationalBracketed, `\+49\s*\(\d{2,4}\)\s*\d{2,4}\s*\d{1,4}`),
	newRule(ShapeBracketed, `\(\d{2,4}\)\s*\d{2,4}\s*\d{1,4}`),
	// 0721/12345
	newRule(ShapeSlash, `\d{2,4}\s*/\s*\d{2,4}\s*\d{1,4}`),
	newRule(ShapeTollFree, `0800[\s\-]*\d{3,4}[\s\-]*\d{3,4}`),
	newRule(ShapeInternational, `\+49\s*\d{2,4}\s*\d{3,4}\s*\d{3,4}`),
	newRule(ShapeNational, `0\d{2,4}\s*\d{3,4}\s*\d{3,4}`),
	// +49-89-123-4567
	newRule(ShapeInternational, `\+49[\s\-]*\d{2,4}[\s\-]*\d{3,4}[\s\-]*\d{3,4}`),
	// 089-123-4567
	newRule(ShapeNational, `0\d{2,4}[\s\-]*\d{3,4}[\s\-]*\d{3,4}`),
	// 0151, 0160, 0170, 0171, ...
	newRule(ShapeMobile, `01[567]\d[\s\-]*\d{3,4}[\s\-]*\d{3,4}`),
}

// Rules returns the pattern library. The returned slice must not be
// modified.
func Rules() []Rule {
	return rules
}

// Match is a raw structural hit inside a larger text, with the byte
// offset where it starts. The offset lets the extractor inspect the
// surrounding context (fax filtering).
type Match struct {
	Text  string
	Start int
	Shape Shape
}

// FindAll runs every rule over text and collects every hit. Hits from
// different rules may overlap or duplicate each other; deduplication
// happens downstream.
func FindAll(text string) []Match {
	var matches []Match
	for _, r := range rules {
		for _, loc := range r.scan.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{
				Text:  text[loc[0]:loc[1]],
				Start: loc[0],
				Shape: r.Shape,
			})
		}
	}
	return matches
}

// Valid reports whether s begins with a recognized telephone-number
// shape. A prefix match is sufficient: trailing text after the number
// does not invalidate it.
func Valid(s string) bool {
	for _, r := range rules {
		if r.prefix.MatchString(s) {
			return true
		}
	}
	return false
}
