package phone

import (
	"regexp"
	"strings"
)

// labelRules anchor the labeled-context pass: each captures the run of
// phone-shaped characters immediately following a recognizable
// phone/tel marker. The last rule handles two-part labels seen on
// German property-management sites ("Mietverwaltung: Tel. ...").
var labelRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:fon|tel|telefon|phone|tel\.|telefon\.|phone\.)\s*[:.]?\s*([+\d\s\-()]+)`),
	regexp.MustCompile(`(?:Telefon|Telefonnummer|Tel\.|Fon\.)\s*[:.]?\s*([+\d\s\-()]+)`),
	regexp.MustCompile(`(?:Mietverwaltung|WEG-Verwaltung)\s*:\s*Tel\.\s*([+\d\s\-()]+)`),
}

// foreignRe matches anything outside the phone-character alphabet.
var foreignRe = regexp.MustCompile(`[^\d\s\-()+]`)

// faxWindow bounds how far back Extract looks for a "fax" marker
// before a match. The window never crosses a line break.
const faxWindow = 24

// Extract returns the deduplicated set of normalized, validated phone
// numbers found in text. Two independent passes are unioned: a
// labeled-context pass and a structural pass over the full pattern
// library. Every hit is re-validated through Clean before it is
// reported, and hits preceded by a "fax" marker are dropped even when
// otherwise well formed. Pure; order of the result is deterministic
// (labeled hits first, then structural, first occurrence wins).
func Extract(text string) []string {
	type hit struct {
		text  string
		start int
	}
	var hits []hit

	for _, re := range labelRules {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			run := foreignRe.ReplaceAllString(text[loc[2]:loc[3]], "")
			run = strings.TrimSpace(run)
			if run == "" {
				continue
			}
			hits = append(hits, hit{text: run, start: loc[0]})
		}
	}
	for _, m := range FindAll(text) {
		hits = append(hits, hit{text: m.Text, start: m.Start})
	}

	var numbers []string
	seen := make(map[string]bool)
	for _, h := range hits {
		if nearFax(text, h.start) {
			continue
		}
		num, ok := Clean(h.text)
		if !ok || seen[num] {
			continue
		}
		seen[num] = true
		numbers = append(numbers, num)
	}
	return numbers
}

// nearFax reports whether the text just before offset start contains a
// case-insensitive "fax" token on the same line.
func nearFax(text string, start int) bool {
	from := start - faxWindow
	if from < 0 {
		from = 0
	}
	window := text[from:start]
	if i := strings.LastIndexByte(window, '\n'); i >= 0 {
		window = window[i+1:]
	}
	return strings.Contains(strings.ToLower(window), "fax")
}
