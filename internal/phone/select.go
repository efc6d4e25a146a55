package phone

import "strings"

// mobilePrefix marks German mobile ranges on a normalized number
// (trunk 0 followed by the mobile range digit).
const mobilePrefix = "01"

// SelectBest picks one representative number from a candidate set:
// the first candidate that is not a mobile number, or the first
// candidate overall when every one is mobile. The input order is the
// enumeration order, so the result is deterministic. Returns false
// when there are no candidates.
func SelectBest(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	uniq := candidates[:0:0]
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		uniq = append(uniq, c)
	}
	if len(uniq) == 0 {
		return "", false
	}

	for _, c := range uniq {
		if !strings.HasPrefix(c, mobilePrefix) {
			return c, true
		}
	}
	return uniq[0], true
}
