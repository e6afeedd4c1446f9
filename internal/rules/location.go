package rules

import "strings"

// Location points a finding at a line of the text it was derived from.
//
// Lines are 1-based. Line 0 means the finding is about the whole text,
// which is the case for the balance counters and histogram rules.
type Location struct {
	// Line is the 1-based line number, or 0 for a text-level finding.
	Line int `json:"line,omitempty"`
}

// IsTextLevel returns true if this location covers the whole text.
func (l Location) IsTextLevel() bool {
	return l.Line <= 0
}

// LineAt returns the location of the byte offset in text. A negative
// offset yields a text-level location.
func LineAt(text string, offset int) Location {
	if offset < 0 {
		return Location{}
	}
	offset = min(offset, len(text))
	return Location{Line: strings.Count(text[:offset], "\n") + 1}
}

// LocateExcerpt returns the location of the first occurrence of excerpt in
// text. An empty or absent excerpt yields a text-level location.
func LocateExcerpt(text, excerpt string) Location {
	if excerpt == "" {
		return Location{}
	}
	idx := strings.Index(text, excerpt)
	if idx < 0 {
		return Location{}
	}
	return LineAt(text, idx)
}

// Locate fills in the location of f from its first example when the rule
// did not set one. Rules that know where they matched set the location
// themselves; this only covers findings that did not.
func Locate(f Finding, text string) Finding {
	if !f.Location.IsTextLevel() || len(f.Examples) == 0 {
		return f
	}
	f.Location = LocateExcerpt(text, f.Examples[0])
	return f
}
