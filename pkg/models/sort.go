package models

// SortMode selects the ordering of the event list
type SortMode string

const (
	SortClosest  SortMode = "Closest First"
	SortAlpha    SortMode = "Alphabetical (A-Z)"
	SortAlphaRev SortMode = "Alphabetical (Z-A)"
)

// DefaultSort is the ordering used on first launch
const DefaultSort = SortClosest

// SortModes lists the modes in the order they are offered in the UI
func SortModes() []SortMode {
	return []SortMode{SortClosest, SortAlpha, SortAlphaRev}
}

// ParseSortMode maps a stored or selected string back to a mode, falling back to DefaultSort
func ParseSortMode(s string) SortMode {
	for _, m := range SortModes() {
		if string(m) == s {
			return m
		}
	}
	return DefaultSort
}
