package idna

import "sort"

// Status is the per-code-point disposition from the UTS #46 IDNA mapping
// table (spec.md §3, §6).
type Status int

// The seven statuses defined by the IDNA mapping table format.
const (
	StatusValid Status = iota
	StatusIgnored
	StatusMapped
	StatusDeviation
	StatusDisallowed
	StatusDisallowedSTD3Mapped
	StatusDisallowedSTD3Valid
)

// mappingEntry is one row of the (generated) mapping table: a contiguous,
// inclusive code-point range that all share the same status and mapping.
type mappingEntry struct {
	Lo, Hi  rune
	Status  Status
	Mapping string
}

// table is the process-wide, read-only mapping table (spec.md §5): built
// once at package init from explicitRanges, with the gaps between them
// filled in as StatusValid so that lookups never fall off the edge of the
// table. It is sorted by Lo and searched with a binary search, which is the
// same compactness trade-off golang.org/x/net/idna's own range-compressed
// trie makes over a fully dense array: the real UTS #46 table spans all of
// Unicode, so a flat per-code-point array would be enormous for little
// benefit over O(log n) range lookup.
var table = buildTable(explicitRanges, StatusValid)

// buildTable sorts entries by Lo and fills every gap in [0, 0x10FFFF] with a
// synthetic range carrying fallback. Overlapping entries are not detected.
func buildTable(entries []mappingEntry, fallback Status) (out []mappingEntry) {
	sorted := make([]mappingEntry, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	out = make([]mappingEntry, 0, len(sorted)*2+1)

	next := rune(0)

	for _, e := range sorted {
		if e.Lo > next {
			out = append(out, mappingEntry{Lo: next, Hi: e.Lo - 1, Status: fallback})
		}

		out = append(out, e)
		next = e.Hi + 1
	}

	if next <= 0x10FFFF {
		out = append(out, mappingEntry{Lo: next, Hi: 0x10FFFF, Status: fallback})
	}

	return
}

// Lookup returns the mapping table entry covering c. Since buildTable fills
// every gap, this always succeeds for any valid Unicode code point; the
// "unknown code point" failure mode from spec.md §4.3 step 1 therefore only
// ever applies to values outside the Unicode range, which callers cannot
// construct from a Go rune/string in the first place.
func Lookup(c rune) (entry mappingEntry, ok bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Hi >= c })

	if i >= len(table) || table[i].Lo > c {
		return mappingEntry{}, false
	}

	return table[i], true
}
