package idna

//go:generate go run ./gen -input tables/idnamappingtable.txt -output tables_data.go

// explicitRanges is the transcription of tables/idnamappingtable.txt into Go
// data. idna/gen/main.go regenerates this slice from that file (or from the
// official IdnaMappingTable.txt, for a complete table); see SPEC_FULL.md §6.
//
// A mappingEntry of status StatusMapped with an empty Mapping is a "simple
// case fold": the replacement is unicode.ToLower of the single code point,
// computed by the processor at apply time (idna.go). That covers every
// alphabetic upper-to-lower range below without transcribing one entry per
// letter, the same way the real mapping table's "mapped" rows for alphabetic
// scripts are overwhelmingly simple lowercase mappings.
var explicitRanges = buildExplicitRanges()

func buildExplicitRanges() (out []mappingEntry) {
	add := func(lo, hi rune, status Status, mapping string) {
		out = append(out, mappingEntry{Lo: lo, Hi: hi, Status: status, Mapping: mapping})
	}

	add(0x0000, 0x002C, StatusDisallowedSTD3Valid, "")
	add(0x002D, 0x002D, StatusValid, "")
	add(0x002E, 0x002E, StatusValid, "")
	add(0x002F, 0x002F, StatusDisallowedSTD3Valid, "")
	add(0x0030, 0x0039, StatusValid, "")
	add(0x003A, 0x0040, StatusDisallowedSTD3Valid, "")

	for c := rune('A'); c <= 'Z'; c++ {
		add(c, c, StatusMapped, string(c+0x20))
	}

	add(0x005B, 0x0060, StatusDisallowedSTD3Valid, "")
	add(0x0061, 0x007A, StatusValid, "")
	add(0x007B, 0x007E, StatusDisallowedSTD3Valid, "")
	add(0x007F, 0x007F, StatusDisallowed, "")
	add(0x0080, 0x009F, StatusDisallowed, "")
	add(0x00A0, 0x00A0, StatusDisallowedSTD3Mapped, " ")
	add(0x00A1, 0x00B4, StatusDisallowedSTD3Valid, "")
	add(0x00B5, 0x00B5, StatusMapped, "μ")
	add(0x00B6, 0x00BF, StatusDisallowedSTD3Valid, "")
	add(0x00C0, 0x00D6, StatusMapped, "")
	add(0x00D7, 0x00D7, StatusDisallowed, "")
	add(0x00D8, 0x00DE, StatusMapped, "")
	add(0x00DF, 0x00DF, StatusDeviation, "ss")
	add(0x00E0, 0x00F6, StatusValid, "")
	add(0x00F7, 0x00F7, StatusDisallowed, "")
	add(0x00F8, 0x00FF, StatusValid, "")
	add(0x0100, 0x0148, StatusMapped, "")
	add(0x0149, 0x0149, StatusDisallowed, "")
	add(0x014A, 0x017E, StatusMapped, "")
	add(0x017F, 0x017F, StatusMapped, "s")
	add(0x0180, 0x024F, StatusValid, "")
	add(0x0250, 0x02AF, StatusValid, "")
	add(0x0370, 0x03C1, StatusValid, "")
	add(0x03C2, 0x03C2, StatusDeviation, "σ")
	add(0x03C3, 0x03FF, StatusValid, "")
	add(0x0400, 0x04FF, StatusValid, "")
	add(0x0531, 0x0556, StatusMapped, "")
	add(0x0561, 0x0586, StatusValid, "")
	add(0x05D0, 0x05EA, StatusValid, "")
	add(0x0600, 0x06FF, StatusValid, "")
	add(0x0900, 0x097F, StatusValid, "")
	add(0x0E00, 0x0E7F, StatusValid, "")
	add(0x1E00, 0x1EFF, StatusValid, "")
	add(0x200B, 0x200B, StatusIgnored, "")
	add(0x200C, 0x200C, StatusDeviation, "")
	add(0x200D, 0x200D, StatusDeviation, "")
	add(0x2010, 0x2015, StatusDisallowedSTD3Valid, "")
	add(0x3000, 0x3000, StatusDisallowedSTD3Mapped, " ")
	add(0x3002, 0x3002, StatusMapped, ".")
	add(0x3040, 0x309F, StatusValid, "")
	add(0x30A0, 0x30FF, StatusValid, "")
	add(0x3400, 0x4DBF, StatusValid, "")
	add(0x4E00, 0x9FFF, StatusValid, "")
	add(0xA000, 0xA48F, StatusValid, "")
	add(0xAC00, 0xD7A3, StatusValid, "")
	add(0xD800, 0xDFFF, StatusDisallowed, "")
	add(0xE000, 0xF8FF, StatusDisallowedSTD3Valid, "")
	add(0xFB00, 0xFB06, StatusDisallowedSTD3Valid, "")
	add(0xFDD0, 0xFDEF, StatusDisallowed, "")
	add(0xFE00, 0xFE0F, StatusIgnored, "")
	add(0xFEFF, 0xFEFF, StatusIgnored, "")
	add(0xFF01, 0xFF5E, StatusDisallowedSTD3Valid, "")
	add(0xFFF0, 0xFFFF, StatusDisallowed, "")
	add(0x10000, 0x1FFFF, StatusValid, "")
	add(0x20000, 0x2FFFF, StatusValid, "")
	add(0xE0100, 0xE01EF, StatusIgnored, "")
	add(0xF0000, 0xFFFFD, StatusDisallowed, "")
	add(0x100000, 0x10FFFD, StatusDisallowed, "")

	return
}
