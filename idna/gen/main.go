// Command gen reads an IDNA mapping table file (in the format described by
// SPEC_FULL.md §6) and regenerates idna/tables_data.go from it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

var (
	input  string
	output string

	tmpl = template.Must(template.New("tables").Parse(`// This file is autogenerated by the IDNA mapping table generator. Please do not edit manually.
package idna

//go:generate go run ./gen -input tables/idnamappingtable.txt -output tables_data.go

// explicitRanges is the transcription of {{.Source}} into Go data.
//
// A mappingEntry of status StatusMapped with an empty Mapping is a "simple
// case fold": the replacement is unicode.ToLower of the single code point,
// computed by the processor at apply time (idna.go).
var explicitRanges = buildExplicitRanges()

func buildExplicitRanges() (out []mappingEntry) {
	add := func(lo, hi rune, status Status, mapping string) {
		out = append(out, mappingEntry{Lo: lo, Hi: hi, Status: status, Mapping: mapping})
	}

{{range .Entries}}	add(0x{{.Lo}}, 0x{{.Hi}}, {{.Status}}, "{{.Mapping}}")
{{end}}
	return
}
`))
)

// entry is one parsed row of the mapping table file, rendered into the
// template above.
type entry struct {
	Lo, Hi  string
	Status  string
	Mapping string
}

var statusNames = map[string]string{
	"valid":                  "StatusValid",
	"ignored":                "StatusIgnored",
	"mapped":                 "StatusMapped",
	"deviation":              "StatusDeviation",
	"disallowed":             "StatusDisallowed",
	"disallowed_STD3_mapped": "StatusDisallowedSTD3Mapped",
	"disallowed_STD3_valid":  "StatusDisallowedSTD3Valid",
}

func init() {
	flag.StringVar(&input, "input", "", "Specify the input IDNA mapping table file path.")
	flag.StringVar(&output, "output", "", "Specify the output file path for the generated Go source file.")

	flag.Usage = func() {
		h := "USAGE:\n"
		h += "  gen [OPTIONS]\n"

		h += "\nOPTIONS:\n"
		h += " -input string     Specify the input IDNA mapping table file path.\n"
		h += " -output string    Specify the output file path for the generated Go source file.\n"

		fmt.Fprintln(os.Stderr, h)
	}

	flag.Parse()
}

func main() {
	if input == "" || output == "" {
		log.Fatalln("Both -input and -output are required.")
	}

	log.Printf("Generating %s from %s...\n", output, input)

	entries, err := parseTable(input)
	if err != nil {
		log.Fatalf("Failed to parse mapping table: %v\n", err)
	}

	f, err := os.Create(output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v\n", err)
	}

	defer f.Close()

	if err := tmpl.Execute(f, struct {
		Source  string
		Entries []entry
	}{
		Source:  input,
		Entries: entries,
	}); err != nil {
		log.Fatalf("Failed to execute template: %v\n", err)
	}

	log.Println("IDNA mapping table file generated successfully.")
}

// parseTable reads the table file format described by SPEC_FULL.md §6:
//
//	( HEX4-6 | HEX4-6 ".." HEX4-6 ) ";" STATUS [ ";" HEX4-6 ( " " HEX4-6 )* ]
func parseTable(path string) (entries []entry, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ";")

		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if len(fields) < 2 {
			err = fmt.Errorf("malformed line: %q", line)

			return
		}

		lo, hi := splitRange(fields[0])

		status, ok := statusNames[fields[1]]
		if !ok {
			err = fmt.Errorf("unknown status %q in line: %q", fields[1], line)

			return
		}

		mapping := ""

		if len(fields) >= 3 && fields[2] != "" {
			mapping = decodeMapping(fields[2])
		}

		entries = append(entries, entry{Lo: lo, Hi: hi, Status: status, Mapping: mapping})
	}

	if err = scanner.Err(); err != nil {
		return
	}

	return
}

// splitRange parses "HEX4-6" or "HEX4-6..HEX4-6" into a (lo, hi) pair of hex
// strings suitable for embedding after a "0x" literal prefix.
func splitRange(field string) (lo, hi string) {
	if idx := strings.Index(field, ".."); idx >= 0 {
		return field[:idx], field[idx+2:]
	}

	return field, field
}

// decodeMapping turns a space-separated list of hex code points into the
// literal UTF-8 string they encode.
func decodeMapping(field string) (out string) {
	var b strings.Builder

	for _, hex := range strings.Fields(field) {
		v, convErr := strconv.ParseInt(hex, 16, 32)
		if convErr != nil {
			continue
		}

		b.WriteRune(rune(v))
	}

	return b.String()
}
