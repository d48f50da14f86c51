// =============================================================================
// Cable Label Generator - CSV Schedule Parser
// =============================================================================
//
// This module parses CSV cable schedules. Schedules come from a variety of
// site tools and spreadsheets, so the parser is deliberately tolerant:
//   - The text encoding is unknown; a fixed list of candidates is tried in
//     priority order and the first one that decodes wins.
//   - A header row may or may not be present; it is detected heuristically
//     from the first line of the file.
//   - Rows may have 2, 3, 4 or more columns; the shared row mapping in the
//     cable package sorts that out.
//   - Malformed rows (too short, empty id) are silently dropped rather than
//     failing the whole schedule.
//
// =============================================================================

package csvparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/wanshade/cable-label-generator/internal/cable"
)

// =============================================================================
// SCHEDULE DATA STRUCTURE
// =============================================================================

// Schedule represents a parsed cable schedule.
type Schedule struct {
	// Records contains the mapped cable records in file order.
	Records []cable.Record

	// Encoding is the name of the encoding candidate that decoded the file.
	Encoding string

	// SourceFile is the path to the source CSV file.
	SourceFile string

	// HeaderSkipped reports whether the first row was treated as a header.
	HeaderSkipped bool
}

// =============================================================================
// ENCODING CANDIDATES
// =============================================================================

// encodingCandidate is one entry in the fixed encoding priority list.
type encodingCandidate struct {
	name   string
	decode func(data []byte) (string, error)
}

// utf8BOM is the UTF-8 byte order mark some spreadsheet exports prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// encodingCandidates is tried in order; the first successful decode wins.
// latin-1 accepts any byte sequence, so cp1252 is a rarely reached fallback,
// but the list is kept complete to match the schedules seen in the field.
var encodingCandidates = []encodingCandidate{
	{name: "utf-8", decode: decodeUTF8},
	{name: "utf-8-sig", decode: decodeUTF8SIG},
	{name: "latin-1", decode: func(data []byte) (string, error) {
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		return string(out), err
	}},
	{name: "cp1252", decode: func(data []byte) (string, error) {
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		return string(out), err
	}},
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8 byte sequence")
	}
	return string(data), nil
}

func decodeUTF8SIG(data []byte) (string, error) {
	return decodeUTF8(bytes.TrimPrefix(data, utf8BOM))
}

// DecodeFile reads a schedule file and decodes it with the first encoding
// candidate that accepts the content.
//
// RETURNS:
//   - The decoded file content.
//   - The name of the encoding that was used.
//   - An error if the file cannot be read or no candidate decodes it.
func DecodeFile(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read schedule: %w", err)
	}

	for _, candidate := range encodingCandidates {
		text, err := candidate.decode(data)
		if err != nil {
			continue
		}
		return text, candidate.name, nil
	}

	return "", "", fmt.Errorf("no supported encoding decodes %s", path)
}

// =============================================================================
// HEADER DETECTION
// =============================================================================

// headerSampleSize limits how much of the file the header heuristic inspects.
const headerSampleSize = 1024

// hasHeader inspects the first line of the decoded content and reports
// whether it looks like a column header row.
func hasHeader(text string) bool {
	sample := text
	if len(sample) > headerSampleSize {
		sample = sample[:headerSampleSize]
	}

	firstLine, _, _ := strings.Cut(sample, "\n")
	return cable.LooksLikeHeader(firstLine)
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV schedule and returns the mapped cable records.
//
// PARAMETERS:
//   - path: The path to the CSV file.
//
// RETURNS:
//   - A pointer to the Schedule containing the parsed records.
//   - An error if the file cannot be read, decoded or tokenized.
//
// A schedule in which no row maps to a record is not an error; the Schedule
// simply carries zero records.
func Parse(path string) (*Schedule, error) {
	text, encodingName, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	configureReader(reader)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	headerSkipped := false
	if len(rows) > 0 && hasHeader(text) {
		rows = rows[1:]
		headerSkipped = true
	}

	records := make([]cable.Record, 0, len(rows))
	for _, row := range rows {
		if rec, ok := cable.FromRow(row); ok {
			records = append(records, rec)
		}
	}

	return &Schedule{
		Records:       records,
		Encoding:      encodingName,
		SourceFile:    path,
		HeaderSkipped: headerSkipped,
	}, nil
}

// configureReader applies the tolerant reader settings used for field
// schedules: ragged rows are allowed and quoting does not have to be strict.
func configureReader(reader *csv.Reader) {
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}
