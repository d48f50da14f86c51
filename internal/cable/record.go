// =============================================================================
// Cable Label Generator - Cable Record
// =============================================================================
//
// This package contains the cable record type shared between the CSV and XLSX
// schedule parsers and the layout engine. Keeping it in its own package avoids
// import cycles between the parsers and the generator.
//
// A record is built once from a schedule row and is immutable afterwards. The
// Size and Type fields are derived from the Specification field at
// construction time and are never set independently.
//
// =============================================================================

package cable

import "strings"

// =============================================================================
// RECORD TYPE
// =============================================================================

// Record represents one cable from the schedule.
type Record struct {
	// ID is the cable identifier, e.g. "C-101".
	// Unique per row in practice, not enforced.
	ID string

	// Specification is the free-text cable specification,
	// e.g. "500mm² 110 XLPE CU FLEX 20-OF".
	Specification string

	// Origin is where the cable starts, e.g. "Panel A".
	Origin string

	// Destination is where the cable ends, e.g. "Panel B".
	Destination string

	// Size is the first whitespace-delimited token of Specification when that
	// token contains "mm", otherwise empty. Derived, never set directly.
	Size string

	// Type is the remainder of Specification after the first token, rejoined
	// with single spaces. Derived, never set directly.
	Type string
}

// New builds a Record and derives Size and Type from the specification.
//
// The first token is treated as the conductor size only when it contains the
// substring "mm" (e.g. "500mm²"). The remaining tokens form the type
// description. The first token is dropped from Type even when it does not
// qualify as a size; schedules in the field rely on this.
func New(id, specification, origin, destination string) Record {
	r := Record{
		ID:            id,
		Specification: specification,
		Origin:        origin,
		Destination:   destination,
	}
	r.Size, r.Type = parseSpecification(specification)
	return r
}

// parseSpecification splits a specification string into size and type.
func parseSpecification(spec string) (size, typ string) {
	parts := strings.Fields(spec)
	if len(parts) == 0 {
		return "", ""
	}

	if strings.Contains(parts[0], "mm") {
		size = parts[0]
	}
	if len(parts) > 1 {
		typ = strings.Join(parts[1:], " ")
	}

	return size, typ
}

// =============================================================================
// ROW MAPPING
// =============================================================================

// Legacy exports embed the column label inside the value itself
// ("ORIGIN: Panel A"). The four-column mapping strips these.
const (
	originPrefix      = "ORIGIN: "
	destinationPrefix = "DESTINATION: "
)

// FromRow maps one schedule row to a Record.
//
// PARAMETERS:
//   - row: The raw field values of one row, in column order.
//
// RETURNS:
//   - The mapped Record.
//   - false when the row is too short or has an empty id after trimming,
//     in which case the row is dropped.
//
// MAPPING RULES:
//   - Rows with 4+ fields map columns 0-3 to id, specification, origin and
//     destination. Origin and destination are stripped of leftover
//     "ORIGIN: " / "DESTINATION: " labels from the legacy export format.
//   - Rows with 2-3 fields map id and specification, with origin and
//     destination filled when present.
//   - Shorter rows are dropped.
func FromRow(row []string) (Record, bool) {
	var rec Record

	switch {
	case len(row) >= 4:
		rec = New(
			strings.TrimSpace(row[0]),
			strings.TrimSpace(row[1]),
			strings.ReplaceAll(strings.TrimSpace(row[2]), originPrefix, ""),
			strings.ReplaceAll(strings.TrimSpace(row[3]), destinationPrefix, ""),
		)

	case len(row) >= 2:
		origin := ""
		if len(row) > 2 {
			origin = strings.TrimSpace(row[2])
		}
		destination := ""
		if len(row) > 3 {
			destination = strings.TrimSpace(row[3])
		}
		rec = New(
			strings.TrimSpace(row[0]),
			strings.TrimSpace(row[1]),
			origin,
			destination,
		)

	default:
		return Record{}, false
	}

	if rec.ID == "" {
		return Record{}, false
	}

	return rec, true
}

// =============================================================================
// HEADER DETECTION
// =============================================================================

// headerKeywords are the words that identify a header row. The check is
// case-insensitive and substring-based, so "CableID" and "Origin Panel"
// both match.
var headerKeywords = []string{"cable", "id", "origin", "destination", "spec"}

// LooksLikeHeader reports whether a line of the schedule looks like a column
// header rather than a data row.
func LooksLikeHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range headerKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
