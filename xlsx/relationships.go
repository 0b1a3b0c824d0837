package xlsx

import "strconv"

// Relationship is one entry of a relationship part: a short ID scoped to
// that part, a schema type URI, and a target path relative to the part's
// directory.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// RelationshipPart is an ordered, append-only relationship part under
// construction. IDs are assigned contiguously (rId1, rId2, ...) in
// insertion order, which is also emission order — the relationship graph
// is built once per part and then serialized directly from this slice, so
// the two can never drift (per the package format's cyclic-reference design
// note: parts only reference each other through the relationship graph).
type RelationshipPart struct {
	entries []Relationship
	nextID  int
}

// Add appends a new relationship of the given type/target and returns its
// assigned rId.
func (p *RelationshipPart) Add(relType, target string) string {
	p.nextID++
	id := "rId" + strconv.Itoa(p.nextID)
	p.entries = append(p.entries, Relationship{ID: id, Type: relType, Target: target})
	return id
}

// AddWithID appends a relationship under an explicit ID rather than the
// next sequential one, for the one case that needs it: the workbook
// relationship part aliases rId{sheetID} to each sheet, so sheet
// relationship IDs are not necessarily contiguous with each other but must
// still avoid colliding with the IDs assigned to styles/sharedStrings/theme
// that follow them.
func (p *RelationshipPart) AddWithID(id, relType, target string) {
	p.entries = append(p.entries, Relationship{ID: id, Type: relType, Target: target})
	n, err := strconv.Atoi(trimRIDPrefix(id))
	if err == nil && n > p.nextID {
		p.nextID = n
	}
}

// Entries returns the part's relationships in emission order.
func (p *RelationshipPart) Entries() []Relationship {
	return p.entries
}

// IsEmpty reports whether the part has no relationships at all (the
// worksheet relationship part is empty whenever its sheet has no anchored
// images).
func (p *RelationshipPart) IsEmpty() bool {
	return len(p.entries) == 0
}

func trimRIDPrefix(id string) string {
	if len(id) > 3 && id[:3] == "rId" {
		return id[3:]
	}
	return id
}

// Relationship type URIs used by this engine's emitted parts.
const (
	relTypeOfficeDocument  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProperties  = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeWorksheet       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	relTypeStyles          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeSharedStrings   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
	relTypeTheme           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypeDrawing         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing"
	relTypeImage           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)
