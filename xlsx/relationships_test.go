package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationshipPartAddIsContiguous(t *testing.T) {
	p := &RelationshipPart{}
	id1 := p.Add(relTypeWorksheet, "worksheets/sheet1.xml")
	id2 := p.Add(relTypeStyles, "styles.xml")
	assert.Equal(t, "rId1", id1)
	assert.Equal(t, "rId2", id2)
	assert.Len(t, p.Entries(), 2)
}

func TestRelationshipPartAddWithIDAdvancesNextID(t *testing.T) {
	p := &RelationshipPart{}
	p.AddWithID("rId5", relTypeWorksheet, "worksheets/sheet5.xml")
	next := p.Add(relTypeStyles, "styles.xml")
	assert.Equal(t, "rId6", next)
}

func TestRelationshipPartIsEmpty(t *testing.T) {
	p := &RelationshipPart{}
	assert.True(t, p.IsEmpty())
	p.Add(relTypeImage, "../media/img1.png")
	assert.False(t, p.IsEmpty())
}
