package sweep

import (
	"testing"

	"github.com/bentley-ottmann/sweepline/geometry"
	"github.com/stretchr/testify/assert"
)

func TestEndpointMap_UpsertAndGet(t *testing.T) {
	m := newEndpointMap()
	p := geometry.NewPoint(1, 1)
	s1 := geometry.NewSegment(geometry.NewPoint(0, 0), geometry.NewPoint(2, 2))
	s2 := geometry.NewSegment(geometry.NewPoint(1, 1), geometry.NewPoint(3, 0))

	assert.Nil(t, m.Get(p))

	m.Upsert(p, s1)
	m.Upsert(p, s2)

	segs := m.Get(p)
	assert.Len(t, segs, 2)
	assert.True(t, segs[0].Eq(s1) || segs[1].Eq(s1))
	assert.True(t, segs[0].Eq(s2) || segs[1].Eq(s2))
}

func TestEndpointMap_DistinctKeys(t *testing.T) {
	m := newEndpointMap()
	a := geometry.NewPoint(0, 0)
	b := geometry.NewPoint(5, 5)
	seg := geometry.NewSegment(a, b)

	m.Upsert(a, seg)
	assert.Len(t, m.Get(a), 1)
	assert.Nil(t, m.Get(b))
}
