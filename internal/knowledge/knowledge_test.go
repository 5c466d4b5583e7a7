package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAll(t *testing.T) {
	b := NewBase()

	assert.Len(t, b.Search("", ""), 5)
	assert.Len(t, b.Search("", "All"), 5)
}

func TestSearchByCategory(t *testing.T) {
	b := NewBase()

	soil := b.Search("", "Soil Health")
	require.Len(t, soil, 2)
	for _, a := range soil {
		assert.Equal(t, "Soil Health", a.Category)
	}

	assert.Empty(t, b.Search("", "No Such Category"))
}

func TestSearchByTerm(t *testing.T) {
	b := NewBase()

	tests := []struct {
		name string
		term string
		ids  []string
	}{
		{name: "title match case-insensitive", term: "SOIL PH", ids: []string{"1"}},
		{name: "excerpt match", term: "granular", ids: []string{"2"}},
		{name: "tag match", term: "compost", ids: []string{"3"}},
		{name: "no match", term: "hydraulics", ids: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Search(tt.term, "")
			var ids []string
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestSearchTermAndCategory(t *testing.T) {
	b := NewBase()

	// "organic" matches articles in several categories; the category filter
	// narrows it to the pest control one
	got := b.Search("organic", "Plant Care")
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
}

func TestGet(t *testing.T) {
	b := NewBase()

	a, ok := b.Get("2")
	require.True(t, ok)
	assert.Equal(t, "The Benefits of Liquid vs. Granular Fertilizers", a.Title)
	assert.Equal(t, "4 min", a.ReadTime)

	_, ok = b.Get("999")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	b := NewBase()

	assert.Equal(t,
		[]string{"Soil Health", "Plant Nutrition", "Plant Care", "Garden Planning"},
		b.Categories())
}
