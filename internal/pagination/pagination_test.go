package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_Windows(t *testing.T) {
	t.Parallel()

	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	page := Slice(items, 1, 3)
	assert.Equal(t, []int{0, 1, 2}, page.Items)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
	assert.Equal(t, 2, page.NextNum)
	assert.Zero(t, page.PrevNum)

	page = Slice(items, 4, 3)
	assert.Equal(t, []int{9, 10, 11}, page.Items)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
	assert.Equal(t, 3, page.PrevNum)
}

func TestSlice_BeyondRange(t *testing.T) {
	t.Parallel()

	items := make([]int, 12)
	page := Slice(items, 5, 3)

	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestSlice_PartialLastPage(t *testing.T) {
	t.Parallel()

	page := Slice([]int{1, 2, 3, 4}, 2, 3)
	assert.Equal(t, []int{4}, page.Items)
	assert.False(t, page.HasNext)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	page, perPage := Normalize(0, 0, 3)
	assert.Equal(t, 1, page)
	assert.Equal(t, 3, perPage)

	page, perPage = Normalize(-5, 7, 3)
	assert.Equal(t, 1, page)
	assert.Equal(t, 7, perPage)
}

func TestNew_TrimsProbeRow(t *testing.T) {
	t.Parallel()

	// Four rows fetched with perPage 3: the extra row only signals HasNext.
	page := New([]string{"a", "b", "c", "d"}, 1, 3)
	assert.Equal(t, []string{"a", "b", "c"}, page.Items)
	assert.True(t, page.HasNext)

	page = New([]string{"a"}, 2, 3)
	assert.Equal(t, []string{"a"}, page.Items)
	assert.False(t, page.HasNext)
	assert.Equal(t, 1, page.PrevNum)
}
