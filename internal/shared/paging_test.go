package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 10}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 1, Size: 10}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 2, Size: 20}.Offset())
}

func TestNewPageMetaEchoesRequest(t *testing.T) {
	meta := NewPageMeta(PageRequest{Page: 0, Size: 10}, 1)

	assert.Equal(t, 0, meta.Page)
	assert.Equal(t, 10, meta.Size)
	assert.Equal(t, 1, meta.TotalElements)
}

func TestNewPageMetaTotalIndependentOfPageContents(t *testing.T) {
	// A page past the end still reports the full total.
	meta := NewPageMeta(PageRequest{Page: 9, Size: 10}, 3)

	assert.Equal(t, 9, meta.Page)
	assert.Equal(t, 3, meta.TotalElements)
}
