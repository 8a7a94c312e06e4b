package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	assert.Equal(t, "lookup", ViewLookup.String())
	assert.Equal(t, "detail", ViewDetail.String())
	assert.Equal(t, "unknown", ViewType(99).String())
}
