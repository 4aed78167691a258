package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, "mm_fin_internal", tables.Dataset)
	assert.Equal(t, "fin_rec_data", tables.Records)
	assert.Equal(t, "fin_rec_variance", tables.Variance)
	assert.Equal(t, "fin_rec_pricing", tables.Pricing)
	assert.Equal(t, "fin_rec_summary", tables.Summary)
}
