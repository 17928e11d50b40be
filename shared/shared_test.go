package shared_test

import (
	"hotel/shared"
	"hotel/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt64(t *testing.T) {
	value, err := shared.ConvertStringToInt64(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)

	_, err = shared.ConvertStringToInt64("forty-two")
	assert.Error(t, err)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
	assert.Equal(t, "limiter:127.0.0.1:curl", shared.BuildCacheKey("limiter", "127.0.0.1", "curl"))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(7, "id", "room")

	require.Len(t, filter.Filters, 1)

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(room.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)

	f, ok := filter.Filters[0].(dto.Filter)
	require.True(t, ok)
	assert.Equal(t, dto.FilterOperatorEq, f.Operator)
}

func boolPtr(b bool) *bool {
	return &b
}
