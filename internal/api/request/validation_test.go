package request

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/customers/internal/model"
)

func TestParseID_Valid(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseID_Negative(t *testing.T) {
	id, err := ParseID("-3")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), id)
}

func TestParseID_Empty(t *testing.T) {
	_, err := ParseID("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required ID")
}

func TestParseID_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"letters", "abc"},
		{"decimal", "1.5"},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000"},
		{"overflow", "99999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseID(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid ID")
		})
	}
}

func TestDecode_CustomerDTO(t *testing.T) {
	body := `{"id":9,"name":"Ada","email":null}`
	r, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	require.NoError(t, err)

	var dto model.CustomerDTO
	require.NoError(t, Decode(r, &dto))
	require.NotNil(t, dto.ID)
	assert.Equal(t, int64(9), *dto.ID)
	assert.Equal(t, "Ada", *dto.Name)
	assert.Nil(t, dto.Email)
}

func TestDecode_InvalidJSON(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{bad`))
	require.NoError(t, err)

	var dto model.CustomerDTO
	err = Decode(r, &dto)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

// testDecodePayload exercises the validation pass of Decode.
type testDecodePayload struct {
	Name string `json:"name" validate:"required"`
}

func TestDecode_ValidationError(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
	require.NoError(t, err)

	var p testDecodePayload
	err = Decode(r, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}
