package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToDTO_CopiesAllFields(t *testing.T) {
	c := Customer{ID: 7, Name: strPtr("Ada"), Email: strPtr("ada@example.com")}

	dto := ToDTO(c)

	require.NotNil(t, dto.ID)
	assert.Equal(t, int64(7), *dto.ID)
	assert.Equal(t, "Ada", *dto.Name)
	assert.Equal(t, "ada@example.com", *dto.Email)
}

func TestToDTO_KeepsNulls(t *testing.T) {
	dto := ToDTO(Customer{ID: 3})

	require.NotNil(t, dto.ID)
	assert.Nil(t, dto.Name)
	assert.Nil(t, dto.Email)
}

func TestToDTO_IDIsDetachedFromRecord(t *testing.T) {
	c := Customer{ID: 1}
	dto := ToDTO(c)

	*dto.ID = 99
	assert.Equal(t, int64(1), c.ID)
}

func TestToEntity_IgnoresID(t *testing.T) {
	id := int64(42)
	dto := CustomerDTO{ID: &id, Name: strPtr("Grace"), Email: strPtr("grace@example.com")}

	c := dto.ToEntity()

	assert.Zero(t, c.ID)
	assert.Equal(t, "Grace", *c.Name)
	assert.Equal(t, "grace@example.com", *c.Email)
}

func TestToDTOs_EmptyIsNotNil(t *testing.T) {
	dtos := ToDTOs(nil)

	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)
}

func TestToDTOs_PreservesOrder(t *testing.T) {
	dtos := ToDTOs([]Customer{{ID: 2}, {ID: 1}, {ID: 5}})

	require.Len(t, dtos, 3)
	assert.Equal(t, int64(2), *dtos[0].ID)
	assert.Equal(t, int64(1), *dtos[1].ID)
	assert.Equal(t, int64(5), *dtos[2].ID)
}
