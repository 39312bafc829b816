package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

func TestValidateStruct_FilterState(t *testing.T) {
	assert.NoError(t, ValidateStruct(models.DefaultFilterState()))

	bad := models.DefaultFilterState()
	bad.MinPrice = 500
	bad.MaxPrice = 100
	bad.MinRating = 7
	bad.SortBy = "cheapest"

	err := ValidateStruct(bad)
	require.Error(t, err)

	fields := map[string]string{}
	for _, e := range GetValidationErrors(err) {
		fields[e.Field] = e.Tag
	}
	assert.Equal(t, "gtefield", fields["maxprice"])
	assert.Equal(t, "lte", fields["minrating"])
	assert.Equal(t, "oneof", fields["sortby"])
}

func TestValidateStruct_Username(t *testing.T) {
	type form struct {
		Username string `validate:"required,username"`
	}

	assert.NoError(t, ValidateStruct(form{Username: "jane_doe"}))
	assert.Error(t, ValidateStruct(form{Username: "jane doe"}))
	assert.Error(t, ValidateStruct(form{}))
}
