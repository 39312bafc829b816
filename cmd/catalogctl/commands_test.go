package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testCatalog = `{"products":[
  {"id":1,"title":"Smartphone X","description":"Flagship phone","category":"phones","price":699,"rating":4.6,"isTrending":true,"inStock":true},
  {"id":2,"title":"Budget Phone","description":"Affordable mobile","category":"phones","price":199,"rating":3.9,"inStock":true},
  {"id":3,"title":"Wireless Earbuds","description":"Bluetooth audio","category":"audio","price":129,"rating":4.8,"inStock":true}
]}`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, "search", "--source", writeCatalog(t), "--category", "phones", "--sort", "price-low")
	require.NoError(t, err)

	var result struct {
		Products []struct {
			ID int `json:"id"`
		} `json:"products"`
		Total   int  `json:"total"`
		HasMore bool `json:"has_more"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Products[0].ID)
	assert.Equal(t, 1, result.Products[1].ID)
	assert.False(t, result.HasMore)
}

func TestSearchCommand_HugePage(t *testing.T) {
	out, err := execute(t, "search", "--source", writeCatalog(t), "--page", "9223372036854775807")
	require.NoError(t, err)

	var result struct {
		Products []json.RawMessage `json:"products"`
		HasMore  bool              `json:"has_more"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Products, 3)
	assert.False(t, result.HasMore)
}

func TestSearchCommand_InvalidFilters(t *testing.T) {
	_, err := execute(t, "search", "--source", writeCatalog(t), "--min-rating", "9")
	assert.ErrorContains(t, err, "invalid filters")
}

func TestRecommendCommand_YAML(t *testing.T) {
	out, err := execute(t, "recommend", "--source", writeCatalog(t), "--cart", "1", "-o", "yaml")
	require.NoError(t, err)

	var products []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &products))
	for _, p := range products {
		assert.NotEqual(t, 1, p["id"])
	}
	assert.NotEmpty(t, products)
}

func TestKeywordsCommand(t *testing.T) {
	out, err := execute(t, "keywords", "wireless", "phone")
	require.NoError(t, err)

	var keywords []string
	require.NoError(t, json.Unmarshal([]byte(out), &keywords))
	assert.Equal(t, []string{"wireless", "phone", "bluetooth", "cordless", "mobile", "smartphone", "cell"}, keywords)
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, "categories", "--source", writeCatalog(t))
	require.NoError(t, err)
	assert.JSONEq(t, `["phones","audio"]`, out)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "categories", "--source", writeCatalog(t), "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
