package esutil

import (
	"encoding/json"
	"strings"
	"testing"

	"teeup_backend/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileToElasticsearchDoc(t *testing.T) {
	entry := profile.Catalog()[1]
	docJSON, err := ProfileToElasticsearchDoc(&entry)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(docJSON), &doc))
	assert.Equal(t, "hannah-park", doc["slug"])
	assert.Equal(t, "Hannah Park", doc["name"])
	assert.Contains(t, doc["spec_values"], "272m")

	_, err = ProfileToElasticsearchDoc(nil)
	assert.Error(t, err)
	_, err = ProfileToElasticsearchDoc(&profile.Entry{})
	assert.Error(t, err)
}

func TestBuildBulkBody(t *testing.T) {
	entries := append(profile.Catalog(), profile.Entry{})
	body, indexed, failed := BuildBulkBody("profiles", entries)

	assert.Equal(t, []string{"elliot-kim", "hannah-park", "mina-jang"}, indexed)
	assert.Len(t, failed, 1)

	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.JSONEq(t, `{"index":{"_index":"profiles","_id":"elliot-kim"}}`, lines[0])
}
