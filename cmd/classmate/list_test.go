package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTable(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", testCatalog)
	require.NoError(t, err)

	assert.Contains(t, stdout, "ID")
	assert.Contains(t, stdout, "DISPLAY NAME")
	assert.Regexp(t, `button\s+button\s+-\s+\$size,\$tone\s+Variants\(button\)`, stdout)
	assert.Regexp(t, `danger\s+button\s+button\s+\$size,\$tone\s+Extended\(Variants\(button\)\)`, stdout)
	assert.Regexp(t, `card\s+div\s+-\s+-\s+Base\(div\)`, stdout)
}

func TestListJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", testCatalog, "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "design-system", payload.Catalog)
	assert.Equal(t, 3, payload.Count)
	require.Len(t, payload.Components, 3)
	assert.Equal(t, "danger", payload.Components[1].ID)
	assert.Equal(t, "button", payload.Components[1].Extends)
	assert.Empty(t, payload.Components[2].VariantKeys)
}

func TestListMissingCatalog(t *testing.T) {
	_, _, err := executeCommand(t, "list", "testdata/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading catalog testdata/nope.yaml")
}
