package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

func TestParseProps(t *testing.T) {
	t.Parallel()

	props, err := ParseProps([]string{"$size=lg", "$active", "disabled=false", "count=0", "label=a=b", "nothing=null", "text="})
	require.NoError(t, err)
	assert.Equal(t, cm.Props{
		"$size":    "lg",
		"$active":  true,
		"disabled": false,
		"count":    0,
		"label":    "a=b",
		"nothing":  nil,
		"text":     "",
	}, props)
}

func TestParsePropsRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	_, err := ParseProps([]string{"=value"})
	require.ErrorContains(t, err, "expected key=value")
}
