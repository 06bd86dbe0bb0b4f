package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("catalog.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "catalog.yaml:12")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].extends", "references unknown component", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].extends", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown component")
}

func TestDuplicateErrorListsDuplicates(t *testing.T) {
	t.Parallel()

	err := NewDuplicateError("variant map", []string{"div", "span"})

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, []string{"div", "span"}, cfgErr.Duplicates)
	require.Contains(t, err.Error(), "div, span")
	require.Contains(t, err.Error(), "variant map")
}

func TestReferenceErrorNamesBothComponents(t *testing.T) {
	t.Parallel()

	err := NewReferenceError("danger", "button")
	require.Contains(t, err.Error(), `"danger"`)
	require.Contains(t, err.Error(), `"button"`)
}

func TestRegistryErrorIncludesTag(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("already registered")
	err := NewRegistryError("div", underlying)

	var registryErr *RegistryError
	require.ErrorAs(t, err, &registryErr)
	require.Equal(t, "div", registryErr.Tag)
	require.True(t, stdErrors.Is(err, underlying))
}
