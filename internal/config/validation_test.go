package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	cmerrors "github.com/alexisbeaulieu97/classmate/pkg/errors"
)

func validCatalog() *Catalog {
	return &Catalog{
		Version: "1.0.0",
		Name:    "ui",
		Components: []Component{
			{
				ID:  "button",
				Tag: "button",
				Variants: VariantGroups{
					{Name: "size", Options: []VariantOption{{Value: "sm", Class: "text-sm"}, {Value: "lg", Class: "text-lg"}}},
				},
				DefaultVariants: map[string]string{"size": "sm"},
			},
			{ID: "danger", Extends: "button", Classes: []ClassRule{{Class: "bg-red-600"}}},
		},
	}
}

func TestValidateCatalog(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid catalog", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, ValidateCatalog(validCatalog()))
	})

	t.Run("rejects nil catalog", func(t *testing.T) {
		t.Parallel()

		var validationErr *cmerrors.ValidationError
		require.ErrorAs(t, ValidateCatalog(nil), &validationErr)
		require.Equal(t, "catalog", validationErr.Field)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		t.Parallel()

		cat := validCatalog()
		cat.Components = append(cat.Components, Component{ID: "button", Tag: "a"})

		var validationErr *cmerrors.ValidationError
		require.ErrorAs(t, ValidateCatalog(cat), &validationErr)
		require.Equal(t, "components[2].id", validationErr.Field)
		require.Contains(t, validationErr.Message, `duplicate component id "button"`)
	})

	t.Run("rejects unknown extends", func(t *testing.T) {
		t.Parallel()

		cat := validCatalog()
		cat.Components[1].Extends = "link"

		var refErr *cmerrors.ReferenceError
		require.ErrorAs(t, ValidateCatalog(cat), &refErr)
		require.Equal(t, "danger", refErr.Component)
		require.Equal(t, "link", refErr.Ref)
	})

	t.Run("rejects extends cycle", func(t *testing.T) {
		t.Parallel()

		cat := validCatalog()
		cat.Components = append(cat.Components,
			Component{ID: "x", Extends: "y"},
			Component{ID: "y", Extends: "x"},
		)

		var validationErr *cmerrors.ValidationError
		require.ErrorAs(t, ValidateCatalog(cat), &validationErr)
		require.Contains(t, validationErr.Message, "extends cycle detected: x -> y -> x")
	})

	t.Run("rejects unsupported element", func(t *testing.T) {
		t.Parallel()

		cat := validCatalog()
		cat.Components[0].Tag = "blink"

		var validationErr *cmerrors.ValidationError
		require.ErrorAs(t, ValidateCatalog(cat), &validationErr)
		require.Contains(t, validationErr.Message, "'element'")
	})

	t.Run("rejects unknown resolver", func(t *testing.T) {
		t.Parallel()

		cat := validCatalog()
		cat.Settings.Resolver = "css"

		var validationErr *cmerrors.ValidationError
		require.ErrorAs(t, ValidateCatalog(cat), &validationErr)
		require.Contains(t, validationErr.Field, "resolver")
	})
}

func TestValidateComponent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		comp    Component
		message string
	}{
		{
			name:    "requires tag or extends",
			comp:    Component{ID: "bare"},
			message: "one of tag or extends is required",
		},
		{
			name:    "tag and extends are exclusive",
			comp:    Component{ID: "both", Tag: "div", Extends: "card"},
			message: "mutually exclusive",
		},
		{
			name:    "cannot extend itself",
			comp:    Component{ID: "loop", Extends: "loop"},
			message: "cannot extend itself",
		},
		{
			name: "duplicate variant group",
			comp: Component{ID: "dup", Tag: "div", Variants: VariantGroups{
				{Name: "size", Options: []VariantOption{{Value: "sm"}}},
				{Name: "size", Options: []VariantOption{{Value: "lg"}}},
			}},
			message: `duplicate variant group "size"`,
		},
		{
			name: "duplicate option",
			comp: Component{ID: "dup", Tag: "div", Variants: VariantGroups{
				{Name: "size", Options: []VariantOption{{Value: "sm"}, {Value: "sm"}}},
			}},
			message: `duplicate option "sm"`,
		},
		{
			name:    "default names unknown group",
			comp:    Component{ID: "defaults", Tag: "div", DefaultVariants: map[string]string{"tone": "info"}},
			message: `unknown variant group "tone"`,
		},
		{
			name:    "logic target must differ from source",
			comp:    Component{ID: "logic", Tag: "div", Logic: []LogicRule{{From: "a", To: "a"}}},
			message: "nefield",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateComponent(tc.comp)
			var validationErr *cmerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Message, tc.message)
		})
	}
}
