package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	cmerrors "github.com/alexisbeaulieu97/classmate/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseCatalog loads a catalog file from disk, validates it, and returns the resulting model.
func ParseCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cmerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates catalog data. path is only used in error messages.
func Parse(path string, data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, cmerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateCatalog(&cat); err != nil {
		return nil, err
	}

	return &cat, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
