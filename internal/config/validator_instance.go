package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	sshGitPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("element", func(fl validator.FieldLevel) bool {
			return cm.IsElement(fl.Field().String())
		})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true // Allow empty if not required
			}

			if strings.TrimSpace(urlStr) == "" {
				return false
			}

			// Network URLs need http(s) and a host.
			if parsedURL, err := url.Parse(urlStr); err == nil {
				scheme := strings.ToLower(parsedURL.Scheme)
				if scheme == "http" || scheme == "https" {
					if parsedURL.Host != "" {
						return true
					}
				}
			}

			// SSH-style git URLs (user@host:path)
			if sshGitPattern.MatchString(urlStr) {
				return true
			}

			return isValidFilePath(urlStr)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidFilePath performs syntactic validation of file paths without filesystem access
func isValidFilePath(path string) bool {
	if path == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}

	// Relative paths need an explicit prefix.
	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}
