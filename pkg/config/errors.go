// pkg/config/errors.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Every validation failure wraps one of these kinds so callers can classify
// with errors.Is. All are fatal at registration time.
var (
	ErrMissingRequired = errors.New("missing required option")
	ErrMutualExclusion = errors.New("mutually exclusive options")
	ErrDependentOption = errors.New("dependent option missing")
	ErrInvalidValue    = errors.New("invalid option value")
	ErrFileAccess      = errors.New("file access")
)

func missingRequired(what string, keys ...string) error {
	return fmt.Errorf("%w: %s (set one of: %s)", ErrMissingRequired, what, strings.Join(keys, ", "))
}

func mutualExclusion(detail string, keys ...string) error {
	return fmt.Errorf("%w: %s %s", ErrMutualExclusion, strings.Join(keys, ", "), detail)
}

// dependentMissing reports that `missing` is required once `present` is set.
func dependentMissing(missing, present string) error {
	return fmt.Errorf("%w: %s is required when %s is set", ErrDependentOption, missing, present)
}

func invalidValue(key, detail string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidValue, key, detail)
}

func fileAccess(key, path, detail string) error {
	return fmt.Errorf("%w: %s %q %s", ErrFileAccess, key, path, detail)
}
