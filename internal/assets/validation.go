package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a set or template name is safe for use as
// a path component. Returns ErrInvalidAssetName if the name is empty or
// contains path separators, dots or null bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// validateNames validates a set and template name pair.
func validateNames(set, name string) error {
	if err := ValidateAssetName(set); err != nil {
		return err
	}
	return ValidateAssetName(name)
}
