package naming

import (
	"fmt"
	"strings"
)

const (
	layoutNameMaxLength    = 128
	dashboardNameMaxLength = 128
)

func validateName(name string, maximum int, kind string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s name exceeds %d characters", kind, maximum)
	}
	return nil
}

func ValidateLayoutName(name string) error {
	return validateName(name, layoutNameMaxLength, "layout")
}

func ValidateDashboardName(name string) error {
	return validateName(name, dashboardNameMaxLength, "dashboard")
}
