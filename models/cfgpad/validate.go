package cfgpad

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gridpad/gridpad/internal/naming"
)

// cfgValidate is the shared validator instance for the schema tags.
var cfgValidate = validator.New()

// Validate performs struct tag validation followed by a semantic pass:
// layout names must be unique, instance ids must be unique within a layout,
// and scope fields must not contain the slot key separator.
func (r *Root) Validate() error {
	if err := cfgValidate.Struct(r); err != nil {
		return fmt.Errorf("gridpad.yml: %w", err)
	}
	seenNames := make(map[string]struct{}, len(r.Layouts))
	for i, l := range r.Layouts {
		if err := naming.ValidateLayoutName(l.Name); err != nil {
			return fmt.Errorf("layouts[%d].name: %w", i, err)
		}
		if _, exists := seenNames[l.Name]; exists {
			return fmt.Errorf("layouts[%d].name: duplicate layout name %q", i, l.Name)
		}
		seenNames[l.Name] = struct{}{}

		seenIDs := make(map[string]struct{}, len(l.Widgets))
		for j, w := range l.Widgets {
			if w.InstanceID == "" {
				continue
			}
			if _, exists := seenIDs[w.InstanceID]; exists {
				return fmt.Errorf("layouts[%d].widgets[%d].instanceId: duplicate instance id %q", i, j, w.InstanceID)
			}
			seenIDs[w.InstanceID] = struct{}{}
		}
	}
	return nil
}
