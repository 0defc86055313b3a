// Package cfgpad defines the configuration schema (structs) for gridpad.yml,
// the declarative layout preset file used by file: mode. This package is
// intended for YAML -> struct deserialization; loading and validation helpers
// live in separate files.
package cfgpad

// Root is the root structure of gridpad.yml.
// Example:
// version: 1
// scope: { tenant: default, user: local }
// layouts:
//   - name: Ops
//     widgets: [ ... ]
type Root struct {
	Version int      `yaml:"version" validate:"eq=1"`
	Scope   Scope    `yaml:"scope,omitempty"`
	Layouts []Layout `yaml:"layouts" validate:"dive"`
}

// Scope selects the (tenant, user) partition the presets are seeded into.
// Empty fields default to (default, local).
type Scope struct {
	Tenant string `yaml:"tenant,omitempty" validate:"excludes=/"`
	User   string `yaml:"user,omitempty" validate:"excludes=/"`
}

// Layout declares one named layout preset.
type Layout struct {
	Name    string   `yaml:"name" validate:"required,max=128"`
	Widgets []Widget `yaml:"widgets" validate:"dive"`
}

// Widget declares one placed widget. InstanceID may be omitted; a fresh id is
// minted during conversion.
type Widget struct {
	ID         string         `yaml:"id" validate:"required"`
	InstanceID string         `yaml:"instanceId,omitempty"`
	Title      string         `yaml:"title,omitempty"`
	Props      map[string]any `yaml:"props,omitempty"`
	Order      int            `yaml:"order,omitempty"`
	X          int            `yaml:"x,omitempty"`
	Y          int            `yaml:"y,omitempty"`
	W          int            `yaml:"w,omitempty"`
	H          int            `yaml:"h,omitempty"`
}
