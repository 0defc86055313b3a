package model

import (
	"strings"
	"time"

	"github.com/gridpad/gridpad/internal/naming"
)

// DefaultDashboardName is used when no name is given and by the sanitizer
// when it synthesizes a dashboard for an empty workspace.
const DefaultDashboardName = "Default Dashboard"

// NewDashboard creates an empty dashboard with a fresh id and both timestamps
// set to the creation time.
func NewDashboard(name string) *Dashboard {
	if strings.TrimSpace(name) == "" {
		name = DefaultDashboardName
	}
	now := time.Now().UTC()
	return &Dashboard{
		ID:        naming.NewDashboardID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Layout:    []DashboardWidget{},
	}
}

// Clone deep-copies the dashboard under a fresh id with the name suffixed
// " (Copy)" and both timestamps reset to the clone time. When withNewIDs is
// true every layout entry receives a freshly minted instance id; otherwise
// instance ids are preserved verbatim and the caller accepts the collision
// risk when source and copy coexist.
func (d *Dashboard) Clone(withNewIDs bool) *Dashboard {
	now := time.Now().UTC()
	cp := &Dashboard{
		ID:        naming.NewDashboardID(),
		Name:      d.Name + " (Copy)",
		CreatedAt: now,
		UpdatedAt: now,
		Layout:    make([]DashboardWidget, len(d.Layout)),
	}
	for i, item := range d.Layout {
		ci := item.Clone()
		if withNewIDs {
			ci.InstanceID = naming.NewInstanceID()
		}
		cp.Layout[i] = ci
	}
	return cp
}
