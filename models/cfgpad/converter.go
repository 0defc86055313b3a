package cfgpad

import (
	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// ScopeModel converts the configured scope to a domain scope, filling
// defaults.
func (r *Root) ScopeModel() model.Scope {
	return model.Scope{Tenant: r.Scope.Tenant, User: r.Scope.User}.Complete()
}

// ToLayouts converts the declared presets to normalized domain layouts,
// minting instance ids for widgets that omitted one.
func (r *Root) ToLayouts() ([]*model.Layout, error) {
	out := make([]*model.Layout, 0, len(r.Layouts))
	for _, l := range r.Layouts {
		items := make([]model.Widget, 0, len(l.Widgets))
		for _, w := range l.Widgets {
			instanceID := w.InstanceID
			if instanceID == "" {
				instanceID = naming.NewInstanceID()
			}
			items = append(items, model.Widget{
				ID:         w.ID,
				InstanceID: instanceID,
				Title:      w.Title,
				Props:      model.Props(w.Props),
				Order:      w.Order,
				X:          w.X,
				Y:          w.Y,
				W:          w.W,
				H:          w.H,
			})
		}
		out = append(out, model.NewLayout(l.Name, items))
	}
	return out, nil
}
