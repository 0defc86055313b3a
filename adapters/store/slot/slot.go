// Package slot implements the layout and workspace repositories over a
// domain.Backend. Each (tenant, user) scope owns two opaque slots: one holds
// the whole name->layout collection, the other the workspace document. Every
// operation reads its slot as a unit, mutates in memory, and writes it back
// as a unit; there are no partial updates at the storage boundary.
package slot

import "github.com/gridpad/gridpad/domain/model"

func layoutsKey(sc model.Scope) string {
	return "layouts/" + sc.Tenant + "/" + sc.User
}

func workspaceKey(sc model.Scope) string {
	return "workspace/" + sc.Tenant + "/" + sc.User
}
