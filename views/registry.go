// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"cogentcore.org/modelview/base/keylist"
	"cogentcore.org/modelview/models"
)

// Factory makes a new single-role companion for the given view and role.
type Factory func(v View, rt models.RoleType) Companion

// Registry maps the kind of data of a role to the factory of the
// companion that presents it. Registries are made explicitly and
// given to views, so that different views can use different companions.
type Registry struct {
	factories keylist.List[models.RoleKinds, Factory]
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{}
}

// NewStandardRegistry returns a new [Registry] with the standard
// [Label], [Icon] and [Check] companions registered.
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	r.Register(models.TextKind, func(v View, rt models.RoleType) Companion { return NewLabel(v, rt.Role) })
	r.Register(models.IconKind, func(v View, rt models.RoleType) Companion { return NewIcon(v, rt.Role) })
	r.Register(models.CheckKind, func(v View, rt models.RoleType) Companion { return NewCheck(v, rt.Role) })
	return r
}

// Register sets the factory for the given kind, replacing any existing one.
func (r *Registry) Register(kind models.RoleKinds, f Factory) {
	r.factories.Set(kind, f)
}

// Unregister removes the factory for the given kind, so that it is
// shown with a [Label]. It returns whether there was one.
func (r *Registry) Unregister(kind models.RoleKinds) bool {
	return r.factories.DeleteByKey(kind)
}

// Has returns whether a factory is registered for the given kind.
func (r *Registry) Has(kind models.RoleKinds) bool {
	return r.factories.IndexByKey(kind) >= 0
}

// single makes the companion for one role. Kinds without a factory
// are shown with a [Label].
func (r *Registry) single(v View, rt models.RoleType) Companion {
	if f, ok := r.factories.AtTry(rt.Kind); ok {
		return f(v, rt)
	}
	return NewLabel(v, rt.Role)
}

// New returns a new companion for a cell with the given roles: the
// registered companion for a single role, or a [Composite] with one
// part per role. With no roles, it shows the display role as text.
func (r *Registry) New(v View, roles []models.RoleType) Companion {
	switch len(roles) {
	case 0:
		return NewLabel(v, models.DisplayRole)
	case 1:
		return r.single(v, roles[0])
	}
	cp := &Composite{}
	cp.This = cp
	cp.View = v
	cp.Role = models.DisplayRole
	for _, rt := range roles {
		cp.Parts = append(cp.Parts, r.single(v, rt))
	}
	return cp
}
