// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"fmt"

	"github.com/danielhkuo/pollbox/models"
)

// Registration declares which fields of an entity the admin surface may
// edit. Anything not registered here is read-only through the console.
type Registration struct {
	Entity string
	Fields []string
}

// Registrations is the admin console configuration. The admin surface for
// questions exposes the publication timestamp and the label text.
var Registrations = []Registration{
	{Entity: models.EntityQuestion, Fields: []string{"published_at", "text"}},
}

// editableFields enumerates, per entity, the fields a registration is
// allowed to reference.
var editableFields = map[string][]string{
	models.EntityQuestion: {"text", "published_at"},
	models.EntityChoice:   {"text"},
}

// Validate checks a set of registrations against the known entities and
// their editable fields. Called once at startup; a failure means the
// configuration itself is wrong and the process should not serve.
func Validate(regs []Registration) error {
	seen := make(map[string]bool, len(regs))
	for _, reg := range regs {
		allowed, ok := editableFields[reg.Entity]
		if !ok {
			return fmt.Errorf("unknown entity %q in admin registration", reg.Entity)
		}
		if seen[reg.Entity] {
			return fmt.Errorf("entity %q registered twice", reg.Entity)
		}
		seen[reg.Entity] = true

		if len(reg.Fields) == 0 {
			return fmt.Errorf("entity %q registered with no editable fields", reg.Entity)
		}
		for _, field := range reg.Fields {
			if !contains(allowed, field) {
				return fmt.Errorf("field %q is not editable on entity %q", field, reg.Entity)
			}
		}
	}
	return nil
}

// FieldEditable reports whether the given entity field is registered as
// editable. Unregistered entities have no editable fields.
func FieldEditable(entity, field string) bool {
	for _, reg := range Registrations {
		if reg.Entity == entity {
			return contains(reg.Fields, field)
		}
	}
	return false
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
