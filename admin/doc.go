// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package admin declares which entity fields the administrative surface may
edit.

# Registration

Registrations is an explicit configuration struct, checked at startup:

	if err := admin.Validate(admin.Registrations); err != nil {
		os.Exit(1)
	}

Questions register published_at and text as editable. An unknown entity,
an unknown field, or an empty field list fails validation and the server
refuses to start.

# Enforcement

Handlers consult FieldEditable before applying an admin update:

	if admin.FieldEditable(models.EntityQuestion, "text") { ... }

Fields not registered are silently read-only; the update handler rejects
requests that touch them.
*/
package admin
