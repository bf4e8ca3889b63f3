// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains the domain types, request/response types, and the
publication-visibility rules.

# Domain Types

A Question owns zero or more Choices. The publication timestamp is set at
creation and is never changed through the public API; only the admin
surface may edit it. Deleting a question deletes its choices (enforced by
the schema's ON DELETE CASCADE).

# Visibility Rules

A question is published once its timestamp is at or before the current
time, and recently published when that happened within the last 24 hours:

	q.IsPublished(now)          // published_at <= now
	q.WasPublishedRecently(now) // now-24h < published_at <= now

Both comparisons normalize to UTC. The recency window is exclusive at the
lower bound and inclusive at the upper bound.

# Index Listing

ListPublished is the index page query: published questions with at least
one choice, most recently published first. Ties on the publication
timestamp keep insertion order. The function is pure - it never mutates
its input and never returns nil.

	visible := models.ListPublished(questions, time.Now())

# Choice Text Coercion

FlexText accepts JSON strings, numbers, and booleans, always storing the
textual form. Sending {"text": 333} produces the choice label "333".
*/
package models
