// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"sort"
	"time"
)

// recentWindow is how far back a publication still counts as "recent".
const recentWindow = 24 * time.Hour

// IsPublished reports whether the question is published at the given
// instant: published_at <= now. Both times are compared in UTC.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PublishedAt.UTC().After(now.UTC())
}

// WasPublishedRecently reports whether the question was published within
// the last 24 hours: published_at in the half-open interval (now-24h, now].
// The lower bound is exclusive, the upper bound inclusive: a question
// published exactly now is recent, one published exactly 24 hours ago is not.
// Future-dated questions are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	pub := q.PublishedAt.UTC()
	now = now.UTC()
	return pub.After(now.Add(-recentWindow)) && !pub.After(now)
}

// ListPublished filters to questions that are published at the given
// instant and have at least one choice, ordered most recently published
// first. Ties on published_at keep their input order (the caller passes
// rows in insertion order, so ties break by insertion order).
// The input is never mutated; an empty result is an empty slice, not nil.
func ListPublished(questions []QuestionWithChoices, now time.Time) []QuestionWithChoices {
	out := make([]QuestionWithChoices, 0, len(questions))
	for _, q := range questions {
		if q.Question.IsPublished(now) && len(q.Choices) > 0 {
			out = append(out, q)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Question.PublishedAt.After(out[j].Question.PublishedAt)
	})

	return out
}
