package analytics

import (
	"strings"

	"github.com/stayhive/hostel-manager/internal/entity"
)

// UnknownLabel is the bucket for rows whose grouping column is NULL or
// empty. Such rows are reported, never dropped.
const UnknownLabel = "unknown"

// Canonical labels for boolean grouping columns. These strings are part of
// the reporting contract and must stay stable across calls.
const (
	LabelVerified   = "verified"
	LabelUnverified = "unverified"
	LabelAccepting  = "accepting"
	LabelClosed     = "closed"
)

// A Normalizer maps a raw grouping label to its canonical form.
type Normalizer func(raw string) string

// PassThrough keeps enum labels as they come off the query.
func PassThrough(raw string) string { return raw }

// BoolLabels normalizes a boolean-valued grouping column. MySQL reports
// TINYINT flags as "0"/"1"; "true"/"false" are accepted for drivers that
// scan booleans as text. Anything else lands in the unknown bucket.
func BoolLabels(trueLabel, falseLabel string) Normalizer {
	return func(raw string) string {
		switch strings.ToLower(raw) {
		case "1", "true":
			return trueLabel
		case "0", "false":
			return falseLabel
		}
		return UnknownLabel
	}
}

// ReduceCounts folds raw grouped-count rows into a label to count mapping.
// Labels that normalize to the same canonical form are summed, so the total
// over the result always equals the total over the input rows.
func ReduceCounts(rows []entity.LabelCount, normalize Normalizer) entity.GroupedCounts {
	out := make(entity.GroupedCounts, len(rows))
	for _, r := range rows {
		out[canonical(r.Label.String, r.Label.Valid, normalize)] += r.Count
	}
	return out
}

// ReduceSums folds raw grouped-sum rows into a label to amount mapping,
// preserving full decimal precision.
func ReduceSums(rows []entity.LabelSum, normalize Normalizer) entity.GroupedSums {
	out := make(entity.GroupedSums, len(rows))
	for _, r := range rows {
		label := canonical(r.Label.String, r.Label.Valid, normalize)
		out[label] = out[label].Add(r.Sum)
	}
	return out
}

func canonical(raw string, valid bool, normalize Normalizer) string {
	if !valid || raw == "" {
		return UnknownLabel
	}
	if normalize == nil {
		return raw
	}
	return normalize(raw)
}
