// Package patch implements minimal field-level diffs for partial updates.
// An update never sends fields the caller did not change: the proposed values
// are compared against a freshly fetched authoritative copy and only the
// differing fields survive into the write payload.
package patch

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Changed compares the fields present on proposed against the authoritative
// value and returns the minimal payload of fields whose values actually differ.
//
// Both values are normalized through their JSON encoding before comparison, so
// slice-valued fields (role ID lists, supplier ID lists) compare by full
// content and numeric fields compare by value regardless of Go type. Fields
// absent from proposed (nil pointers with omitempty, omitted map keys) are
// ignored. An empty result means the update is a no-op and no write should be
// issued.
func Changed(authoritative, proposed any) (map[string]any, error) {
	authMap, err := asMap(authoritative)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize authoritative value: %w", err)
	}
	propMap, err := asMap(proposed)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize proposed value: %w", err)
	}

	changed := make(map[string]any)
	for field, value := range propMap {
		current, known := authMap[field]
		if !known || !reflect.DeepEqual(current, value) {
			changed[field] = value
		}
	}
	return changed, nil
}

// asMap round-trips a value through JSON into a generic map so that all
// numbers become float64 and all slices become []any.
func asMap(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		normalized, err := normalize(m)
		if err != nil {
			return nil, err
		}
		return normalized, nil
	}
	return normalize(v)
}

func normalize(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
