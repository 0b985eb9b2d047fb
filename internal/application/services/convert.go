// Package services provides application-level orchestration services
package services

import (
	json "github.com/goccy/go-json"
)

// decodeValue round-trips a free-form settings value into a typed singleton.
func decodeValue(value map[string]any, dest any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, dest)
}

// encodeValue round-trips a typed singleton into the free-form map shape the
// site_settings value column holds.
func encodeValue(src any) (map[string]any, error) {
	encoded, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}
