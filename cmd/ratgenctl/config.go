package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	ratgenapi "ratgen/pkg/ratgen"
)

// loadCrossRequestFromConfig reads a JSON cross description. The returned
// plot pointer is nil when the file does not mention plotting.
func loadCrossRequestFromConfig(path string) (ratgenapi.CrossRequest, *bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ratgenapi.CrossRequest{}, nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return ratgenapi.CrossRequest{}, nil, fmt.Errorf("%s: %w", path, err)
	}

	var req ratgenapi.CrossRequest
	if v, ok := asString(raw["sire"]); ok {
		req.Sire = v
	}
	if v, ok := asString(raw["dam"]); ok {
		req.Dam = v
	}
	if v, ok := asInt(raw["litter"]); ok {
		req.LitterSize = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = &v
	}
	var plot *bool
	if v, ok := asBool(raw["plot"]); ok {
		plot = &v
	}
	return req, plot, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	f, ok := asFloat64(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func asInt64(v any) (int64, bool) {
	f, ok := asFloat64(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}
