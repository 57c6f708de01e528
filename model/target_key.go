package model

import (
	"fmt"
	"strings"
)

// TargetKey names the scope an event or modifier applies to:
// "world", "region:<code>", "airport:<id>", "route:<id>" or "airline:<id>".
// Two keys match only when they are equal strings.
type TargetKey string

// ScopeKind ...
type ScopeKind string

const (
	// ScopeWorld ...
	ScopeWorld ScopeKind = "world"

	// ScopeRegion ...
	ScopeRegion ScopeKind = "region"

	// ScopeAirport ...
	ScopeAirport ScopeKind = "airport"

	// ScopeRoute ...
	ScopeRoute ScopeKind = "route"

	// ScopeAirline ...
	ScopeAirline ScopeKind = "airline"
)

// TargetWorld is the key of the whole world
const TargetWorld TargetKey = "world"

// RegionTarget ...
func RegionTarget(code string) TargetKey {
	return newScopedTarget(ScopeRegion, code)
}

// AirportTarget ...
func AirportTarget(id string) TargetKey {
	return newScopedTarget(ScopeAirport, id)
}

// RouteTarget ...
func RouteTarget(id string) TargetKey {
	return newScopedTarget(ScopeRoute, id)
}

// AirlineTarget ...
func AirlineTarget(id string) TargetKey {
	return newScopedTarget(ScopeAirline, id)
}

func newScopedTarget(kind ScopeKind, id string) TargetKey {
	return TargetKey(string(kind) + ":" + id)
}

// Kind returns the scope kind, empty for malformed keys.
// An id is non-empty and has no colon or whitespace.
func (k TargetKey) Kind() ScopeKind {
	if k == TargetWorld {
		return ScopeWorld
	}
	kind, id, ok := strings.Cut(string(k), ":")
	if !ok || id == "" || strings.ContainsAny(id, ": \t\r\n") {
		return ""
	}
	switch ScopeKind(kind) {
	case ScopeRegion, ScopeAirport, ScopeRoute, ScopeAirline:
		return ScopeKind(kind)
	default:
		return ""
	}
}

// ID returns the part after the scope prefix, empty for world
func (k TargetKey) ID() string {
	_, id, _ := strings.Cut(string(k), ":")
	return id
}

// Valid ...
func (k TargetKey) Valid() bool {
	return k.Kind() != ""
}

// ParseTargetKey ...
func ParseTargetKey(s string) (TargetKey, error) {
	k := TargetKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("invalid target key %q", s)
	}
	return k, nil
}
