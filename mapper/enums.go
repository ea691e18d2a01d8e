package mapper

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"datamapper/internal/match"
)

type enumInfo struct {
	byName  map[string]any
	byValue map[any]string
}

// Enums holds the member names of enum-like types (named constants such as
// `type Color int` with Red, Green, ...).
type Enums struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*enumInfo
}

func NewEnums() *Enums {
	return &Enums{byType: make(map[reflect.Type]*enumInfo)}
}

// RegisterEnum registers the members of T by name. Registering T again adds
// to the known members.
func RegisterEnum[T comparable](e *Enums, members map[string]T) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := reflect.TypeFor[T]()
	info, ok := e.byType[t]
	if !ok {
		info = &enumInfo{byName: make(map[string]any), byValue: make(map[any]string)}
		e.byType[t] = info
	}

	for name, v := range members {
		info.byName[name] = v
		if _, taken := info.byValue[v]; !taken {
			info.byValue[v] = name
		}
	}
}

// IsEnum reports whether t has registered members.
func (e *Enums) IsEnum(t reflect.Type) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.byType[t]
	return ok
}

// Member returns the value of the member called name. Exact matches win
// over case-insensitive ones.
func (e *Enums) Member(t reflect.Type, name string) (any, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	info, ok := e.byType[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a registered enum", ErrUnknownEnumMember, typeName(t))
	}

	name = strings.TrimSpace(name)
	if v, ok := info.byName[name]; ok {
		return v, nil
	}

	for n, v := range info.byName {
		if strings.EqualFold(n, name) {
			return v, nil
		}
	}

	names := make([]string, 0, len(info.byName))
	for n := range info.byName {
		names = append(names, n)
	}
	sort.Strings(names)

	if hint, ok := match.Closest(name, names); ok {
		return nil, fmt.Errorf("%w: %q in %s, did you mean %q?", ErrUnknownEnumMember, name, typeName(t), hint)
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrUnknownEnumMember, name, typeName(t))
}

// Name returns the member name of v.
func (e *Enums) Name(v any) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	info, ok := e.byType[reflect.TypeOf(v)]
	if !ok {
		return "", false
	}

	name, ok := info.byValue[v]
	return name, ok
}

// Names returns the sorted member names of t.
func (e *Enums) Names(t reflect.Type) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	info, ok := e.byType[t]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(info.byName))
	for n := range info.byName {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
