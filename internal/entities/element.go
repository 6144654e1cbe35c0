// Package entities provides core data structures for rpg-battle.
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// ElementType is the elemental type of a creature or a skill
type ElementType int

// Element types. The order is the index into the effectiveness chart.
const (
	ElementNormal ElementType = iota
	ElementFire
	ElementWater
	ElementLeaf

	elementCount
)

var elementNames = [elementCount]string{
	ElementNormal: "normal",
	ElementFire:   "fire",
	ElementWater:  "water",
	ElementLeaf:   "leaf",
}

// ElementNames returns a fresh list of every element in chart order
func ElementNames() []string {
	names := make([]string, len(elementNames))
	copy(names, elementNames[:])
	return names
}

// NumElementTypes is the number of element types
const NumElementTypes = int(elementCount)

// String returns the lowercase element name
func (e ElementType) String() string {
	if !e.Valid() {
		return "unknown"
	}
	return elementNames[e]
}

// Valid reports whether e is one of the known elements
func (e ElementType) Valid() bool {
	return e >= ElementNormal && e < elementCount
}

// ParseElementType converts a name such as "fire" into an ElementType
func ParseElementType(name string) (ElementType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range elementNames {
		if candidate == n {
			return ElementType(i), nil
		}
	}
	return ElementNormal, errors.InvalidArgumentf("unknown element type: %q", name).
		WithMeta("allowed", strings.Join(elementNames[:], ","))
}

// MarshalText implements encoding.TextMarshaler
func (e ElementType) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, errors.InvalidArgumentf("unknown element type: %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *ElementType) UnmarshalText(text []byte) error {
	parsed, err := ParseElementType(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
