package engine

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Serializable is implemented by built-in components that can be saved to
// and loaded from scene files.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

var componentRegistry = map[string]func() Serializable{}

// RegisterComponent makes a built-in component constructible by type name.
func RegisterComponent(typeName string, factory func() Serializable) {
	if _, exists := componentRegistry[typeName]; exists {
		panic(fmt.Sprintf("component %q already registered", typeName))
	}
	componentRegistry[typeName] = factory
}

// CreateComponent builds a registered component and applies data to it.
// Returns false if typeName is unknown.
func CreateComponent(typeName string, data map[string]any) (Serializable, bool) {
	factory, ok := componentRegistry[typeName]
	if !ok {
		return nil, false
	}
	c := factory()
	c.Deserialize(data)
	return c, true
}

// RegisteredComponents returns the sorted built-in component type names.
func RegisteredComponents() []string {
	names := lo.Keys(componentRegistry)
	slices.Sort(names)
	return names
}

// Vec3 reads a [x, y, z] JSON array into its components.
func Vec3(v any) (x, y, z float32, ok bool) {
	arr, isArr := v.([]any)
	if !isArr || len(arr) != 3 {
		return 0, 0, 0, false
	}
	var out [3]float32
	for i, e := range arr {
		f, isNum := e.(float64)
		if !isNum {
			return 0, 0, 0, false
		}
		out[i] = float32(f)
	}
	return out[0], out[1], out[2], true
}
