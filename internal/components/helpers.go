package components

import (
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func vecToSlice(v rl.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// readVec reads data[key] as [x, y, z], falling back when missing or malformed.
func readVec(data map[string]any, key string, fallback rl.Vector3) rl.Vector3 {
	if x, y, z, ok := engine.Vec3(data[key]); ok {
		return rl.Vector3{X: x, Y: y, Z: z}
	}
	return fallback
}

func readFloat(data map[string]any, key string, fallback float32) float32 {
	if v, ok := data[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
