package physics

import (
	"math"

	"grapple3d/internal/components"
	"grapple3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest non-trigger collider hit along the ray.
// direction does not need to be normalized.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	if maxDistance <= 0 || rl.Vector3Length(direction) == 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range p.Collidables() {
		if !obj.Active {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
			if result, ok := RayAABB(origin, direction, bounds, maxDistance, p.HitFromInside); ok && result.Distance < closest.Distance {
				closest = result
				closest.GameObject = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if result, ok := RaySphere(origin, direction, sphere.GetCenter(), sphere.Radius, maxDistance, p.HitFromInside); ok && result.Distance < closest.Distance {
				closest = result
				closest.GameObject = obj
				hit = true
			}
		}
	}

	return closest, hit
}

// RayAABB intersects a ray with a box using the slab method.
// direction must be normalized. When fromInside is false a ray starting inside
// the box does not hit it.
func RayAABB(origin, direction rl.Vector3, box AABB, maxDistance float32, fromInside bool) (engine.RaycastResult, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, box.Min.X, box.Max.X) ||
		!slab(origin.Y, direction.Y, box.Min.Y, box.Max.Y) ||
		!slab(origin.Z, direction.Z, box.Min.Z, box.Max.Z) {
		return engine.RaycastResult{}, false
	}
	if tmax < 0 {
		return engine.RaycastResult{}, false
	}

	t := tmin
	if t < 0 {
		if !fromInside {
			return engine.RaycastResult{}, false
		}
		t = tmax
	}
	if t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from the face the point lies on
	var normal rl.Vector3
	const epsilon = 0.001
	switch {
	case abs(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

// RaySphere intersects a ray with a sphere. direction must be normalized.
func RaySphere(origin, direction, center rl.Vector3, radius, maxDistance float32, fromInside bool) (engine.RaycastResult, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}
	sq := float32(math.Sqrt(float64(discriminant)))

	t := -b - sq
	if t < 0 {
		if !fromInside {
			return engine.RaycastResult{}, false
		}
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}
