package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum of a perspective camera.
// Uses the Gribb/Hartmann method for plane extraction
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	vp := rl.MatrixMultiply(view, proj)

	// Rows of the combined matrix
	row := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	plane := func(axis int, sign float32) Plane {
		return normalizePlane(Plane{
			normal: rl.Vector3{
				X: row[3][0] + sign*row[axis][0],
				Y: row[3][1] + sign*row[axis][1],
				Z: row[3][2] + sign*row[axis][2],
			},
			distance: row[3][3] + sign*row[axis][3],
		})
	}

	var f Frustum
	f.planes[0] = plane(0, 1)  // left
	f.planes[1] = plane(0, -1) // right
	f.planes[2] = plane(1, 1)  // bottom
	f.planes[3] = plane(1, -1) // top
	f.planes[4] = plane(2, 1)  // near
	f.planes[5] = plane(2, -1) // far
	return f
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
