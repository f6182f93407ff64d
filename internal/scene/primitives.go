package scene

import "github.com/Faultbox/polysculpt/pkg/math"

// NewCube builds a unit-sized cube mesh with 4 vertices per face so each face
// keeps hard normals. Channels populated: positions, normals, colors, UV0.
func NewCube(name string, size float32) *Mesh {
	h := size * 0.5

	type face struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}
	faces := []face{
		{math.Vec3{X: 0, Y: 0, Z: 1}, [4]math.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},
		{math.Vec3{X: 0, Y: 0, Z: -1}, [4]math.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}},
		{math.Vec3{X: -1, Y: 0, Z: 0}, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}},
		{math.Vec3{X: 1, Y: 0, Z: 0}, [4]math.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},
		{math.Vec3{X: 0, Y: -1, Z: 0}, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}},
		{math.Vec3{X: 0, Y: 1, Z: 0}, [4]math.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},
	}

	m := NewMesh(name)
	uv := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	indices := make([]uint32, 0, len(faces)*6)
	for fi, f := range faces {
		base := uint32(fi * 4)
		for ci, c := range f.corners {
			m.Positions = append(m.Positions, c)
			m.Normals = append(m.Normals, f.normal)
			m.Colors = append(m.Colors, math.White)
			m.UV[0] = append(m.UV[0], uv[ci])
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	m.SubMeshes = []SubMesh{{Indices: indices}}
	m.RecalculateBounds()
	return m
}

// NewQuad builds a single two-triangle quad in the XY plane.
func NewQuad(name string, size float32) *Mesh {
	h := size * 0.5
	m := NewMesh(name)
	m.Positions = []math.Vec3{{X: -h, Y: -h, Z: 0}, {X: h, Y: -h, Z: 0}, {X: h, Y: h, Z: 0}, {X: -h, Y: h, Z: 0}}
	n := math.Vec3{X: 0, Y: 0, Z: 1}
	m.Normals = []math.Vec3{n, n, n, n}
	m.Colors = []math.Color32{math.White, math.White, math.White, math.White}
	m.UV[0] = []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	m.SubMeshes = []SubMesh{{Indices: []uint32{0, 1, 2, 0, 2, 3}}}
	m.RecalculateBounds()
	return m
}
