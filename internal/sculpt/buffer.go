package sculpt

import (
	"github.com/Faultbox/polysculpt/internal/scene"
	"github.com/Faultbox/polysculpt/pkg/math"
)

// Buffer is the composite edit buffer: a working copy of every geometry
// channel, merged from the original mesh and an optional overlay. Edits are
// made directly to its channel slices and pushed back with ApplyTo.
type Buffer struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Colors    []math.Color32
	Tangents  []math.Vec4
	UV        [scene.MaxUVChannels][]math.Vec2
	SubMeshes []scene.SubMesh
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Positions)
}

// BufferFromMesh copies every channel of the mesh into a new buffer.
func BufferFromMesh(m *scene.Mesh) *Buffer {
	return CompositeBuffer(m, nil, false)
}

// CompositeBuffer merges original and overlay channel data into a buffer.
// A channel is read from the overlay only when overlay mode is on and that
// channel's length on the overlay matches the original's vertex count; hosts
// may leave unused overlay channels empty, so each channel falls back to the
// original independently. Topology is always the original's; overlays never
// alter it.
func CompositeBuffer(original, overlay *scene.Mesh, useOverlay bool) *Buffer {
	want := original.VertexCount()
	if !useOverlay || overlay == nil {
		overlay = &scene.Mesh{}
	}

	b := &Buffer{
		Positions: pickChannel(overlay.Positions, original.Positions, want),
		Normals:   pickChannel(overlay.Normals, original.Normals, want),
		Colors:    pickChannel(overlay.Colors, original.Colors, want),
		Tangents:  pickChannel(overlay.Tangents, original.Tangents, want),
	}
	for i := 0; i < scene.MaxUVChannels; i++ {
		b.UV[i] = pickChannel(overlay.UV[i], original.UV[i], want)
	}

	b.SubMeshes = make([]scene.SubMesh, len(original.SubMeshes))
	for i, sm := range original.SubMeshes {
		b.SubMeshes[i] = scene.SubMesh{Indices: append([]uint32(nil), sm.Indices...)}
	}
	return b
}

// pickChannel copies the overlay channel when its length matches the expected
// vertex count, otherwise the fallback. The returned slice is always owned by
// the buffer.
func pickChannel[T any](overlay, fallback []T, want int) []T {
	src := fallback
	if want > 0 && len(overlay) == want {
		src = overlay
	}
	if len(src) == 0 {
		return nil
	}
	return append([]T(nil), src...)
}

// ApplyTo pushes every buffer channel and the topology onto the mesh. Bounds
// are left untouched; callers decide whether to recalculate them.
func (b *Buffer) ApplyTo(m *scene.Mesh) {
	m.Positions = append([]math.Vec3(nil), b.Positions...)
	m.Normals = append([]math.Vec3(nil), b.Normals...)
	m.Colors = append([]math.Color32(nil), b.Colors...)
	m.Tangents = append([]math.Vec4(nil), b.Tangents...)
	for i := range b.UV {
		m.UV[i] = append([]math.Vec2(nil), b.UV[i]...)
	}
	m.SubMeshes = make([]scene.SubMesh, len(b.SubMeshes))
	for i, sm := range b.SubMeshes {
		m.SubMeshes[i] = scene.SubMesh{Indices: append([]uint32(nil), sm.Indices...)}
	}
}

// RecalculateNormals rebuilds vertex normals from the triangle topology: face
// normals are accumulated per vertex, normalized, then averaged across
// vertices sharing a position so seams between sub-meshes stay smooth.
func (b *Buffer) RecalculateNormals() {
	n := b.VertexCount()
	if n == 0 {
		return
	}
	normals := make([]math.Vec3, n)

	for _, sm := range b.SubMeshes {
		idx := sm.Indices
		for i := 0; i+2 < len(idx); i += 3 {
			i0, i1, i2 := idx[i], idx[i+1], idx[i+2]
			if int(i0) >= n || int(i1) >= n || int(i2) >= n {
				continue
			}
			e1 := b.Positions[i1].Sub(b.Positions[i0])
			e2 := b.Positions[i2].Sub(b.Positions[i0])
			face := e1.Cross(e2)
			if face.Length() < 1e-7 {
				continue
			}
			normals[i0] = normals[i0].Add(face)
			normals[i1] = normals[i1].Add(face)
			normals[i2] = normals[i2].Add(face)
		}
	}

	for i := range normals {
		normals[i] = normals[i].Normalize()
	}

	smoothNormals(b.Positions, normals)
	b.Normals = normals
}

// smoothNormals averages normals at shared vertex positions, grouping by
// quantized position for O(n) lookup.
func smoothNormals(positions []math.Vec3, normals []math.Vec3) {
	const epsilon float32 = 0.001

	posMap := make(map[[3]int32][]int, len(positions))
	for i, p := range positions {
		key := [3]int32{
			int32(p.X / epsilon),
			int32(p.Y / epsilon),
			int32(p.Z / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, idxs := range posMap {
		if len(idxs) < 2 {
			continue
		}
		var sum math.Vec3
		for _, idx := range idxs {
			sum = sum.Add(normals[idx])
		}
		avg := sum.Normalize()
		if avg.Length() == 0 {
			continue
		}
		for _, idx := range idxs {
			normals[idx] = avg
		}
	}
}
