package scene

import (
	"github.com/jinzhu/copier"

	"github.com/Faultbox/polysculpt/pkg/math"
)

// MaxUVChannels is the number of texture coordinate channels a mesh carries.
const MaxUVChannels = 4

// SubMesh is an index buffer with its own material slot. Triangles only.
type SubMesh struct {
	Indices []uint32
}

// Mesh is channel-wise polygon geometry. Channels other than Positions may be
// empty; when present their length matches VertexCount.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	Normals   []math.Vec3
	Colors    []math.Color32
	Tangents  []math.Vec4
	UV        [MaxUVChannels][]math.Vec2
	SubMeshes []SubMesh
	Bounds    math.Bounds

	destroyed bool
}

// NewMesh creates an empty named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Positions)
}

// Alive reports whether the mesh has not been destroyed.
func (m *Mesh) Alive() bool {
	return m != nil && !m.destroyed
}

// Destroy releases the mesh's channel data. Idempotent; a destroyed mesh
// reports Alive() == false and VertexCount() == 0.
func (m *Mesh) Destroy() {
	if m == nil || m.destroyed {
		return
	}
	m.destroyed = true
	m.Positions = nil
	m.Normals = nil
	m.Colors = nil
	m.Tangents = nil
	for i := range m.UV {
		m.UV[i] = nil
	}
	m.SubMeshes = nil
}

// Clone returns a deep copy of the mesh. The copy is alive regardless of the
// receiver's state and shares no channel storage with it.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	dst := &Mesh{}
	if err := copier.CopyWithOption(dst, m, copier.Option{DeepCopy: true}); err != nil {
		// Reflection copy of plain slices cannot fail in practice; fall back
		// to an empty mesh with the same name rather than sharing storage.
		return NewMesh(m.Name)
	}
	// copier does not descend into array-of-slice fields or nested index
	// buffers; rebuild those channels so the clone owns its storage.
	for i := range m.UV {
		dst.UV[i] = append([]math.Vec2(nil), m.UV[i]...)
	}
	dst.SubMeshes = make([]SubMesh, len(m.SubMeshes))
	for i, sm := range m.SubMeshes {
		dst.SubMeshes[i] = SubMesh{Indices: append([]uint32(nil), sm.Indices...)}
	}
	dst.destroyed = false
	return dst
}

// RecalculateBounds recomputes the axis-aligned bounds from positions.
func (m *Mesh) RecalculateBounds() {
	m.Bounds = math.BoundsOf(m.Positions)
}

// Triangles returns the concatenated index buffers of all sub-meshes.
func (m *Mesh) Triangles() []uint32 {
	var total int
	for _, sm := range m.SubMeshes {
		total += len(sm.Indices)
	}
	out := make([]uint32, 0, total)
	for _, sm := range m.SubMeshes {
		out = append(out, sm.Indices...)
	}
	return out
}
