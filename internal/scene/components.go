package scene

import "github.com/Faultbox/polysculpt/pkg/math"

// MeshFilter holds the mesh rendered for a node.
type MeshFilter struct {
	SharedMesh *Mesh
}

// MeshRenderer renders a node's mesh and optionally layers an additional
// vertex stream mesh on top of it without touching the base asset.
type MeshRenderer struct {
	streams *Mesh
	dirty   bool
	uploads int
}

// AdditionalVertexStreams returns the overlay mesh, or nil when none is set.
func (r *MeshRenderer) AdditionalVertexStreams() *Mesh {
	return r.streams
}

// SetAdditionalVertexStreams assigns or clears the overlay mesh.
func (r *MeshRenderer) SetAdditionalVertexStreams(m *Mesh) {
	r.streams = m
}

// MarkDirty flags the renderer for re-upload on the next frame.
func (r *MeshRenderer) MarkDirty() {
	r.dirty = true
	r.uploads++
}

// Dirty reports whether the renderer needs a re-upload.
func (r *MeshRenderer) Dirty() bool {
	return r.dirty
}

// ClearDirty resets the dirty flag after an upload.
func (r *MeshRenderer) ClearDirty() {
	r.dirty = false
}

// Uploads returns how many times the renderer has been flagged for upload.
func (r *MeshRenderer) Uploads() int {
	return r.uploads
}

// SkinnedMeshRenderer renders a mesh deformed by an animation pose.
type SkinnedMeshRenderer struct {
	SharedMesh *Mesh
	// Pose is the current pose transform applied when baking a snapshot.
	Pose math.Mat4
}

// NewSkinnedMeshRenderer creates a skinned renderer at the bind pose.
func NewSkinnedMeshRenderer(m *Mesh) *SkinnedMeshRenderer {
	return &SkinnedMeshRenderer{
		SharedMesh: m,
		Pose:       math.Identity(),
	}
}

// SetPose places the renderer at the given rotation and position.
func (s *SkinnedMeshRenderer) SetPose(rotation math.Quat, position math.Vec3) {
	s.Pose = math.Translate(position.X, position.Y, position.Z).Mul(rotation.ToMat4())
}

// Bake writes a pose-resolved snapshot of the shared mesh into dst. Positions
// are transformed by the pose, normals by its rotation part. Called once per
// read; the result is not cached.
func (s *SkinnedMeshRenderer) Bake(dst *Mesh) {
	src := s.SharedMesh
	if src == nil || dst == nil {
		return
	}
	dst.Positions = make([]math.Vec3, len(src.Positions))
	for i, p := range src.Positions {
		dst.Positions[i] = s.Pose.TransformPoint(p)
	}
	dst.Normals = make([]math.Vec3, len(src.Normals))
	for i, n := range src.Normals {
		dst.Normals[i] = s.Pose.TransformDirection(n).Normalize()
	}
	dst.Colors = append([]math.Color32(nil), src.Colors...)
	dst.Tangents = append([]math.Vec4(nil), src.Tangents...)
	for i := range src.UV {
		dst.UV[i] = append([]math.Vec2(nil), src.UV[i]...)
	}
	dst.SubMeshes = make([]SubMesh, len(src.SubMeshes))
	for i, sm := range src.SubMeshes {
		dst.SubMeshes[i] = SubMesh{Indices: append([]uint32(nil), sm.Indices...)}
	}
	dst.RecalculateBounds()
}

// MeshCollider approximates a node's collision shape with a mesh.
type MeshCollider struct {
	mesh     *Mesh
	rebuilds int
}

// SharedMesh returns the collision mesh.
func (c *MeshCollider) SharedMesh() *Mesh {
	return c.mesh
}

// SetMesh assigns the collision mesh and counts the rebuild, mirroring the
// host trick of clearing and reassigning to force collision data regeneration.
func (c *MeshCollider) SetMesh(m *Mesh) {
	c.mesh = nil
	c.mesh = m
	c.rebuilds++
}

// Rebuilds returns how many times the collision mesh has been regenerated.
func (c *MeshCollider) Rebuilds() int {
	return c.rebuilds
}
