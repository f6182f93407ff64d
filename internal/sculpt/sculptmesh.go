package sculpt

import "github.com/Faultbox/polysculpt/internal/scene"

// SculptMesh is the persistence component attached to an edited node. It
// carries the session's working mesh so edits survive host reloads and
// template instancing, and remembers whether any edit was ever committed.
type SculptMesh struct {
	stored  *scene.Mesh
	applied bool

	// SkinnedSourceID is the content identifier of the registered skin-mesh
	// asset backing the node, if any. Kept as an identifier rather than an
	// object link so the reference survives undo and serialization.
	SkinnedSourceID string
}

// Mesh returns the stored working mesh, or nil.
func (s *SculptMesh) Mesh() *scene.Mesh {
	if s == nil {
		return nil
	}
	return s.stored
}

// SetMesh stores the working mesh.
func (s *SculptMesh) SetMesh(m *scene.Mesh) {
	s.stored = m
}

// HasAppliedChanges reports whether any edit has been committed through this
// component. A component with no applied changes is removed on revert.
func (s *SculptMesh) HasAppliedChanges() bool {
	return s != nil && s.applied
}

func (s *SculptMesh) markApplied() {
	s.applied = true
}
