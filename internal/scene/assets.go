package scene

import "github.com/google/uuid"

// AssetLibrary answers provenance questions about meshes: whether a mesh is a
// registered asset and what its stable content identifier is.
type AssetLibrary interface {
	// ContentID returns the stable content identifier of a registered mesh.
	ContentID(m *Mesh) (string, bool)
	// Contains reports whether the mesh is a registered asset.
	Contains(m *Mesh) bool
}

// MemoryAssets is an in-memory AssetLibrary.
type MemoryAssets struct {
	ids map[*Mesh]string
}

// NewMemoryAssets creates an empty asset library.
func NewMemoryAssets() *MemoryAssets {
	return &MemoryAssets{ids: make(map[*Mesh]string)}
}

// Register adds the mesh to the library and returns its content identifier.
// Registering an already-registered mesh returns the existing identifier.
func (a *MemoryAssets) Register(m *Mesh) string {
	if id, ok := a.ids[m]; ok {
		return id
	}
	id := uuid.NewString()
	a.ids[m] = id
	return id
}

// ContentID implements AssetLibrary.
func (a *MemoryAssets) ContentID(m *Mesh) (string, bool) {
	id, ok := a.ids[m]
	return id, ok
}

// Contains implements AssetLibrary.
func (a *MemoryAssets) Contains(m *Mesh) bool {
	_, ok := a.ids[m]
	return ok
}

// builtinPrimitives are the host's stock primitive mesh names. Meshes carrying
// one of these names can always be re-resolved by the host, so reassigning
// them during a revert is safe.
var builtinPrimitives = map[string]struct{}{
	"Cube":     {},
	"Sphere":   {},
	"Capsule":  {},
	"Cylinder": {},
	"Plane":    {},
	"Quad":     {},
}

// IsBuiltinPrimitive reports whether name is one of the host's stock
// primitive mesh names.
func IsBuiltinPrimitive(name string) bool {
	_, ok := builtinPrimitives[name]
	return ok
}
