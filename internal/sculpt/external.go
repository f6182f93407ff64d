package sculpt

import (
	"github.com/Faultbox/polysculpt/internal/scene"
	"github.com/Faultbox/polysculpt/pkg/math"
)

// RefreshScope selects which derived channels an external modeler recomputes
// when it rebuilds its mesh.
type RefreshScope uint8

const (
	RefreshColors RefreshScope = 1 << iota
	RefreshNormals
	RefreshTangents
	RefreshUV
	RefreshCollisions

	// RefreshAll recomputes every derived channel.
	RefreshAll = RefreshColors | RefreshNormals | RefreshTangents | RefreshUV | RefreshCollisions
)

// ExternalModeler adapts an external polygon-modeling plugin that owns the
// authoritative representation of some nodes' meshes. Implementations are
// optional; when the plugin is not installed, NullModeler stands in.
type ExternalModeler interface {
	// Owns reports whether the plugin manages the node's mesh.
	Owns(n *scene.Node) bool
	// RebuildMesh regenerates the plugin's derived render mesh. With optimize
	// false the plugin must keep a stable vertex ordering.
	RebuildMesh(n *scene.Node, scope RefreshScope, optimize bool)
	// VertexCount returns the plugin's live vertex count for the node.
	VertexCount(n *scene.Node) int
	// SetPositions pushes vertex positions into the plugin's vertex records.
	SetPositions(n *scene.Node, positions []math.Vec3)
	// SetTangents pushes vertex tangents into the plugin's vertex records.
	SetTangents(n *scene.Node, tangents []math.Vec4)
	// SetColors pushes vertex colors into the plugin's vertex records.
	SetColors(n *scene.Node, colors []math.Color32)
	// SetUVs pushes one texture coordinate channel (0-3).
	SetUVs(n *scene.Node, channel int, uvs []math.Vec2)
}

// NullModeler is the "plugin not installed" variant: it owns nothing and all
// writes are discarded.
type NullModeler struct{}

func (NullModeler) Owns(n *scene.Node) bool                                 { return false }
func (NullModeler) RebuildMesh(n *scene.Node, scope RefreshScope, opt bool) {}
func (NullModeler) VertexCount(n *scene.Node) int                           { return 0 }
func (NullModeler) SetPositions(n *scene.Node, positions []math.Vec3)       {}
func (NullModeler) SetTangents(n *scene.Node, tangents []math.Vec4)         {}
func (NullModeler) SetColors(n *scene.Node, colors []math.Color32)          {}
func (NullModeler) SetUVs(n *scene.Node, channel int, uvs []math.Vec2)      {}
