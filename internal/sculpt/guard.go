package sculpt

import (
	"go.uber.org/zap"

	"github.com/Faultbox/polysculpt/internal/logger"
	"github.com/Faultbox/polysculpt/internal/scene"
)

// DuplicationGuard watches hierarchy changes and breaks accidental sharing of
// generated working meshes between nodes, which happens when the host
// duplicates a node or instantiates a template. Sharing is an expected
// transient condition and is resolved silently by copy-and-rename.
type DuplicationGuard struct {
	graph     *scene.Graph
	selection func() []*scene.Node
}

// NewDuplicationGuard creates a guard scanning the nodes returned by
// selection on every hierarchy change.
func NewDuplicationGuard(graph *scene.Graph, selection func() []*scene.Node) *DuplicationGuard {
	return &DuplicationGuard{graph: graph, selection: selection}
}

// Install subscribes the guard to the graph's hierarchy notifications.
func (g *DuplicationGuard) Install() {
	g.graph.OnHierarchyChanged(g.Scan)
}

// Scan checks every selected node for a working mesh whose encoded node id
// belongs to a different node. If that node is still live the mesh is
// aliased: it gets deep-copied, renamed to the scanned node's id, and
// reattached through whichever render path held it. If the encoded id points
// at nothing live, the name is silently re-claimed instead.
func (g *DuplicationGuard) Scan() {
	for _, n := range g.selection() {
		if !n.Alive() {
			continue
		}
		mesh, reattach := renderedMesh(n)
		if mesh == nil {
			continue
		}
		id, ok := ParseGeneratedName(mesh.Name)
		if !ok || id == n.ID() {
			continue
		}
		if owner := g.graph.Find(id); owner != nil && owner != n {
			dup := mesh.Clone()
			dup.Name = GeneratedMeshName(n.ID())
			reattach(dup)
			logger.Debug("deduplicated shared working mesh",
				zap.Int64("node", n.ID()),
				zap.Int64("owner", id))
		} else {
			mesh.Name = GeneratedMeshName(n.ID())
		}
	}
}

// renderedMesh finds the working mesh a node renders from and a function
// that reattaches a replacement through the same path. Checks the
// persistence component first, then the plain mesh slot, then the skin slot.
func renderedMesh(n *scene.Node) (*scene.Mesh, func(*scene.Mesh)) {
	if pm, ok := scene.Component[*SculptMesh](n); ok && pm.Mesh() != nil {
		old := pm.Mesh()
		return old, func(m *scene.Mesh) {
			pm.SetMesh(m)
			if mf, ok := scene.Component[*scene.MeshFilter](n); ok && mf.SharedMesh == old {
				mf.SharedMesh = m
			}
			if r, ok := scene.Component[*scene.MeshRenderer](n); ok && r.AdditionalVertexStreams() == old {
				r.SetAdditionalVertexStreams(m)
			}
			if smr, ok := scene.Component[*scene.SkinnedMeshRenderer](n); ok && smr.SharedMesh == old {
				smr.SharedMesh = m
			}
		}
	}
	if mf, ok := scene.Component[*scene.MeshFilter](n); ok && mf.SharedMesh != nil {
		return mf.SharedMesh, func(m *scene.Mesh) { mf.SharedMesh = m }
	}
	if smr, ok := scene.Component[*scene.SkinnedMeshRenderer](n); ok && smr.SharedMesh != nil {
		return smr.SharedMesh, func(m *scene.Mesh) { smr.SharedMesh = m }
	}
	return nil, nil
}
