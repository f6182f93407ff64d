package sculpt

import (
	"go.uber.org/zap"

	"github.com/Faultbox/polysculpt/internal/config"
	"github.com/Faultbox/polysculpt/internal/logger"
	"github.com/Faultbox/polysculpt/internal/scene"
)

// Deps bundles the host collaborators an edit session works against.
type Deps struct {
	Graph    *scene.Graph
	Undo     scene.UndoRecorder
	Assets   scene.AssetLibrary
	Modeler  ExternalModeler // nil means the plugin is not installed
	Settings config.SculptConfig
}

func (d Deps) modeler() ExternalModeler {
	if d.Modeler == nil {
		return NullModeler{}
	}
	return d.Modeler
}

func (d Deps) undo() scene.UndoRecorder {
	if d.Undo == nil {
		return scene.NopRecorder{}
	}
	return d.Undo
}

// EditableObject owns one node's edit session: the pristine original mesh,
// the per-node working mesh it renders from, and the composite edit buffer
// strokes write into. A session ends with Apply (keep edits) or Revert.
type EditableObject struct {
	deps Deps

	node         *scene.Node
	originalMesh *scene.Mesh
	graphicsMesh *scene.Mesh
	editMesh     *Buffer

	meshFilter *scene.MeshFilter
	skinned    *scene.SkinnedMeshRenderer
	renderer   *scene.MeshRenderer
	persist    *SculptMesh

	source             MeshSource
	usingVertexStreams bool
	externallyOwned    bool
	hadVertexStreams   bool

	modified bool
	dirty    bool
	reverted bool
}

// Create begins an edit session on a node. The node must carry a mesh filter
// or skinned mesh renderer, directly or on a descendant; the session attaches
// to the node that carries it. Returns nil when no usable mesh is found.
func Create(deps Deps, node *scene.Node) *EditableObject {
	if node == nil || !node.Alive() {
		return nil
	}

	target := meshBearingNode(node)
	if target == nil {
		logger.Debug("no mesh-bearing component in subtree", zap.String("node", node.Name()))
		return nil
	}

	e := &EditableObject{deps: deps, node: target}
	e.meshFilter, _ = scene.Component[*scene.MeshFilter](target)
	e.skinned, _ = scene.Component[*scene.SkinnedMeshRenderer](target)
	e.renderer, _ = scene.Component[*scene.MeshRenderer](target)

	e.originalMesh = e.resolveOriginal()

	e.externallyOwned = deps.modeler().Owns(target)
	if e.externallyOwned {
		// Regenerate without optimization so vertex ordering stays stable
		// for composite building.
		deps.modeler().RebuildMesh(target, RefreshAll, false)
		e.originalMesh = e.resolveOriginal()
	}

	if e.originalMesh == nil {
		logger.Debug("node has no mesh to edit", zap.String("node", target.Name()))
		return nil
	}

	persist, ok := scene.Component[*SculptMesh](target)
	if !ok {
		deps.undo().Record(target, "Add Sculpt Mesh")
		persist = &SculptMesh{}
		target.AddComponent(persist)
	}
	e.persist = persist

	if e.skinned != nil && e.skinned.SharedMesh != nil && deps.Assets != nil {
		if id, ok := deps.Assets.ContentID(e.skinned.SharedMesh); ok && persist.SkinnedSourceID != id {
			deps.undo().Record(persist, "Set Skinned Source")
			persist.SkinnedSourceID = id
		}
	}

	e.usingVertexStreams = deps.Settings.UseAdditionalVertexStreams
	e.hadVertexStreams = e.renderer != nil && e.renderer.AdditionalVertexStreams() != nil

	e.graphicsMesh = e.acquireWorkingMesh()

	deps.undo().Record(persist, "Assign Working Mesh")
	e.graphicsMesh.Name = GeneratedMeshName(target.ID())
	persist.SetMesh(e.graphicsMesh)
	e.attachRenderSource(e.graphicsMesh)

	e.source = ClassifySource(e.originalMesh, e.usingVertexStreams, e.externallyOwned, deps.Assets)
	e.editMesh = CompositeBuffer(e.originalMesh, e.graphicsMesh, e.usingVertexStreams)

	logger.Debug("edit session started",
		zap.Int64("node", target.ID()),
		zap.String("source", e.source.Kind.String()),
		zap.Int("vertices", e.editMesh.VertexCount()))
	return e
}

// meshBearingNode returns the first node in the subtree carrying a mesh
// filter or skinned mesh renderer, checking the node itself first.
func meshBearingNode(n *scene.Node) *scene.Node {
	if _, ok := scene.Component[*scene.MeshFilter](n); ok {
		return n
	}
	if _, ok := scene.Component[*scene.SkinnedMeshRenderer](n); ok {
		return n
	}
	for _, child := range n.Children() {
		if found := meshBearingNode(child); found != nil {
			return found
		}
	}
	return nil
}

// resolveOriginal reads the node's primary mesh slot, falling back to the
// skinned slot.
func (e *EditableObject) resolveOriginal() *scene.Mesh {
	if e.meshFilter != nil && e.meshFilter.SharedMesh != nil {
		return e.meshFilter.SharedMesh
	}
	if e.skinned != nil {
		return e.skinned.SharedMesh
	}
	return nil
}

// acquireWorkingMesh reuses the persistence component's stored mesh when it
// safely belongs to this node, deep-copies it when another live node claims
// it, and otherwise materializes a fresh copy of the original.
func (e *EditableObject) acquireWorkingMesh() *scene.Mesh {
	stored := e.persist.Mesh()
	if stored == nil {
		e.hadVertexStreams = false
		return e.originalMesh.Clone()
	}

	if id, ok := ParseGeneratedName(stored.Name); ok && id != e.node.ID() {
		if owner := e.deps.Graph.Find(id); owner != nil && owner != e.node {
			// Two nodes share one working mesh, usually after duplication.
			// Break the alias with a copy; renaming below claims it.
			logger.Warn("working mesh aliased by another node, copying",
				zap.Int64("node", e.node.ID()),
				zap.Int64("claimed_by", id))
			return stored.Clone()
		}
		// The encoded id points at nothing live; re-claim by renaming.
	}
	return stored
}

// attachRenderSource points the node's render path at the working mesh:
// overlay slot in stream mode, otherwise the primary or skinned mesh slot.
func (e *EditableObject) attachRenderSource(m *scene.Mesh) {
	switch {
	case e.usingVertexStreams:
		if e.renderer != nil {
			e.deps.undo().Record(e.renderer, "Assign Vertex Streams")
			e.renderer.SetAdditionalVertexStreams(m)
		}
	case e.meshFilter != nil:
		e.deps.undo().Record(e.meshFilter, "Assign Working Mesh")
		e.meshFilter.SharedMesh = m
	case e.skinned != nil:
		e.deps.undo().Record(e.skinned, "Assign Working Mesh")
		e.skinned.SharedMesh = m
	}
}

// Node returns the node this session edits.
func (e *EditableObject) Node() *scene.Node {
	return e.node
}

// OriginalMesh returns the pristine geometry as it existed before the
// session.
func (e *EditableObject) OriginalMesh() *scene.Mesh {
	return e.originalMesh
}

// GraphicsMesh returns the per-node working mesh this session owns.
func (e *EditableObject) GraphicsMesh() *scene.Mesh {
	return e.graphicsMesh
}

// EditMesh returns the composite edit buffer. Strokes mutate its channels
// directly and then call MarkModified.
func (e *EditableObject) EditMesh() *Buffer {
	return e.editMesh
}

// Source returns the classified provenance driving the commit strategy.
func (e *EditableObject) Source() MeshSource {
	return e.source
}

// UsingVertexStreams reports whether edits are stored in the renderer
// overlay slot.
func (e *EditableObject) UsingVertexStreams() bool {
	return e.usingVertexStreams
}

// ExternallyOwned reports whether an external modeling plugin owns the
// node's mesh.
func (e *EditableObject) ExternallyOwned() bool {
	return e.externallyOwned
}

// Modified reports whether any edit has been applied during this session.
func (e *EditableObject) Modified() bool {
	return e.modified
}

// Dirty reports whether the edit buffer holds uncommitted edits.
func (e *EditableObject) Dirty() bool {
	return e.dirty
}

// MarkModified flags the edit buffer as holding uncommitted edits. Edit
// operations call this after writing to the buffer's channels.
func (e *EditableObject) MarkModified() {
	e.dirty = true
}

// VisualMesh returns the geometry currently seen on screen. For skinned
// nodes this is a pose-resolved snapshot baked fresh on every call; callers
// needing stability across reads within one step must keep the returned
// value. For everything else it is the edit buffer itself.
func (e *EditableObject) VisualMesh() *Buffer {
	if e.skinned != nil {
		baked := scene.NewMesh(e.graphicsMesh.Name)
		e.skinned.Bake(baked)
		return BufferFromMesh(baked)
	}
	return e.editMesh
}

// IsValid reports whether the session can still be used: the node and
// working mesh must be alive and, for externally-owned meshes, the plugin's
// vertex count must not have drifted from the edit buffer's. An invalid
// session must be recreated, not reused.
func (e *EditableObject) IsValid() bool {
	if e == nil || !e.node.Alive() {
		return false
	}
	if !e.graphicsMesh.Alive() {
		return false
	}
	if e.externallyOwned {
		if e.editMesh.VertexCount() != e.deps.modeler().VertexCount(e.node) {
			return false
		}
	}
	return true
}

// Apply commits the edit buffer onto the rendered representations.
// rebuildTopology is meaningful only for externally-owned meshes; optimize
// additionally gates collider rebuild and the heavier channel sync.
func (e *EditableObject) Apply(rebuildTopology, optimize bool) {
	if e == nil || e.graphicsMesh == nil {
		return
	}

	if e.usingVertexStreams {
		e.applyVertexStreams(optimize)
		return
	}

	if e.externallyOwned {
		e.pushToModeler(rebuildTopology, optimize)
	}

	if e.deps.Settings.RebuildNormals {
		e.editMesh.RecalculateNormals()
	}
	e.editMesh.ApplyTo(e.graphicsMesh)
	e.graphicsMesh.RecalculateBounds()
	if e.renderer != nil {
		e.deps.undo().Record(e.renderer, "Apply Sculpt")
		e.renderer.MarkDirty()
	}
	if optimize && e.deps.Settings.RebuildCollider {
		e.rebuildCollider()
	}
	e.deps.undo().Record(e.persist, "Apply Sculpt")
	e.persist.SetMesh(e.graphicsMesh)
	e.persist.markApplied()
	e.finishApply()
}

// applyVertexStreams commits through the renderer overlay slot. Bounds are
// not recalculated: the overlay shares bounds with the base mesh.
func (e *EditableObject) applyVertexStreams(optimize bool) {
	if e.deps.Settings.RebuildNormals {
		e.editMesh.RecalculateNormals()
	}
	e.editMesh.ApplyTo(e.graphicsMesh)
	if e.renderer != nil {
		e.deps.undo().Record(e.renderer, "Apply Vertex Streams")
		e.renderer.SetAdditionalVertexStreams(e.graphicsMesh)
		e.renderer.MarkDirty()
	}
	if optimize && e.deps.Settings.RebuildCollider {
		e.rebuildCollider()
	}
	e.deps.undo().Record(e.persist, "Apply Vertex Streams")
	e.persist.SetMesh(e.graphicsMesh)
	e.persist.markApplied()
	e.finishApply()
}

// pushToModeler syncs the edit buffer into the external plugin's vertex
// records before the regular mesh apply runs.
func (e *EditableObject) pushToModeler(rebuildTopology, optimize bool) {
	mod := e.deps.modeler()
	mod.SetPositions(e.node, e.editMesh.Positions)
	if optimize {
		mod.SetTangents(e.node, e.editMesh.Tangents)
		if len(e.editMesh.Colors) == e.editMesh.VertexCount() {
			mod.SetColors(e.node, e.editMesh.Colors)
		}
		mod.SetUVs(e.node, 2, e.editMesh.UV[2])
		mod.SetUVs(e.node, 3, e.editMesh.UV[3])
	}
	if rebuildTopology {
		scope := RefreshColors | RefreshNormals | RefreshTangents
		if optimize {
			scope = RefreshAll
		}
		mod.RebuildMesh(e.node, scope, optimize)
	}
}

func (e *EditableObject) finishApply() {
	e.modified = true
	e.dirty = false
}

// rebuildCollider reassigns the mesh collider so the host regenerates its
// collision data. Nodes without a collider are skipped.
func (e *EditableObject) rebuildCollider() {
	col, ok := scene.Component[*scene.MeshCollider](e.node)
	if !ok {
		return
	}
	e.deps.undo().Record(col, "Rebuild Collider")
	col.SetMesh(e.graphicsMesh)
}

// Revert ends the session and restores the node to its pre-session state
// where that is safe. Calling Revert again afterwards is a no-op.
func (e *EditableObject) Revert() {
	if e == nil || e.node == nil || e.reverted {
		return
	}
	e.reverted = true

	if e.externallyOwned {
		// The plugin keeps its own authoritative state; flush pending edits
		// into it before relinquishing control.
		e.Apply(true, true)
	}

	if e.persist != nil && !e.persist.HasAppliedChanges() {
		e.deps.undo().Record(e.node, "Remove Sculpt Mesh")
		e.node.RemoveComponent(e.persist)
		e.persist = nil
	}

	if e.usingVertexStreams {
		if !e.hadVertexStreams {
			e.graphicsMesh.Destroy()
			if e.renderer != nil {
				e.deps.undo().Record(e.renderer, "Clear Vertex Streams")
				e.renderer.SetAdditionalVertexStreams(nil)
				e.renderer.MarkDirty()
			}
		}
		return
	}

	if e.externallyOwned {
		return
	}

	if e.originalMesh == nil {
		return
	}
	if e.deps.Assets != nil && !e.deps.Assets.Contains(e.originalMesh) &&
		!scene.IsBuiltinPrimitive(e.originalMesh.Name) {
		// Scene-embedded geometry with no recoverable source; reassigning or
		// destroying here could lose the only copy.
		return
	}

	if e.graphicsMesh != e.originalMesh {
		e.graphicsMesh.Destroy()
	}
	switch {
	case e.meshFilter != nil:
		e.deps.undo().Record(e.meshFilter, "Restore Original Mesh")
		e.meshFilter.SharedMesh = e.originalMesh
	case e.skinned != nil:
		e.deps.undo().Record(e.skinned, "Restore Original Mesh")
		e.skinned.SharedMesh = e.originalMesh
	}
	if e.persist != nil {
		e.deps.undo().Record(e.persist, "Restore Original Mesh")
		e.persist.SetMesh(e.originalMesh)
	}
}
