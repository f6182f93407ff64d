package sculpt

import "github.com/Faultbox/polysculpt/internal/scene"

// SourceKind classifies where a node's editable geometry lives, which in turn
// decides the commit and revert strategy.
type SourceKind int

const (
	// SourceSceneAsset is a plain mesh referenced from the host asset system.
	SourceSceneAsset SourceKind = iota
	// SourceVertexStreams stores edits in a renderer overlay stream.
	SourceVertexStreams
	// SourceExternal is geometry owned by an external modeling plugin.
	SourceExternal
)

func (k SourceKind) String() string {
	switch k {
	case SourceSceneAsset:
		return "scene-asset"
	case SourceVertexStreams:
		return "vertex-streams"
	case SourceExternal:
		return "external"
	default:
		return "unknown"
	}
}

// MeshSource is the provenance of a node's editable geometry. ContentID is
// set only for registered scene assets.
type MeshSource struct {
	Kind      SourceKind
	ContentID string
}

// ClassifySource determines the provenance of a mesh. Overlay-stream storage
// overrides everything else; external ownership comes next; otherwise the
// mesh is a scene asset, with a content identifier when the asset library
// knows it.
func ClassifySource(mesh *scene.Mesh, useStreams, external bool, assets scene.AssetLibrary) MeshSource {
	if useStreams {
		return MeshSource{Kind: SourceVertexStreams}
	}
	if external {
		return MeshSource{Kind: SourceExternal}
	}
	src := MeshSource{Kind: SourceSceneAsset}
	if assets != nil {
		if id, ok := assets.ContentID(mesh); ok {
			src.ContentID = id
		}
	}
	return src
}
