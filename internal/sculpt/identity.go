// Package sculpt implements non-destructive mesh editing: it keeps a node's
// original geometry intact, materializes a working mesh named after the node,
// merges overlay and original channel data into an edit buffer, and commits or
// reverts edits across the rendered representations.
package sculpt

import (
	"strconv"
	"strings"
)

// MeshNamePrefix marks meshes generated by an edit session. The owning node's
// stable identifier is appended in decimal, so the name alone identifies the
// node a working mesh belongs to.
const MeshNamePrefix = "PolysculptMesh_"

// GeneratedMeshName returns the reserved working-mesh name for a node id.
func GeneratedMeshName(id int64) string {
	return MeshNamePrefix + strconv.FormatInt(id, 10)
}

// ParseGeneratedName extracts the node id encoded in a generated mesh name.
// Returns ok == false for names without the prefix or with an unparsable id;
// callers must not treat any id value as a "missing" sentinel.
func ParseGeneratedName(name string) (int64, bool) {
	rest, found := strings.CutPrefix(name, MeshNamePrefix)
	if !found || rest == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
