// Package main is a headless demonstration of the sculpting core: it builds a
// small scene, runs an edit session against a cube, and prints what happened.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/polysculpt/internal/config"
	"github.com/Faultbox/polysculpt/internal/logger"
	"github.com/Faultbox/polysculpt/internal/scene"
	"github.com/Faultbox/polysculpt/internal/sculpt"
	"github.com/Faultbox/polysculpt/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Polysculpt Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	graph := scene.NewGraph()
	undo := &scene.MemoryRecorder{}
	assets := scene.NewMemoryAssets()

	cube := scene.NewCube("Cube", 1)
	assets.Register(cube)

	node := graph.NewNode("sculpted cube")
	node.AddComponent(&scene.MeshFilter{SharedMesh: cube})
	node.AddComponent(&scene.MeshRenderer{})
	node.AddComponent(&scene.MeshCollider{})

	guard := sculpt.NewDuplicationGuard(graph, func() []*scene.Node {
		return []*scene.Node{node}
	})
	guard.Install()

	deps := sculpt.Deps{
		Graph:    graph,
		Undo:     undo,
		Assets:   assets,
		Settings: cfg.Sculpt,
	}

	session := sculpt.Create(deps, node)
	if session == nil {
		logger.Error("failed to start edit session", zap.String("node", node.Name()))
		os.Exit(1)
	}

	// A crude inflate stroke: push every vertex out along its normal.
	buf := session.EditMesh()
	for i := range buf.Positions {
		buf.Positions[i] = buf.Positions[i].Add(buf.Normals[i].Scale(0.1))
	}
	session.MarkModified()
	session.Apply(false, true)

	if !session.IsValid() {
		logger.Error("session became invalid after apply")
		os.Exit(1)
	}

	gm := session.GraphicsMesh()
	logger.Info("sculpt applied",
		zap.String("mesh", gm.Name),
		zap.Int("vertices", gm.VertexCount()),
		zap.Float32("extent", gm.Bounds.Size().X),
		zap.Int("undo_records", len(undo.Records)))

	for _, action := range undo.Actions() {
		logger.Sugar.Debugf("undo: %s", action)
	}

	// Same geometry under an animated pose: edits address the bind pose, the
	// on-screen snapshot resolves the pose per read.
	skinMesh := scene.NewCube("Cube", 1)
	assets.Register(skinMesh)
	skinNode := graph.NewNode("skinned cube")
	smr := scene.NewSkinnedMeshRenderer(skinMesh)
	smr.SetPose(math.QuatFromAxisAngle(math.Vec3{X: 0, Y: 1, Z: 0}, 0.785), math.Vec3{X: 0, Y: 1, Z: 0})
	skinNode.AddComponent(smr)

	if skin := sculpt.Create(deps, skinNode); skin != nil {
		snapshot := skin.VisualMesh()
		logger.Info("skinned snapshot",
			zap.Int("vertices", snapshot.VertexCount()),
			zap.Float32("posed_y", snapshot.Positions[0].Y))
		skin.Revert()
	}

	logger.Info("demo finished")
}
