package scene

import (
	"iter"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/retained"
)

// ScenePipeline is the retained representation of one sub-document's
// display content plus its layout metadata.
//
// Pipelines are shared by pointer between the scene, the frame builder,
// and diagnostics tooling, and are never mutated after installation: a
// resubmission installs a fresh ScenePipeline, so a reader holding an
// older pointer continues to see a consistent, never-torn snapshot.
type ScenePipeline struct {
	PipelineID      retained.PipelineID
	ViewportSize    retained.LayoutSize
	ContentSize     retained.LayoutSize
	BackgroundColor *retained.ColorF
	DisplayList     BuiltDisplayList
}

// ClearColor returns the pipeline background as a WebGPU clear color for
// render-pass setup. ok is false when the pipeline has no background and
// the backend should leave the target untouched.
func (p *ScenePipeline) ClearColor() (gputypes.Color, bool) {
	if p.BackgroundColor == nil {
		return gputypes.Color{}, false
	}
	return p.BackgroundColor.ToGPU(), true
}

// Scene is the registry of currently-visible pipelines: each pipeline's
// latest display-list snapshot, its epoch, and which pipeline is the root
// of composition.
//
// Every operation is total over the key space: removing or bumping the
// epoch of an unknown pipeline is a silent no-op. Mutation assumes the
// caller's own single-writer discipline; see the package documentation.
type Scene struct {
	rootPipelineID retained.PipelineID
	hasRoot        bool
	pipelines      map[retained.PipelineID]*ScenePipeline
	pipelineEpochs map[retained.PipelineID]retained.Epoch
}

// NewScene creates an empty scene with no root pipeline.
func NewScene() *Scene {
	return &Scene{
		pipelines:      make(map[retained.PipelineID]*ScenePipeline),
		pipelineEpochs: make(map[retained.PipelineID]retained.Epoch),
	}
}

// SetRootPipelineID records pipelineID as the root of composition. The
// pipeline does not need to be present yet; HasRootPipeline re-checks
// lazily.
func (s *Scene) SetRootPipelineID(pipelineID retained.PipelineID) {
	s.rootPipelineID = pipelineID
	s.hasRoot = true
}

// RootPipelineID returns the recorded root reference. ok is false when no
// root has been set or the root was cleared by a removal.
func (s *Scene) RootPipelineID() (retained.PipelineID, bool) {
	return s.rootPipelineID, s.hasRoot
}

// SetDisplayList installs a new immutable snapshot for pipelineID built
// from the submitted display list and metadata, replacing any prior
// snapshot, and records the submitted epoch for it. The epoch is caller
// supplied; the caller is responsible for monotonicity.
func (s *Scene) SetDisplayList(
	pipelineID retained.PipelineID,
	epoch retained.Epoch,
	displayList BuiltDisplayList,
	backgroundColor *retained.ColorF,
	viewportSize retained.LayoutSize,
	contentSize retained.LayoutSize,
) {
	s.pipelines[pipelineID] = &ScenePipeline{
		PipelineID:      pipelineID,
		ViewportSize:    viewportSize,
		ContentSize:     contentSize,
		BackgroundColor: backgroundColor,
		DisplayList:     displayList,
	}
	s.pipelineEpochs[pipelineID] = epoch

	retained.Logger().Debug("display list installed",
		"pipeline", pipelineID.String(),
		"epoch", uint32(epoch),
		"size", displayList.Size())
}

// RemovePipeline deletes the pipeline's snapshot and epoch. Removing the
// current root clears the root reference; removing an unknown pipeline is
// a no-op.
func (s *Scene) RemovePipeline(pipelineID retained.PipelineID) {
	if s.hasRoot && s.rootPipelineID == pipelineID {
		s.hasRoot = false
		s.rootPipelineID = retained.PipelineID{}
	}
	delete(s.pipelines, pipelineID)
	delete(s.pipelineEpochs, pipelineID)
}

// UpdateEpoch records a new epoch for pipelineID without touching its
// content, for version bumps that carry no new display list.
func (s *Scene) UpdateEpoch(pipelineID retained.PipelineID, epoch retained.Epoch) {
	s.pipelineEpochs[pipelineID] = epoch
}

// HasRootPipeline returns true if a root is set and a pipeline entry
// exists for it.
func (s *Scene) HasRootPipeline() bool {
	if !s.hasRoot {
		return false
	}
	_, ok := s.pipelines[s.rootPipelineID]
	return ok
}

// Pipeline returns the current snapshot for pipelineID.
func (s *Scene) Pipeline(pipelineID retained.PipelineID) (*ScenePipeline, bool) {
	p, ok := s.pipelines[pipelineID]
	return p, ok
}

// Epoch returns the recorded epoch for pipelineID.
func (s *Scene) Epoch(pipelineID retained.PipelineID) (retained.Epoch, bool) {
	e, ok := s.pipelineEpochs[pipelineID]
	return e, ok
}

// PipelineCount returns the number of registered pipelines.
func (s *Scene) PipelineCount() int {
	return len(s.pipelines)
}

// All iterates over all registered pipelines in unspecified order, for
// scene flattening and diagnostics consumers.
func (s *Scene) All() iter.Seq2[retained.PipelineID, *ScenePipeline] {
	return func(yield func(retained.PipelineID, *ScenePipeline) bool) {
		for id, p := range s.pipelines {
			if !yield(id, p) {
				return
			}
		}
	}
}
