// Package capture serializes scene state verbatim for diagnostics and
// replay. A snapshot carries the full pipeline registry (display-list
// payloads included) and the committed property values, and loading a
// snapshot reconstructs equivalent state through the public scene API so
// that a capture taken on one machine replays anywhere.
package capture

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/scene"
)

// FormatVersion identifies the snapshot wire format. Bump on any
// incompatible change to the Snapshot shape.
const FormatVersion = 1

// PipelineEntry is the serialized form of one registered pipeline.
type PipelineEntry struct {
	PipelineID      retained.PipelineID `json:"pipeline_id"`
	Epoch           retained.Epoch      `json:"epoch"`
	ViewportSize    retained.LayoutSize `json:"viewport_size"`
	ContentSize     retained.LayoutSize `json:"content_size"`
	BackgroundColor *retained.ColorF    `json:"background_color,omitempty"`
	DisplayList     []byte              `json:"display_list"`
	ItemCount       int                 `json:"item_count"`
}

// Snapshot is a verbatim serialization of a scene and its committed
// property values.
type Snapshot struct {
	Version        int                        `json:"version"`
	RootPipelineID *retained.PipelineID       `json:"root_pipeline_id,omitempty"`
	Pipelines      []PipelineEntry            `json:"pipelines"`
	Properties     retained.DynamicProperties `json:"properties"`
}

// Take builds a snapshot of s and props. Pipelines are ordered by
// identifier so snapshots of identical state are byte-identical.
func Take(s *scene.Scene, props *scene.SceneProperties) Snapshot {
	snap := Snapshot{
		Version:    FormatVersion,
		Pipelines:  make([]PipelineEntry, 0, s.PipelineCount()),
		Properties: props.CurrentProperties(),
	}

	if root, ok := s.RootPipelineID(); ok {
		snap.RootPipelineID = &root
	}

	for id, p := range s.All() {
		epoch, _ := s.Epoch(id)
		snap.Pipelines = append(snap.Pipelines, PipelineEntry{
			PipelineID:      id,
			Epoch:           epoch,
			ViewportSize:    p.ViewportSize,
			ContentSize:     p.ContentSize,
			BackgroundColor: p.BackgroundColor,
			DisplayList:     p.DisplayList.Data(),
			ItemCount:       p.DisplayList.ItemCount(),
		})
	}

	slices.SortFunc(snap.Pipelines, func(a, b PipelineEntry) int {
		if c := cmp.Compare(a.PipelineID.Source, b.PipelineID.Source); c != 0 {
			return c
		}
		return cmp.Compare(a.PipelineID.ID, b.PipelineID.ID)
	})

	return snap
}

// Restore rebuilds scene state from a snapshot through the public API:
// every pipeline is reinstalled with SetDisplayList and the property set
// is committed with a flush.
func Restore(snap Snapshot) (*scene.Scene, *scene.SceneProperties, error) {
	if snap.Version != FormatVersion {
		return nil, nil, fmt.Errorf("capture: unsupported snapshot version %d", snap.Version)
	}

	s := scene.NewScene()
	for _, entry := range snap.Pipelines {
		s.SetDisplayList(
			entry.PipelineID,
			entry.Epoch,
			scene.NewBuiltDisplayList(entry.DisplayList, entry.ItemCount),
			entry.BackgroundColor,
			entry.ViewportSize,
			entry.ContentSize,
		)
	}
	if snap.RootPipelineID != nil {
		s.SetRootPipelineID(*snap.RootPipelineID)
	}

	props := scene.NewSceneProperties()
	props.SetProperties(snap.Properties)
	props.FlushPendingUpdates()

	return s, props, nil
}

// Save writes a snapshot of s and props to w as JSON.
func Save(w io.Writer, s *scene.Scene, props *scene.SceneProperties) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(Take(s, props)); err != nil {
		return fmt.Errorf("capture: encode snapshot: %w", err)
	}
	return nil
}

// Load reads a JSON snapshot from r and rebuilds the captured state.
func Load(r io.Reader) (*scene.Scene, *scene.SceneProperties, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, nil, fmt.Errorf("capture: decode snapshot: %w", err)
	}
	return Restore(snap)
}
