// Package scene holds the authoritative, frame-persistent state of a
// rendered scene: the set of visible pipelines with their display-list
// snapshots and epochs, the animated property values bound into that
// content, and the extraction of per-stacking-context compositing
// attributes during flattening.
//
// The package tracks change across incremental updates so that downstream
// frame building can be skipped when nothing actually changed:
//
//	props := scene.NewSceneProperties()
//	props.AddProperties(batch)
//	if props.FlushPendingUpdates() {
//	    // schedule a frame rebuild
//	}
//
// All state mutation assumes external single-writer discipline; shared
// pipeline snapshots are immutable and replaced wholesale, so concurrent
// readers holding older snapshots stay consistent.
package scene
