// Package retained provides the frame-persistent scene state for a
// retained-mode rendering engine in the GoGPU ecosystem.
//
// # Overview
//
// A retained-mode engine keeps an authoritative copy of everything it was
// last asked to display: the set of visible sub-documents ("pipelines"),
// the display-list snapshot each one submitted, and a layer of animated
// property values (transforms, opacities) that can be updated without
// resubmitting display lists. This package holds the shared value types
// for that state; the stateful containers live in the scene subpackage
// and diagnostics serialization in the capture subpackage.
//
// # Architecture
//
// The library is organized into:
//   - Public value types: ColorF, LayoutSize, LayoutTransform, PipelineID,
//     Epoch, PropertyBinding, DynamicProperties, ItemRange
//   - scene: SceneProperties (animated values), Scene (pipeline registry),
//     stacking-context compositing extraction
//   - capture: verbatim scene snapshots for replay and diagnostics
//
// # Change Detection
//
// The core design goal is skipping work. Property updates accumulate in a
// pending set and are committed by a single flush that reports whether
// anything actually changed, so a transaction that round-trips to the same
// values costs no frame rebuild. Pipeline snapshots are immutable and
// replaced wholesale, so concurrent readers never observe a torn update.
package retained

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
