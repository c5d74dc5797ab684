package scene

import "github.com/gogpu/retained"

// SceneProperties stores the animated property bindings for the current
// display list. These can be used to animate the transform and/or opacity
// of display-list content without resubmitting the display list itself.
//
// Updates accumulate in a pending batch via SetProperties and
// AddProperties and become visible to resolution only when
// FlushPendingUpdates commits them.
type SceneProperties struct {
	transformProperties map[retained.PropertyBindingID]retained.LayoutTransform
	floatProperties     map[retained.PropertyBindingID]float32
	currentProperties   retained.DynamicProperties
	pendingProperties   *retained.DynamicProperties
}

// NewSceneProperties creates an empty property store.
func NewSceneProperties() *SceneProperties {
	return &SceneProperties{
		transformProperties: make(map[retained.PropertyBindingID]retained.LayoutTransform),
		floatProperties:     make(map[retained.PropertyBindingID]float32),
	}
}

// SetProperties replaces the whole pending batch with properties,
// discarding any pending edits accumulated since the last flush.
// The store takes ownership of the batch; callers must not reuse it.
func (sp *SceneProperties) SetProperties(properties retained.DynamicProperties) {
	sp.pendingProperties = &properties
}

// AddProperties merges properties into the pending batch at entry
// granularity: an incoming entry overwrites any pending value for the
// same binding identity (last writer wins), and identities not mentioned
// keep their pending value. With no pending batch the merge starts from
// an empty one.
func (sp *SceneProperties) AddProperties(properties retained.DynamicProperties) {
	pending := sp.pendingProperties
	if pending == nil {
		pending = &retained.DynamicProperties{}
		sp.pendingProperties = pending
	}
	pending.Extend(properties)
}

// FlushPendingUpdates commits any pending updates and reports whether the
// properties changed since the last flush. Properties may be changed by
// multiple SetProperties and AddProperties calls during a single
// transaction and still produce a single correct change verdict; a frame
// build can be skipped whenever this returns false, which has significant
// power saving implications.
//
// The pending batch deliberately stays populated after a flush: flushing
// again with no intervening edits re-compares the same batch against the
// committed state and reports unchanged.
func (sp *SceneProperties) FlushPendingUpdates() bool {
	propertiesChanged := false

	if pending := sp.pendingProperties; pending != nil {
		if !pending.Equal(sp.currentProperties) {
			clear(sp.transformProperties)
			clear(sp.floatProperties)

			for _, property := range pending.Transforms {
				sp.transformProperties[property.Key.ID] = property.Value
			}
			for _, property := range pending.Floats {
				sp.floatProperties[property.Key.ID] = property.Value
			}

			sp.currentProperties = pending.Clone()
			propertiesChanged = true

			retained.Logger().Debug("scene properties flushed",
				"transforms", len(pending.Transforms),
				"floats", len(pending.Floats))
		}
	}

	return propertiesChanged
}

// ResolveLayoutTransform returns the current value for a transform
// binding. Keyed bindings without a committed value resolve to their
// fallback; resolution never fails.
func (sp *SceneProperties) ResolveLayoutTransform(property retained.PropertyBinding[retained.LayoutTransform]) retained.LayoutTransform {
	if property.Keyed {
		if value, ok := sp.transformProperties[property.Key.ID]; ok {
			return value
		}
	}
	return property.Value
}

// ResolveFloat returns the current value for a float binding. Keyed
// bindings without a committed value resolve to their fallback;
// resolution never fails.
func (sp *SceneProperties) ResolveFloat(property retained.PropertyBinding[float32]) float32 {
	if property.Keyed {
		if value, ok := sp.floatProperties[property.Key.ID]; ok {
			return value
		}
	}
	return property.Value
}

// FloatProperties returns the committed float lookup table. The map is
// shared; callers must treat it as read-only.
func (sp *SceneProperties) FloatProperties() map[retained.PropertyBindingID]float32 {
	return sp.floatProperties
}

// CurrentProperties returns a copy of the committed property batch, for
// diagnostics and capture tooling.
func (sp *SceneProperties) CurrentProperties() retained.DynamicProperties {
	return sp.currentProperties.Clone()
}
