package scene

import "github.com/gogpu/retained"

// TransformStyle controls whether a stacking context establishes a 3D
// rendering context for its children.
type TransformStyle uint32

// Transform style constants.
const (
	TransformStyleFlat TransformStyle = iota
	TransformStylePreserve3D
)

// String returns a human-readable name for the transform style.
func (ts TransformStyle) String() string {
	switch ts {
	case TransformStyleFlat:
		return "Flat"
	case TransformStylePreserve3D:
		return "Preserve3D"
	default:
		return unknownStr
	}
}

// StackingContext is the attribute record of one stacking context as read
// from a display list: a grouping of content that shares compositing
// attributes (blend mode, filters, transform).
type StackingContext struct {
	// Transform positions the context's content; resolved live against
	// SceneProperties during flattening.
	Transform retained.PropertyBinding[retained.LayoutTransform]

	TransformStyle    TransformStyle
	MixBlendMode      MixBlendMode
	IsBackfaceVisible bool
}

// MixBlendModeForCompositing returns the blend mode the compositor should
// apply, mapping Normal to absent: normal blending is equivalent to no
// mix-blend effect and must be represented that way downstream.
func (sc *StackingContext) MixBlendModeForCompositing() (MixBlendMode, bool) {
	if sc.MixBlendMode == MixBlendNormal {
		return MixBlendNormal, false
	}
	return sc.MixBlendMode, true
}

// FilterOpsForCompositing decodes the context's filter operations into an
// owned slice of internal filters, preserving order.
func (sc *StackingContext) FilterOpsForCompositing(inputFilters retained.ItemRange[FilterOp]) []Filter {
	var filters []Filter
	for op := range inputFilters.All() {
		filters = append(filters, newFilter(op))
	}
	return filters
}

// FilterDatasForCompositing decodes the context's component-transfer
// records. Each record must supply exactly four transfer function types,
// one per component in red, green, blue, alpha order; anything else means
// the upstream encoder is corrupt and panics with an InvariantError.
func (sc *StackingContext) FilterDatasForCompositing(inputFilterDatas []TempFilterData) []FilterData {
	filterDatas := make([]FilterData, 0, len(inputFilterDatas))
	for i := range inputFilterDatas {
		temp := &inputFilterDatas[i]
		funcTypes := temp.FuncTypes.Collect()
		retained.Assert(len(funcTypes) == 4,
			"filter data record supplies %d component transfer functions, want 4", len(funcTypes))
		filterDatas = append(filterDatas, FilterData{
			FuncRType: funcTypes[0],
			RValues:   temp.RValues.Collect(),
			FuncGType: funcTypes[1],
			GValues:   temp.GValues.Collect(),
			FuncBType: funcTypes[2],
			BValues:   temp.BValues.Collect(),
			FuncAType: funcTypes[3],
			AValues:   temp.AValues.Collect(),
		})
	}
	return filterDatas
}

// FilterPrimitivesForCompositing decodes the context's filter primitive
// graph into an owned slice, one-to-one and order preserving.
func (sc *StackingContext) FilterPrimitivesForCompositing(inputFilterPrimitives retained.ItemRange[FilterPrimitive]) []FilterPrimitive {
	var primitives []FilterPrimitive
	for primitive := range inputFilterPrimitives.All() {
		primitives = append(primitives, primitive)
	}
	return primitives
}
