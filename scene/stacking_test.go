package scene

import (
	"errors"
	"testing"

	"github.com/gogpu/retained"
)

func TestMixBlendModeForCompositing(t *testing.T) {
	normal := &StackingContext{MixBlendMode: MixBlendNormal}
	if _, ok := normal.MixBlendModeForCompositing(); ok {
		t.Error("Normal blend mode should map to absent")
	}

	for _, mode := range []MixBlendMode{MixBlendMultiply, MixBlendScreen, MixBlendLuminosity} {
		sc := &StackingContext{MixBlendMode: mode}
		got, ok := sc.MixBlendModeForCompositing()
		if !ok {
			t.Errorf("%v should map to present", mode)
		}
		if got != mode {
			t.Errorf("got %v, want %v unchanged", got, mode)
		}
	}
}

func TestFilterOpsForCompositing(t *testing.T) {
	sc := &StackingContext{}
	ops := []FilterOp{
		{Kind: FilterBlur, BlurRadiusX: 4, BlurRadiusY: 4},
		{Kind: FilterSaturate, Amount: 2},
		{Kind: FilterInvert, Amount: 1},
	}

	filters := sc.FilterOpsForCompositing(retained.SliceRange(ops))
	if len(filters) != 3 {
		t.Fatalf("len(filters) = %d, want 3", len(filters))
	}
	// Order preserved, values converted one-to-one.
	wantKinds := []FilterKind{FilterBlur, FilterSaturate, FilterInvert}
	for i, f := range filters {
		if f.Kind != wantKinds[i] {
			t.Errorf("filters[%d].Kind = %v, want %v", i, f.Kind, wantKinds[i])
		}
	}
	if filters[0].BlurRadiusX != 4 || filters[1].Amount != 2 {
		t.Error("filter parameters not carried through conversion")
	}
}

func TestFilterOpsForCompositingEmpty(t *testing.T) {
	sc := &StackingContext{}
	if got := sc.FilterOpsForCompositing(retained.ItemRange[FilterOp]{}); len(got) != 0 {
		t.Errorf("empty range produced %d filters, want 0", len(got))
	}
}

func componentFuncs(types ...ComponentTransferFuncType) retained.ItemRange[ComponentTransferFuncType] {
	return retained.SliceRange(types)
}

func TestFilterDatasForCompositing(t *testing.T) {
	sc := &StackingContext{}
	input := []TempFilterData{{
		FuncTypes: componentFuncs(FuncTable, FuncDiscrete, FuncLinear, FuncGamma),
		RValues:   retained.SliceRange([]float32{0, 1}),
		GValues:   retained.SliceRange([]float32{0, 0.5, 1}),
		BValues:   retained.SliceRange([]float32{1, 0.5}),
		AValues:   retained.SliceRange([]float32{2, 3}),
	}}

	datas := sc.FilterDatasForCompositing(input)
	if len(datas) != 1 {
		t.Fatalf("len(datas) = %d, want 1", len(datas))
	}

	fd := datas[0]
	if fd.FuncRType != FuncTable || fd.FuncGType != FuncDiscrete ||
		fd.FuncBType != FuncLinear || fd.FuncAType != FuncGamma {
		t.Errorf("function types decoded out of order: %+v", fd)
	}
	if len(fd.RValues) != 2 || len(fd.GValues) != 3 || len(fd.BValues) != 2 || len(fd.AValues) != 2 {
		t.Errorf("value tables decoded with wrong lengths: %+v", fd)
	}
	if fd.GValues[1] != 0.5 {
		t.Errorf("GValues[1] = %v, want 0.5", fd.GValues[1])
	}
}

func TestFilterDatasArityPanics(t *testing.T) {
	sc := &StackingContext{}
	input := []TempFilterData{{
		// Three function types instead of four: upstream encoder corruption.
		FuncTypes: componentFuncs(FuncTable, FuncDiscrete, FuncLinear),
	}}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("malformed filter data record did not panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value is %T, want error", r)
		}
		var inv *retained.InvariantError
		if !errors.As(err, &inv) {
			t.Fatalf("panic error is %T, want *retained.InvariantError", err)
		}
	}()
	sc.FilterDatasForCompositing(input)
}

func TestFilterPrimitivesForCompositing(t *testing.T) {
	sc := &StackingContext{}
	prims := []FilterPrimitive{
		{Kind: FilterFlood, Input: PrimitiveInputOriginal, FloodColor: retained.RGB(1, 0, 0)},
		{Kind: FilterBlur, Input: PrimitiveInputPrevious, Amount: 2, ColorSpace: ColorSpaceLinearRgb},
	}

	got := sc.FilterPrimitivesForCompositing(retained.SliceRange(prims))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != prims[0] || got[1] != prims[1] {
		t.Error("primitive conversion should be one-to-one and order preserving")
	}
}
