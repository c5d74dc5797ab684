package scene

import "github.com/gogpu/retained"

const unknownStr = "Unknown"

// MixBlendMode selects how a stacking context blends with the content
// beneath it, following the CSS mix-blend-mode vocabulary.
type MixBlendMode uint32

// Mix-blend mode constants.
const (
	MixBlendNormal MixBlendMode = iota
	MixBlendMultiply
	MixBlendScreen
	MixBlendOverlay
	MixBlendDarken
	MixBlendLighten
	MixBlendColorDodge
	MixBlendColorBurn
	MixBlendHardLight
	MixBlendSoftLight
	MixBlendDifference
	MixBlendExclusion
	MixBlendHue
	MixBlendSaturation
	MixBlendColor
	MixBlendLuminosity
)

// String returns a human-readable name for the blend mode.
func (mode MixBlendMode) String() string {
	switch mode {
	case MixBlendNormal:
		return "Normal"
	case MixBlendMultiply:
		return "Multiply"
	case MixBlendScreen:
		return "Screen"
	case MixBlendOverlay:
		return "Overlay"
	case MixBlendDarken:
		return "Darken"
	case MixBlendLighten:
		return "Lighten"
	case MixBlendColorDodge:
		return "ColorDodge"
	case MixBlendColorBurn:
		return "ColorBurn"
	case MixBlendHardLight:
		return "HardLight"
	case MixBlendSoftLight:
		return "SoftLight"
	case MixBlendDifference:
		return "Difference"
	case MixBlendExclusion:
		return "Exclusion"
	case MixBlendHue:
		return "Hue"
	case MixBlendSaturation:
		return "Saturation"
	case MixBlendColor:
		return "Color"
	case MixBlendLuminosity:
		return "Luminosity"
	default:
		return unknownStr
	}
}

// ComponentTransferFuncType selects the transfer function applied to one
// color component by a component-transfer filter, following the SVG feFunc
// vocabulary.
type ComponentTransferFuncType uint32

// Component transfer function constants.
const (
	FuncIdentity ComponentTransferFuncType = iota
	FuncTable
	FuncDiscrete
	FuncLinear
	FuncGamma
)

// String returns a human-readable name for the function type.
func (ft ComponentTransferFuncType) String() string {
	switch ft {
	case FuncIdentity:
		return "Identity"
	case FuncTable:
		return "Table"
	case FuncDiscrete:
		return "Discrete"
	case FuncLinear:
		return "Linear"
	case FuncGamma:
		return "Gamma"
	default:
		return unknownStr
	}
}

// FilterKind identifies one filter operation variant.
type FilterKind uint32

// Filter kind constants.
const (
	// FilterIdentity passes content through unchanged.
	FilterIdentity FilterKind = iota

	// FilterBlur applies a Gaussian blur with independent X/Y radii.
	FilterBlur

	// FilterBrightness scales component intensity by Amount.
	FilterBrightness

	// FilterContrast adjusts contrast by Amount.
	FilterContrast

	// FilterGrayscale desaturates toward gray by Amount.
	FilterGrayscale

	// FilterHueRotate rotates hue by Amount degrees.
	FilterHueRotate

	// FilterInvert inverts components by Amount.
	FilterInvert

	// FilterOpacity scales alpha by an animatable opacity binding.
	FilterOpacity

	// FilterSaturate adjusts saturation by Amount.
	FilterSaturate

	// FilterSepia shifts toward sepia by Amount.
	FilterSepia

	// FilterDropShadow draws an offset, blurred silhouette behind content.
	FilterDropShadow

	// FilterColorMatrix applies a 5x4 color matrix.
	FilterColorMatrix

	// FilterSrgbToLinear converts from sRGB to linear RGB.
	FilterSrgbToLinear

	// FilterLinearToSrgb converts from linear RGB to sRGB.
	FilterLinearToSrgb

	// FilterComponentTransfer applies per-component transfer functions
	// supplied separately as FilterData.
	FilterComponentTransfer

	// FilterFlood replaces content with a solid color.
	FilterFlood
)

// String returns a human-readable name for the filter kind.
func (k FilterKind) String() string {
	switch k {
	case FilterIdentity:
		return "Identity"
	case FilterBlur:
		return "Blur"
	case FilterBrightness:
		return "Brightness"
	case FilterContrast:
		return "Contrast"
	case FilterGrayscale:
		return "Grayscale"
	case FilterHueRotate:
		return "HueRotate"
	case FilterInvert:
		return "Invert"
	case FilterOpacity:
		return "Opacity"
	case FilterSaturate:
		return "Saturate"
	case FilterSepia:
		return "Sepia"
	case FilterDropShadow:
		return "DropShadow"
	case FilterColorMatrix:
		return "ColorMatrix"
	case FilterSrgbToLinear:
		return "SrgbToLinear"
	case FilterLinearToSrgb:
		return "LinearToSrgb"
	case FilterComponentTransfer:
		return "ComponentTransfer"
	case FilterFlood:
		return "Flood"
	default:
		return unknownStr
	}
}

// Shadow parameterizes a drop-shadow filter.
type Shadow struct {
	OffsetX, OffsetY float32
	Color            retained.ColorF
	BlurRadius       float32
}

// FilterOp is one filter operation in its wire/storage encoding, as read
// from a display-list item range. Which parameter fields are meaningful
// depends on Kind.
type FilterOp struct {
	Kind FilterKind

	// Amount is the scalar parameter for Brightness, Contrast, Grayscale,
	// HueRotate (degrees), Invert, Saturate and Sepia. For Opacity it is
	// the value the binding resolved to when the list was built.
	Amount float32

	// BlurRadiusX and BlurRadiusY parameterize Blur.
	BlurRadiusX, BlurRadiusY float32

	// Opacity is the animatable alpha binding for Opacity.
	Opacity retained.PropertyBinding[float32]

	// Shadow parameterizes DropShadow.
	Shadow Shadow

	// ColorMatrix holds the 5x4 matrix for ColorMatrix, row-major.
	ColorMatrix [20]float32

	// FloodColor is the fill color for Flood.
	FloodColor retained.ColorF
}

// Filter is the engine-internal representation of one filter operation.
// It mirrors FilterOp field for field; keeping the two types separate
// lets the internal form evolve without touching the wire encoding.
type Filter struct {
	Kind                     FilterKind
	Amount                   float32
	BlurRadiusX, BlurRadiusY float32
	Opacity                  retained.PropertyBinding[float32]
	Shadow                   Shadow
	ColorMatrix              [20]float32
	FloodColor               retained.ColorF
}

// newFilter converts a wire filter operation to its internal form.
func newFilter(op FilterOp) Filter {
	return Filter{
		Kind:        op.Kind,
		Amount:      op.Amount,
		BlurRadiusX: op.BlurRadiusX,
		BlurRadiusY: op.BlurRadiusY,
		Opacity:     op.Opacity,
		Shadow:      op.Shadow,
		ColorMatrix: op.ColorMatrix,
		FloodColor:  op.FloodColor,
	}
}

// IsNoop returns true if applying the filter would leave content
// unchanged, so the compositor can skip it.
func (f Filter) IsNoop() bool {
	switch f.Kind {
	case FilterIdentity:
		return true
	case FilterBlur:
		return f.BlurRadiusX == 0 && f.BlurRadiusY == 0
	case FilterBrightness, FilterContrast, FilterSaturate:
		return f.Amount == 1
	case FilterGrayscale, FilterHueRotate, FilterInvert, FilterSepia:
		return f.Amount == 0
	case FilterOpacity:
		return !f.Opacity.Keyed && f.Opacity.Value == 1
	default:
		return false
	}
}

// TempFilterData is the wire form of one component-transfer filter
// record: a range of exactly four transfer function types (red, green,
// blue, alpha, in that order) and the per-component value tables.
type TempFilterData struct {
	FuncTypes retained.ItemRange[ComponentTransferFuncType]
	RValues   retained.ItemRange[float32]
	GValues   retained.ItemRange[float32]
	BValues   retained.ItemRange[float32]
	AValues   retained.ItemRange[float32]
}

// FilterData is the decoded component-transfer record consumed by the
// compositor: one transfer function type plus value table per component.
type FilterData struct {
	FuncRType ComponentTransferFuncType
	RValues   []float32
	FuncGType ComponentTransferFuncType
	GValues   []float32
	FuncBType ComponentTransferFuncType
	BValues   []float32
	FuncAType ComponentTransferFuncType
	AValues   []float32
}

// ColorSpace selects the color space a filter primitive operates in.
type ColorSpace uint32

// Color space constants.
const (
	ColorSpaceSrgb ColorSpace = iota
	ColorSpaceLinearRgb
)

// String returns a human-readable name for the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceSrgb:
		return "Srgb"
	case ColorSpaceLinearRgb:
		return "LinearRgb"
	default:
		return unknownStr
	}
}

// FilterPrimitiveInput selects the source sampled by a filter primitive.
type FilterPrimitiveInput int32

// Filter primitive input constants. Non-negative values index the output
// of an earlier primitive in the graph.
const (
	// PrimitiveInputOriginal samples the unfiltered stacking context.
	PrimitiveInputOriginal FilterPrimitiveInput = -1

	// PrimitiveInputPrevious samples the preceding primitive's output.
	PrimitiveInputPrevious FilterPrimitiveInput = -2
)

// FilterPrimitive is one node of an SVG filter graph attached to a
// stacking context. Primitives cross the wire in their final form; the
// extractor's conversion is one-to-one.
type FilterPrimitive struct {
	Kind       FilterKind
	Input      FilterPrimitiveInput
	Input2     FilterPrimitiveInput
	ColorSpace ColorSpace

	// Amount carries the scalar parameter for kinds that take one.
	Amount float32

	// Opacity is the animatable alpha binding for Opacity primitives.
	Opacity retained.PropertyBinding[float32]

	// Shadow parameterizes DropShadow primitives.
	Shadow Shadow

	// ColorMatrix holds the 5x4 matrix for ColorMatrix primitives.
	ColorMatrix [20]float32

	// FloodColor is the fill color for Flood primitives.
	FloodColor retained.ColorF
}
