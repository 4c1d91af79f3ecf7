// Package template defines the typed Template Element AST (spec §3.4–3.5):
// the record shape a parsed YAML document materializes into once every
// `{{ }}` expression has been evaluated and every shorthand string has been
// parsed into its typed attribute.
package template

// Display is the base `display` attribute: Flex participates in flex
// layout, None contributes zero intrinsic size and is never painted
// (spec §3.7).
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// PositionType is the base `position` attribute.
type PositionType int

const (
	PosStatic PositionType = iota
	PosRelative
	PosAbsolute
)

// Overflow is the base `overflow` attribute (clipping behavior).
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
)

// AlignSelf overrides a flex container's align-items for one child.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfCenter
	AlignSelfEnd
	AlignSelfStretch
)

// FlexDirection is the Flex variant's `direction` attribute.
type FlexDirection int

const (
	DirectionRow FlexDirection = iota
	DirectionColumn
	DirectionRowReverse
	DirectionColumnReverse
)

// IsRow reports whether the main axis runs horizontally.
func (d FlexDirection) IsRow() bool {
	return d == DirectionRow || d == DirectionRowReverse
}

// IsReversed reports whether items lay out from the end of the main axis.
func (d FlexDirection) IsReversed() bool {
	return d == DirectionRowReverse || d == DirectionColumnReverse
}

// FlexWrap is the Flex variant's `wrap` attribute.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// JustifyContent distributes free space along the main axis.
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems is the Flex variant's cross-axis alignment, including
// Baseline (spec §3.4) which the teacher's narrower AlignItems enum
// lacked.
type AlignItems int

const (
	AlignItemsStart AlignItems = iota
	AlignItemsCenter
	AlignItemsEnd
	AlignItemsStretch
	AlignItemsBaseline
)

// AlignContent packs multiple flex lines across the cross axis.
type AlignContent int

const (
	AlignContentStart AlignContent = iota
	AlignContentCenter
	AlignContentEnd
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// TextAlign is the Text variant's `align` attribute.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignStart
	TextAlignEnd
	TextAlignJustify
)

// TextOverflow is the Text variant's `overflow` attribute.
type TextOverflow int

const (
	TextOverflowClip TextOverflow = iota
	TextOverflowEllipsis
)

// ImageFit is shared by the Image and Svg variants.
type ImageFit int

const (
	FitFill ImageFit = iota
	FitContain
	FitCover
	FitNone
)

// SeparatorOrientation is the Separator variant's `orientation` attribute.
type SeparatorOrientation int

const (
	OrientationHorizontal SeparatorOrientation = iota
	OrientationVertical
)

// ErrorCorrection is the Qr variant's `error_correction` attribute.
type ErrorCorrection int

const (
	ErrorCorrectionL ErrorCorrection = iota
	ErrorCorrectionM
	ErrorCorrectionQ
	ErrorCorrectionH
)

// BarcodeFormat is the Barcode variant's `format` attribute. Code128 is
// the only mandatory format (spec §3.4).
type BarcodeFormat int

const (
	BarcodeCode128 BarcodeFormat = iota
)

// CanvasFixed controls which canvas dimensions are treated as a hard
// target versus auto-sized from content (spec §3.5).
type CanvasFixed int

const (
	FixedNone CanvasFixed = iota
	FixedWidthOnly
	FixedHeightOnly
	FixedBoth
)

// RotateKind is the parsed form of the base `rotate` attribute
// (`"none"|"right"|"left"|"flip"|<deg>`).
type RotateKind int

const (
	RotateNone RotateKind = iota
	RotateRight
	RotateLeft
	RotateFlip
	RotateDegrees
)

// Rotate carries the parsed rotate attribute; Degrees is only meaningful
// when Kind is RotateDegrees.
type Rotate struct {
	Kind    RotateKind
	Degrees float64
}
