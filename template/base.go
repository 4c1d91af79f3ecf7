package template

import "github.com/flowglyph/flowglyph/units"

// BaseAttributes are the attributes shared by every TemplateElement
// variant (spec §3.4's table).
type BaseAttributes struct {
	Width, Height Unit

	MinWidth, MaxWidth   *Unit
	MinHeight, MaxHeight *Unit

	AspectRatio *float64

	Grow      float64
	Shrink    float64
	Basis     Unit
	AlignSelf AlignSelf
	Order     int

	Padding units.PaddingSpec
	Margin  units.MarginValues

	Border      units.BorderValues
	BorderRadius Unit

	Display  Display
	Position PositionType

	Top, Right, Bottom, Left *Unit

	Overflow Overflow
	Opacity  float64
	Rotate   Rotate
	BoxShadow  *string
	Background *string
}

// Unit is an alias of units.Unit so template call sites read as the
// spec's own vocabulary without an extra import at every field.
type Unit = units.Unit

// DefaultBaseAttributes matches spec §3.4's default column.
func DefaultBaseAttributes() BaseAttributes {
	return BaseAttributes{
		Width:        units.Auto,
		Height:       units.Auto,
		Grow:         0,
		Shrink:       1,
		Basis:        units.Auto,
		AlignSelf:    AlignSelfAuto,
		Order:        0,
		Padding:      units.ParsePaddingSpec("0"),
		Margin:       units.ParseMargin("0"),
		BorderRadius: units.Pixels(0),
		Display:      DisplayFlex,
		Position:     PosStatic,
		Overflow:     OverflowVisible,
		Opacity:      1,
		Rotate:       Rotate{Kind: RotateNone},
	}
}
