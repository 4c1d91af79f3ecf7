package template

// ElementKind discriminates a TemplateElement's variant (spec §3.4).
type ElementKind int

const (
	KindFlex ElementKind = iota
	KindText
	KindImage
	KindSvg
	KindSeparator
	KindQr
	KindBarcode
	KindTable
)

// Element is one base record with shared BaseAttributes plus exactly one
// populated variant payload, a tagged union replacing the deep
// inheritance hierarchies a class-based schema would reach for (spec §9
// design note).
type Element struct {
	Kind ElementKind
	Base BaseAttributes

	Flex      *FlexAttributes
	Text      *TextAttributes
	Image     *ImageAttributes
	Svg       *SvgAttributes
	Separator *SeparatorAttributes
	Qr        *QrAttributes
	Barcode   *BarcodeAttributes
	Table     *TableAttributes
}

// FlexAttributes are the Flex variant's extra attributes.
type FlexAttributes struct {
	Direction     FlexDirection
	Wrap          FlexWrap
	Justify       JustifyContent
	Align         AlignItems
	AlignContent  AlignContent
	Gap           Unit
	RowGap        Unit
	ColumnGap     Unit
	Children      []Element
}

// TextAttributes are the Text variant's extra attributes.
type TextAttributes struct {
	Content  string
	Font     string
	Size     Unit // default 1em
	Color    string
	Align    TextAlign
	Wrap     bool
	MaxLines *uint32
	Overflow TextOverflow
}

// ImageAttributes are the Image variant's extra attributes.
type ImageAttributes struct {
	Src         string
	ImageWidth  Unit
	ImageHeight Unit
	Fit         ImageFit
}

// SvgAttributes are the Svg variant's extra attributes. Exactly one of
// Content/Src is expected to be set.
type SvgAttributes struct {
	Content string
	Src     string
	Fit     ImageFit
}

// SeparatorAttributes are the Separator variant's extra attributes.
type SeparatorAttributes struct {
	Orientation SeparatorOrientation
	Style       SeparatorStyle
	Color       string
	Thickness   Unit
}

// SeparatorStyle mirrors units.BorderStyle's vocabulary for a standalone
// separator line (no width/color coupling, just the dash pattern).
type SeparatorStyle int

const (
	SeparatorSolid SeparatorStyle = iota
	SeparatorDashed
	SeparatorDotted
)

// QrAttributes are the Qr variant's extra attributes.
type QrAttributes struct {
	Data            string
	Size            Unit
	ErrorCorrection ErrorCorrection
	Foreground      string
	Background      string
}

// BarcodeAttributes are the Barcode variant's extra attributes.
type BarcodeAttributes struct {
	Data          string
	Format        BarcodeFormat
	BarcodeWidth  Unit
	BarcodeHeight Unit
	ShowText      bool
	Foreground    string
	Background    string
}

// TableColumn is one column definition of a Table variant.
type TableColumn struct {
	Key    string
	Label  string
	Width  Unit
	Grow   float64
	Align  TextAlign
	Format string
	Font   string
	Color  string
	Size   Unit
}

// TableRow is one data row: a case-insensitive mapping of column key to
// its rendered string value.
type TableRow struct {
	Values map[string]string
}

// TableAttributes are the Table variant's extra attributes. Table is
// rendered by expansion into a Flex(Column)→Flex(Row) tree before
// layout runs (spec §3.4), so the layout engine never sees KindTable
// directly — only the core schema and the expander do.
type TableAttributes struct {
	Columns      []TableColumn
	Rows         []TableRow
	ArrayPath    string
	ItemVariable string
}
