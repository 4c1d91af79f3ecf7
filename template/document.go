package template

// FontDefinition names a font resource by a user-facing alias (spec
// §3.5's `fonts` mapping), resolved through a resource.Loader at
// expansion/render time.
type FontDefinition struct {
	Name string
	Src  string
}

// Canvas is the template's root surface (spec §3.5).
type Canvas struct {
	Width, Height *uint32
	Fixed         CanvasFixed
	Background    *string
}

// Template is the fully parsed, still-unexpanded document: `{{ }}`
// expressions and each/if control elements may still be present in
// Elements — the expand package resolves those into a final Element
// tree (spec §3.5, §4.3).
type Template struct {
	Canvas   Canvas
	Fonts    map[string]FontDefinition
	Culture  string
	Elements []Element
}
