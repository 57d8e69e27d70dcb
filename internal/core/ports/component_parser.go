package ports

// ComponentResult is the output of parsing a single-file component.
type ComponentResult struct {
	// Script is the component's script text.
	Script string

	// Style is the component's style text, empty when the component declares
	// no style block.
	Style string

	// StyleLang is the style block's source language ("css" or "less").
	StyleLang string

	// Template is the component's template text.
	Template string
}

// ComponentParser is the external collaborator separating a single-file
// component source into its script, style and template parts.
//
// Parse errors are distinguishable configuration-level failures; an execution
// timeout from the surrounding context is not a parse error and always
// propagates uncaught.
//
//go:generate mockgen -source=component_parser.go -destination=mocks/mock_component_parser.go -package=mocks
type ComponentParser interface {
	Parse(src string, minifyTemplate bool) (*ComponentResult, error)
}
