package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldTemplate is the standardized structured logging key for template references.
	FieldTemplate = "template"
	// FieldRenderID is the standardized structured logging key for per-render correlation identifiers.
	FieldRenderID = "render_id"
	// FieldWidth is the standardized structured logging key for frame widths.
	FieldWidth = "width"
	// FieldHeight is the standardized structured logging key for frame heights.
	FieldHeight = "height"
	// FieldOutput is the standardized structured logging key for output artifact paths.
	FieldOutput = "output"
)
