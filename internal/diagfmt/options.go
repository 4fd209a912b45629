package diagfmt

// PrettyOpts configures human-readable diagnostic rendering.
type PrettyOpts struct {
	Color bool
	// ShowPreview replaces the empty gutter with the offending source
	// line and a caret underline.
	ShowPreview bool
	// Max caps how many diagnostics are rendered; 0 means all.
	Max int
}

// JSONOpts configures machine-readable diagnostic output.
type JSONOpts struct {
	IncludePositions bool
	Max              int
}
