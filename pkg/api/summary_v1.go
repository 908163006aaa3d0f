// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable schema of the --summary document (YAML or JSON).
// Keep fields, names, and types stable. Add new fields only with omitempty.
type SummaryV1 struct {
	SampleID   string `json:"sample_id" yaml:"sample_id"`
	IDColumn   string `json:"id_column" yaml:"id_column"`
	IDInserted bool   `json:"id_inserted" yaml:"id_inserted"`
	Rows       int    `json:"rows" yaml:"rows"`

	Inputs []InputV1 `json:"inputs" yaml:"inputs"`

	QCColumns         []string `json:"qc_columns" yaml:"qc_columns"`
	OtherColumns      []string `json:"other_columns" yaml:"other_columns"`
	DroppedDuplicates []string `json:"dropped_duplicates,omitempty" yaml:"dropped_duplicates,omitempty"`
	PaddedInputs      []string `json:"padded_inputs,omitempty" yaml:"padded_inputs,omitempty"`

	Output string `json:"output" yaml:"output"`
	Format string `json:"format" yaml:"format"`
}

// InputV1 describes one loaded input file.
type InputV1 struct {
	Path    string `json:"path" yaml:"path"`
	Rows    int    `json:"rows" yaml:"rows"`
	Columns int    `json:"columns" yaml:"columns"`
}
