package writers

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"samplereport/pkg/api"
)

// WriteSummary writes s to path as JSON when path ends in .json and as
// YAML otherwise. "-" writes YAML to stdout.
func WriteSummary(path string, stdout io.Writer, s api.SummaryV1) error {
	asJSON := strings.EqualFold(filepath.Ext(path), ".json")
	return ToPath(path, stdout, func(w io.Writer) error {
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	})
}
