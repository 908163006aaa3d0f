package output

import (
	"bufio"
	"encoding/json"
	"io"

	"samplereport/internal/table"
)

// WriteJSONL writes one JSON object per row. Keys follow column order, so
// the object is assembled by hand rather than from a map.
func WriteJSONL(w io.Writer, t *table.Table) error {
	bw := bufio.NewWriter(w)
	keys := make([][]byte, t.NumColumns())
	for i, name := range t.Header() {
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys[i] = k
	}
	for r := 0; r < t.NumRows(); r++ {
		_ = bw.WriteByte('{')
		for i, v := range t.Row(r) {
			if i > 0 {
				_ = bw.WriteByte(',')
			}
			val, err := json.Marshal(v)
			if err != nil {
				return err
			}
			_, _ = bw.Write(keys[i])
			_ = bw.WriteByte(':')
			_, _ = bw.Write(val)
		}
		if _, err := bw.WriteString("}\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
