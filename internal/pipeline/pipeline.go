// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"io"

	log "github.com/sirupsen/logrus"

	"samplereport/internal/table"
	"samplereport/pkg/api"
)

// Config controls one report run.
type Config struct {
	SampleID   string
	IDColumn   string   // defaults to table.DefaultIDColumn
	QCValues   []string // defaults to table.DefaultQCValues
	Inputs     []string
	Load       table.LoadOptions
	StrictRows bool // reject inputs whose row counts differ

	Log log.FieldLogger // nil discards
}

// Result is the finished table plus what happened on the way.
type Result struct {
	Table          *table.Table
	Classification table.Classification
	IDInserted     bool
	Dropped        []string
	Inputs         []api.InputV1
	Padded         []string // inputs shorter than the longest one
}

// Summary converts r to the stable summary schema.
func (r *Result) Summary(cfg Config, outPath, format string) api.SummaryV1 {
	s := api.SummaryV1{
		SampleID:          cfg.SampleID,
		IDColumn:          cfg.idColumn(),
		IDInserted:        r.IDInserted,
		Rows:              r.Table.NumRows(),
		Inputs:            r.Inputs,
		QCColumns:         r.Classification.QC,
		OtherColumns:      r.Classification.Other,
		DroppedDuplicates: r.Dropped,
		PaddedInputs:      r.Padded,
		Output:            outPath,
		Format:            format,
	}
	if s.QCColumns == nil {
		s.QCColumns = []string{}
	}
	if s.OtherColumns == nil {
		s.OtherColumns = []string{}
	}
	return s
}

func (c Config) idColumn() string {
	if c.IDColumn == "" {
		return table.DefaultIDColumn
	}
	return c.IDColumn
}

func (c Config) qcValues() []string {
	if len(c.QCValues) == 0 {
		return table.DefaultQCValues
	}
	return c.QCValues
}

func (c Config) logger() log.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

// Build loads cfg.Inputs and returns the merged, labelled, reordered table.
// Inputs are aligned by row position. Unequal row counts are padded with
// empty cells and logged, or rejected with table.ErrRowMismatch when
// cfg.StrictRows is set.
func Build(ctx context.Context, cfg Config) (*Result, error) {
	lg := cfg.logger()
	idCol := cfg.idColumn()

	tables, err := table.LoadAll(ctx, cfg.Inputs, cfg.Load)
	if err != nil {
		return nil, err
	}
	res := &Result{Inputs: make([]api.InputV1, 0, len(tables))}
	for _, t := range tables {
		lg.WithFields(log.Fields{
			"path":    t.Source,
			"rows":    t.NumRows(),
			"columns": t.NumColumns(),
		}).Debug("loaded input")
		res.Inputs = append(res.Inputs, api.InputV1{Path: t.Source, Rows: t.NumRows(), Columns: t.NumColumns()})
	}

	if err := table.CheckAligned(tables); err != nil {
		var rm *table.RowMismatchError
		if cfg.StrictRows || !errors.As(err, &rm) {
			return nil, err
		}
		res.Padded = padded(tables)
		lg.WithFields(log.Fields{
			"want":   maxRows(tables),
			"inputs": res.Padded,
		}).Warn("inputs have different row counts; padding short inputs with empty cells")
	}

	merged := table.Merge(tables)
	deduped, dropped := table.Dedup(merged)
	res.Dropped = dropped
	if len(dropped) > 0 {
		lg.WithField("dropped", dropped).Debug("dropped repeated columns")
	}

	labelled, inserted := table.InsertIdentifier(deduped, idCol, cfg.SampleID)
	res.IDInserted = inserted
	if !inserted {
		if c, ok := labelled.Column(idCol); ok && differs(c.Cells, cfg.SampleID) {
			lg.WithFields(log.Fields{
				"column":    idCol,
				"sample_id": cfg.SampleID,
			}).Debug("keeping identifier values from input")
		}
	}

	final, cls := table.Reorder(labelled, idCol, cfg.qcValues())
	res.Table = final
	res.Classification = cls
	lg.WithFields(log.Fields{
		"rows":  final.NumRows(),
		"qc":    len(cls.QC),
		"other": len(cls.Other),
	}).Debug("classified columns")
	return res, nil
}

func maxRows(tables []*table.Table) int {
	n := 0
	for _, t := range tables {
		if r := t.NumRows(); r > n {
			n = r
		}
	}
	return n
}

func padded(tables []*table.Table) []string {
	want := maxRows(tables)
	var out []string
	for _, t := range tables {
		if t.NumRows() < want {
			out = append(out, t.Source)
		}
	}
	return out
}

func differs(cells []string, v string) bool {
	for _, c := range cells {
		if c != v {
			return true
		}
	}
	return false
}
