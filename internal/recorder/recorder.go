package recorder

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"crypto-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Recorder persists collection records: it appends each record to a
// cumulative CSV dataset and replaces a single-record JSON snapshot.
type Recorder struct {
	tracer       trace.Tracer
	datasetPath  string
	snapshotPath string
}

func New(tracer trace.Tracer, datasetPath, snapshotPath string) *Recorder {
	return &Recorder{
		tracer:       tracer,
		datasetPath:  datasetPath,
		snapshotPath: snapshotPath,
	}
}

// Record writes the record to both artifacts. Prior dataset rows are
// preserved unchanged; the snapshot always holds only this record.
func (r *Recorder) Record(ctx context.Context, record *domain.MetricRecord) error {
	_, span := r.tracer.Start(ctx, "recorder.record")
	defer span.End()

	if err := r.appendDataset(record); err != nil {
		return fmt.Errorf("append dataset: %w", err)
	}
	if err := r.writeSnapshot(record); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// appendDataset logically appends one row: the existing file is read in
// full and rewritten with the new row last, or created with a header.
// A crash mid-rewrite can lose prior rows; accepted at this run
// frequency.
func (r *Recorder) appendDataset(record *domain.MetricRecord) error {
	rows := [][]string{domain.Header()}

	data, err := os.ReadFile(r.datasetPath)
	switch {
	case err == nil:
		existing, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			return fmt.Errorf("read existing dataset: %w", err)
		}
		if len(existing) > 0 {
			rows = existing
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	rows = append(rows, record.Row())

	f, err := os.Create(r.datasetPath)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
