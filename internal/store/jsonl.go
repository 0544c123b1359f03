package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// JSONLWriter writes one JSON object per row.
type JSONLWriter struct {
	file *os.File
	buf  *bufio.Writer
	enc  *json.Encoder
	rows int
}

// NewJSONLWriter creates (or truncates) path.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open jsonl: %w", err)
	}
	w := NewJSONLStream(f)
	w.file = f
	return w, nil
}

// NewJSONLStream writes rows to an existing stream. Close flushes but
// does not close w.
func NewJSONLStream(w io.Writer) *JSONLWriter {
	buf := bufio.NewWriter(w)
	return &JSONLWriter{buf: buf, enc: json.NewEncoder(buf)}
}

// Rows returns the number of rows written.
func (j *JSONLWriter) Rows() int { return j.rows }

// WriteRows implements Writer.
func (j *JSONLWriter) WriteRows(rows []PlyRow) error {
	if j.enc == nil {
		return fmt.Errorf("jsonl writer is closed")
	}
	for i := range rows {
		if err := j.enc.Encode(&rows[i]); err != nil {
			return fmt.Errorf("encode row: %w", err)
		}
	}
	j.rows += len(rows)
	return nil
}

// Close implements Writer.
func (j *JSONLWriter) Close() error {
	if j.enc == nil {
		return nil
	}
	j.enc = nil
	err := j.buf.Flush()
	if j.file != nil {
		if cerr := j.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// ReadJSONL decodes rows written by JSONLWriter.
func ReadJSONL(r io.Reader) ([]PlyRow, error) {
	var rows []PlyRow
	dec := json.NewDecoder(r)
	for {
		var row PlyRow
		err := dec.Decode(&row)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
}
