package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// ParquetWriter streams rows into a zstd-compressed parquet file. Rows go
// to a temporary file next to the target, which is renamed into place on
// Close so readers never see a partial file.
type ParquetWriter struct {
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[PlyRow]

	games int
	rows  int
}

// NewParquetWriter creates the temporary file for outPath.
func NewParquetWriter(outPath string) (*ParquetWriter, error) {
	if outPath == "" {
		return nil, fmt.Errorf("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[PlyRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.SkipPageBounds("snapshot"),
	)
	w.SetKeyValueMetadata("schema", Schema)

	return &ParquetWriter{
		tmpPath: tmpPath,
		outPath: outPath,
		file:    f,
		writer:  w,
	}, nil
}

func (p *ParquetWriter) TmpPath() string { return p.tmpPath }
func (p *ParquetWriter) OutPath() string { return p.outPath }
func (p *ParquetWriter) Games() int      { return p.games }
func (p *ParquetWriter) Rows() int       { return p.rows }

// WriteRows implements Writer.
func (p *ParquetWriter) WriteRows(rows []PlyRow) error {
	if p.writer == nil {
		return fmt.Errorf("parquet writer is closed")
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := p.writer.Write(rows); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	p.rows += len(rows)
	p.games++
	return nil
}

// Close finishes the file and moves it to its final path. When no rows
// were written the temporary file is removed and nothing is created.
func (p *ParquetWriter) Close() error {
	if p.writer == nil {
		return nil
	}

	closeErr := p.writer.Close()
	p.writer = nil
	_ = p.file.Sync()
	fileErr := p.file.Close()
	p.file = nil

	if closeErr != nil {
		_ = os.Remove(p.tmpPath)
		return fmt.Errorf("close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		_ = os.Remove(p.tmpPath)
		return fmt.Errorf("close parquet file: %w", fileErr)
	}
	if p.rows == 0 {
		_ = os.Remove(p.tmpPath)
		return nil
	}
	if err := os.Rename(p.tmpPath, p.outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadParquet loads every row of a file written by ParquetWriter.
func ReadParquet(path string) ([]PlyRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[PlyRow](pf)
	defer reader.Close()

	out, err := readRows(reader, int(reader.NumRows()))
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return out, nil
}

type rowReader interface {
	Read(rows []PlyRow) (int, error)
}

// readRows reads up to total rows, stopping early at io.EOF or when the
// reader makes no progress.
func readRows(r rowReader, total int) ([]PlyRow, error) {
	out := make([]PlyRow, 0, total)
	for len(out) < total {
		buf := make([]PlyRow, min(256, total-len(out)))
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return out, nil
}
