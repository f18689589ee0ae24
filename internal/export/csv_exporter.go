package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RowWriter receives table rows one at a time
type RowWriter interface {
	Write(row []string) error
	Close() error
}

// CSVExporter writes a table to a file on disk
type CSVExporter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVExporter creates the file, its parent directories and the header row
func NewCSVExporter(filePath string, headers []string) (*CSVExporter, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("create csv file: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(headers); err != nil {
		file.Close()
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	return &CSVExporter{
		file:   file,
		writer: writer,
	}, nil
}

func (c *CSVExporter) Write(row []string) error {
	return c.writer.Write(row)
}

func (c *CSVExporter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}

// WriteRows writes the header and rows as CSV to w
func WriteRows(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// CSV renders the header and rows as a CSV document
func CSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteRows(&buf, headers, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
