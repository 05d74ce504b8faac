package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/daylily/internal/model"
)

// maxLineSize bounds a single record line; notes can be long.
const maxLineSize = 1024 * 1024

// Dataset is a newline-delimited JSON file with one record per line.
type Dataset struct {
	path string
}

// NewDataset returns a dataset backed by the file at path.
func NewDataset(path string) *Dataset {
	return &Dataset{path: path}
}

// Path returns the dataset file path.
func (s *Dataset) Path() string {
	return s.path
}

// ReadAll reads all records from the file. Blank lines are skipped. The
// first line that is not a valid record aborts the read.
func (s *Dataset) ReadAll() ([]*model.Daylily, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	records := []*model.Daylily{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record model.Daylily
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse record at line %d: %w", lineNum, err)
		}
		records = append(records, &record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	return records, nil
}

// ReadLenient reads the file like ReadAll but skips lines that fail to
// parse, returning their line numbers.
func (s *Dataset) ReadLenient() ([]*model.Daylily, []int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	records := []*model.Daylily{}
	var skipped []int
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record model.Daylily
		if err := json.Unmarshal(line, &record); err != nil {
			skipped = append(skipped, lineNum)
			continue
		}
		records = append(records, &record)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading dataset: %w", err)
	}

	return records, skipped, nil
}

// ReadAllOrEmpty is like ReadAll but returns no records when the file does
// not exist yet.
func (s *Dataset) ReadAllOrEmpty() ([]*model.Daylily, error) {
	if !s.Exists() {
		return []*model.Daylily{}, nil
	}
	return s.ReadAll()
}

// WriteAll overwrites the file with the given records, one per line.
// The write is atomic: readers see either the old or the new file.
func (s *Dataset) WriteAll(records []*model.Daylily) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "varieties-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	writer := bufio.NewWriter(tmpFile)
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			tmpFile.Close()
			return fmt.Errorf("failed to write record %q: %w", record.Name, err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Exists returns true if the dataset file exists.
func (s *Dataset) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
