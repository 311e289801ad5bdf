package runlog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const timeLayout = "2006-01-02 15:04:05"

// The file carries a byte-order marker so spreadsheet tools open it as UTF-8.
const utf8BOM = "\uFEFF"

var header = []string{
	"filename",
	"start_time",
	"end_time",
	"status",
	"text_length",
	"summary_length",
	"notification_status",
}

// EnsureInitialized creates the store with its header row if absent.
// Idempotent; an existing store is never overwritten.
func (s *implStore) EnsureInitialized() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat run log: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create run log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Append adds one record as a new row. Key uniqueness is caller discipline;
// duplicate keys are neither merged nor rejected.
func (s *implStore) Append(record Record) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(record.row()); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// UpdateField loads the entire store, sets the named column on every row
// whose key matches, and writes the whole store back. O(total records) per
// update; acceptable for one run's worth of files.
func (s *implStore) UpdateField(key, field, value string) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read run log: %w", err)
	}

	content := strings.TrimPrefix(string(data), utf8BOM)
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse run log: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("run log %s has no header", s.path)
	}

	index := -1
	for i, h := range rows[0] {
		if strings.EqualFold(h, field) {
			index = i
			break
		}
	}
	if index < 0 {
		return &FieldNotFoundError{Field: field}
	}

	for _, row := range rows[1:] {
		if len(row) > index && row[0] == key {
			row[index] = value
		}
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("rewrite run log: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

func (r Record) row() []string {
	return []string{
		r.Filename,
		r.StartTime.Format(timeLayout),
		r.EndTime.Format(timeLayout),
		r.Status,
		strconv.Itoa(r.TextLength),
		strconv.Itoa(r.SummaryLength),
		r.NotificationStatus,
	}
}
