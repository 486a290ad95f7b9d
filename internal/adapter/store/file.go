package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"zephyrtask/internal/core/domain"
	"zephyrtask/internal/core/ports"
)

// defaultTasksFileName is the dot-file used under the home directory when no
// path is configured.
const defaultTasksFileName = ".zephyrtask_data.json"

type taskRecord struct {
	Time      string `json:"time"`
	Event     string `json:"event"`
	Value     int    `json:"value"`
	Completed bool   `json:"completed"`
}

// FileStore persists the task collection as a JSON array-of-objects
// document. Reads are tolerant: a missing or undecodable file degrades to an
// empty collection. Writes replace the whole document.
type FileStore struct {
	path string
}

var _ ports.TaskStore = (*FileStore)(nil)

// NewFileStore creates a store backed by the given path, falling back to
// DefaultTasksFile when the path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultTasksFile()
	}
	return &FileStore{path: path}
}

// DefaultTasksFile returns the documented default location of the tasks
// document in the user's home directory.
func DefaultTasksFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultTasksFileName
	}
	return filepath.Join(home, defaultTasksFileName)
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the whole collection in storage order. Missing or corrupt data
// is not an error: the result degrades to empty with Parsed unset.
func (s *FileStore) Load(_ context.Context) (ports.LoadResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ports.LoadResult{}, nil
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return ports.LoadResult{}, nil
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, domain.Task(record))
	}

	return ports.LoadResult{Tasks: tasks, Parsed: true}, nil
}

// Save serializes the collection and replaces the backing file in one unit,
// creating the parent directory if needed. The write goes through a temp
// file and rename so readers never observe a partially written document.
func (s *FileStore) Save(_ context.Context, tasks []domain.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, taskRecord(task))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace tasks file: %w", err)
	}

	return nil
}
