// Package jsonstore persists the task list as a JSON array in a
// single file. Human-readable, portable. No locking; fine for a local
// single-user tool (concurrent writers race, last save wins).
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/idilsaglam/tasklist/internal/model"
)

// DefaultPath is the data file used when no --db flag or config
// value is given.
const DefaultPath = "todos.json"

// Load reads the task list from path. A missing file is an empty
// list; an unreadable or malformed file is a *CorruptDataError.
func Load(path string) ([]model.Task, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, &CorruptDataError{Path: path, Err: err}
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, &CorruptDataError{Path: path, Err: err}
	}
	tasks := make([]model.Task, 0, len(rows))
	for i, row := range rows {
		task, err := decodeTask(row)
		if err != nil {
			return nil, &CorruptDataError{Path: path, Err: fmt.Errorf("task %d: %w", i, err)}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// decodeTask parses one array element strictly: unknown fields,
// a missing or non-positive id, and an empty title all make the
// file corrupt. Mutating a file with unrecognized content would
// silently destroy it on the next save.
func decodeTask(row json.RawMessage) (model.Task, error) {
	var task model.Task
	dec := json.NewDecoder(bytes.NewReader(row))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&task); err != nil {
		return model.Task{}, err
	}
	if task.ID <= 0 {
		return model.Task{}, fmt.Errorf("missing or invalid id")
	}
	if strings.TrimSpace(task.Title) == "" {
		return model.Task{}, fmt.Errorf("missing title")
	}
	return task, nil
}

// Save writes the full task list to path atomically: marshal to a
// temp file in the same directory, then rename over the target. A
// crash mid-write never leaves a truncated data file behind.
func Save(path string, tasks []model.Task) error {
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// NextID returns 1 + the maximum existing ID, or 1 for an empty list.
// IDs are never reused within a data file, even after deletions.
func NextID(tasks []model.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Add appends a new task with a fresh ID. The title is trimmed; an
// empty title is a *ValidationError and nothing is appended.
func Add(tasks []model.Task, title string) ([]model.Task, model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return tasks, model.Task{}, &ValidationError{Reason: "todo title cannot be empty"}
	}
	now := time.Now().UTC()
	task := model.Task{
		ID:        NextID(tasks),
		Title:     title,
		CreatedAt: &now,
	}
	return append(tasks, task), task, nil
}

// MarkDone sets the done flag on the task with the given ID.
// Idempotent when the task is already done; *NotFoundError when the
// ID does not exist.
func MarkDone(tasks []model.Task, id int) ([]model.Task, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = true
			return tasks, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Delete removes the task with the given ID. All other tasks keep
// their IDs (no renumbering).
func Delete(tasks []model.Task, id int) ([]model.Task, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i:i], tasks[i+1:]...), nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Sorted returns a copy of tasks in ascending ID order. Insertion
// order can diverge from ID order after deletions, so listings sort
// explicitly.
func Sorted(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the task with the given ID, or a *NotFoundError.
func Get(tasks []model.Task, id int) (model.Task, error) {
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, &NotFoundError{ID: id}
}
