// Package cli tests subcommand dispatch and exit codes.
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		DB:   filepath.Join(t.TempDir(), "todos.json"),
		Host: "127.0.0.1",
		Port: 8000,
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"unknown subcommand", []string{"frobnicate"}},
		{"add without title", []string{"add"}},
		{"done without id", []string{"done"}},
		{"done extra args", []string{"done", "1", "2"}},
		{"done non-numeric", []string{"done", "abc"}},
		{"delete without id", []string{"delete"}},
		{"delete non-numeric", []string{"delete", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := Run(tt.args, testOptions(t)); code != 2 {
				t.Errorf("Run(%v): got exit code %d, want 2", tt.args, code)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"-h"}, {"--help"}} {
		if code := Run(args, testOptions(t)); code != 0 {
			t.Errorf("Run(%v): got exit code %d, want 0", args, code)
		}
	}
}

func TestAddListDoneDelete(t *testing.T) {
	opt := testOptions(t)

	if code := Run([]string{"add", "Buy", "milk"}, opt); code != 0 {
		t.Fatalf("add: exit code %d", code)
	}
	if code := Run([]string{"add", "Call mom"}, opt); code != 0 {
		t.Fatalf("add: exit code %d", code)
	}

	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	// Multi-word args join into one title.
	if tasks[0].Title != "Buy milk" {
		t.Errorf("task 1 title: got %q", tasks[0].Title)
	}

	if code := Run([]string{"done", "1"}, opt); code != 0 {
		t.Fatalf("done: exit code %d", code)
	}
	tasks, _ = jsonstore.Load(opt.DB)
	if !tasks[0].Done || tasks[1].Done {
		t.Errorf("after done: %+v", tasks)
	}

	// Repeating done is a no-op, not an error.
	if code := Run([]string{"done", "1"}, opt); code != 0 {
		t.Errorf("done repeat: exit code %d, want 0", code)
	}

	if code := Run([]string{"delete", "1"}, opt); code != 0 {
		t.Fatalf("delete: exit code %d", code)
	}
	tasks, _ = jsonstore.Load(opt.DB)
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("after delete: %+v", tasks)
	}

	if code := Run([]string{"list"}, opt); code != 0 {
		t.Errorf("list: exit code %d", code)
	}
	if code := Run([]string{"ls"}, opt); code != 0 {
		t.Errorf("ls alias: exit code %d", code)
	}
}

func TestMissingIDFailsWithoutMutation(t *testing.T) {
	opt := testOptions(t)
	if code := Run([]string{"add", "only task"}, opt); code != 0 {
		t.Fatal("setup add failed")
	}

	if code := Run([]string{"done", "99"}, opt); code != 1 {
		t.Errorf("done 99: got exit code %d, want 1", code)
	}
	if code := Run([]string{"delete", "99"}, opt); code != 1 {
		t.Errorf("delete 99: got exit code %d, want 1", code)
	}

	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Done {
		t.Errorf("failed commands mutated the file: %+v", tasks)
	}
}

func TestEmptyTitleRejected(t *testing.T) {
	opt := testOptions(t)
	if code := Run([]string{"add", "   "}, opt); code != 2 {
		t.Errorf("add blank title: got exit code %d, want 2", code)
	}
	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("blank title persisted: %+v", tasks)
	}
}

func TestCorruptFileAborts(t *testing.T) {
	opt := testOptions(t)
	if err := os.WriteFile(opt.DB, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := Run([]string{"list"}, opt); code != 1 {
		t.Errorf("list on corrupt file: got exit code %d, want 1", code)
	}
	if code := Run([]string{"add", "x"}, opt); code != 1 {
		t.Errorf("add on corrupt file: got exit code %d, want 1", code)
	}
	// The corrupt file is never overwritten.
	b, err := os.ReadFile(opt.DB)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "not json" {
		t.Error("corrupt file was rewritten")
	}
}
