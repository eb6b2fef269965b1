package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/tui"
	"github.com/idilsaglam/tasklist/internal/ui"
	"github.com/idilsaglam/tasklist/internal/web"
)

// Options carries the resolved configuration into the dispatcher.
type Options struct {
	DB    string // data file path
	Host  string // web default host
	Port  int    // web default port
	Group bool   // list grouped by pending/done
}

// FromConfig maps a loaded config onto dispatcher options.
func FromConfig(cfg *config.Config) Options {
	return Options{
		DB:    cfg.Store.DB,
		Host:  cfg.Web.Host,
		Port:  cfg.Web.Port,
		Group: cfg.UI.Group,
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "list", "ls":
		return doList(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: todo add <title...>")
			return 2
		}
		return doAdd(strings.Join(a, " "), opt)

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: todo done <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doDone(id, opt)

	case "delete", "rm":
		if len(a) != 1 {
			ui.Fail("usage: todo delete <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("delete: not a number: " + a[0])
			return 2
		}
		return doDelete(id, opt)

	case "web":
		return doWeb(a, opt)

	case "tui":
		return doTUI(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a tiny task list with CLI, web, and TUI fronts

Usage:
  todo [--db <path>] [--theme <name>] [--group] <subcommand> [args]

Subcommands:
  add <title...>            Add a new task (title can be multiple words)
  list                      List tasks in ascending ID order
  done <id>                 Mark the task with the given ID as done
  delete <id>               Delete the task with the given ID
  web [--host H] [--port P] Serve a tiny web UI (default 127.0.0.1:8000)
  tui                       Interactive terminal list

Examples:
  todo add "Buy milk"
  todo list
  todo done 2
  todo delete 3
  todo --db work.json web --port 8080
`)
}

// -------------- subcommand impls ----------------

func doList(opt Options) int {
	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	tasks = jsonstore.Sorted(tasks)

	t := ui.Current()
	d, p := stats(tasks)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(tasks),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(title string, opt Options) int {
	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	tasks, task, err := jsonstore.Add(tasks, title)
	if err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	if err := jsonstore.Save(opt.DB, tasks); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("added #%d: %s", task.ID, task.Title))
	return 0
}

func doDone(id int, opt Options) int {
	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	tasks, err = jsonstore.MarkDone(tasks, id)
	if err != nil {
		ui.Fail("done: " + err.Error())
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `todo list` to see valid IDs"))
		return 1
	}
	if err := jsonstore.Save(opt.DB, tasks); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("marked #%d as done", id))
	return 0
}

func doDelete(id int, opt Options) int {
	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	task, err := jsonstore.Get(tasks, id)
	if err != nil {
		ui.Fail("delete: " + err.Error())
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `todo list` to see valid IDs"))
		return 1
	}
	tasks, err = jsonstore.Delete(tasks, id)
	if err != nil {
		ui.Fail("delete: " + err.Error())
		return 1
	}
	if err := jsonstore.Save(opt.DB, tasks); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("deleted #%d: %s", task.ID, task.Title))
	return 0
}

func doWeb(args []string, opt Options) int {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	host := fs.String("host", opt.Host, "host to bind")
	port := fs.Int("port", opt.Port, "port to bind")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	srv := web.New(opt.DB, fmt.Sprintf("%s:%d", *host, *port))
	if err := srv.ListenAndServe(); err != nil {
		ui.Fail("web: " + err.Error())
		return 1
	}
	return 0
}

func doTUI(opt Options) int {
	tasks, err := jsonstore.Load(opt.DB)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if err := tui.Run(opt.DB, tasks); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func stats(tasks []model.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(tasks []model.Task) []string {
	t := ui.Current()
	if len(tasks) == 0 {
		return []string{t.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		box := t.BoxUnchecked
		style := t.Muted
		if task.Done {
			box, style = t.BoxChecked, t.Success
		}
		title := task.Title
		if len(title) > 80 {
			title = title[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%3d.", task.ID)), style.Render(box), title))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, task := range tasks {
		if task.Done {
			done = append(done, task)
		} else {
			pend = append(pend, task)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
