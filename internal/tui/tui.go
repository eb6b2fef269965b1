// Package tui is the interactive Bubble Tea front end over the same
// JSON data file the CLI uses. Changes accumulate in memory and are
// persisted once on quit.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// listItem adapts a task to bubbles/list.Item.
type listItem struct {
	Task model.Task
}

func (i listItem) label() string {
	box := ui.Current().BoxUnchecked
	if i.Task.Done {
		box = ui.Current().BoxChecked
	}
	return fmt.Sprintf("%s #%d %s", box, i.Task.ID, i.Task.Title)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.label() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Task.Title }

type modelTUI struct {
	list    list.Model
	changed bool
	path    string
	maxID   int // highest ID ever seen; deletions never lower it

	// Inline add
	adding bool
	ti     textinput.Model // shared text input (add & edit)
	addErr string

	// Inline edit
	editing   bool
	editIndex int
	editErr   string

	// Undo support (single-level); restores the deleted task with
	// its original ID.
	canUndo   bool
	undoIndex int
	undoItem  *listItem
}

// itemDelegate renders each task on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	idStr := t.Muted.Render(fmt.Sprintf("#%d", it.Task.ID))
	text := it.Task.Title
	if it.Task.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", box, idStr, text)
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the interactive list and persists changes when quitting.
func Run(path string, tasks []model.Task) error {
	tasks = jsonstore.Sorted(tasks)
	li := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		li = append(li, listItem{Task: t})
	}

	l := list.New(li, itemDelegate{}, 0, 0)

	theme := ui.Current()
	dn, pn := stats(tasks)
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		theme.Title.Render("Todos"),
		theme.Success.Render("✔"), dn,
		theme.Pending.Render("•"), pn,
		theme.Accent.Render("Total"), len(tasks),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Help
	l.Styles.PaginationStyle = theme.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }

	m := modelTUI{
		list:  l,
		path:  path,
		maxID: jsonstore.NextID(tasks) - 1,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New task title..."
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, okModel := finalModel.(modelTUI)
	if !okModel {
		return nil
	}

	if fm.changed {
		out := make([]model.Task, 0, len(fm.list.Items()))
		for _, it := range fm.list.Items() {
			if li, ok := it.(listItem); ok {
				out = append(out, li.Task)
			}
		}
		if err := jsonstore.Save(path, out); err != nil {
			return err
		}
		ui.OK("saved")
	}
	return nil
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		height := ws.Height - 2
		if m.adding || m.editing {
			height = ws.Height - 5
		}
		m.list.SetSize(ws.Width-2, height)
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				m.maxID++
				m.list.InsertItem(m.list.Index()+1, listItem{Task: model.Task{ID: m.maxID, Title: title}})
				m.changed = true
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.editErr = "Title cannot be empty"
					return m, nil
				}
				if m.editIndex >= 0 && m.editIndex < len(m.list.Items()) {
					if li, ok := m.list.Items()[m.editIndex].(listItem); ok {
						li.Task.Title = title
						m.list.SetItem(m.editIndex, li)
						m.changed = true
					}
				}
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				return m, nil
			case "esc":
				m.editing = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					li.Task.Done = !li.Task.Done
					m.list.SetItem(i, li)
					m.changed = true
				}
			}
			return m, nil
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					tmp := li
					m.undoItem = &tmp
					m.undoIndex = i
					m.canUndo = true
				}
				m.list.RemoveItem(i)
				m.changed = true
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			m.ti.Focus()
			return m, nil
		case "e":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					m.editing = true
					m.editIndex = i
					m.ti.SetValue(li.Task.Title)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit task title..."
					m.ti.Focus()
					return m, nil
				}
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				m.list.InsertItem(idx, *m.undoItem)
				m.changed = true
				m.canUndo = false
				m.undoItem = nil
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		t := ui.Current()
		title := "Add new task"
		if m.editing {
			title = "Edit task"
		}
		if m.addErr != "" && m.adding {
			title += " — " + t.Error.Render(m.addErr)
		}
		if m.editErr != "" && m.editing {
			title += " — " + t.Error.Render(m.editErr)
		}
		content = content + "\n" + t.Border.Render(title+"\n"+m.ti.View())
	}
	return ui.Current().Border.Render(content)
}

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
