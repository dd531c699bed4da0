// Package tui implements the interactive task editor on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ltask/internal/service"
)

type focus int

const (
	focusList focus = iota
	focusAdd
	focusEdit
)

const (
	title       = "To-Do List"
	emptyText   = "No tasks yet."
	rejectedMsg = "Task text cannot be empty"
	charLimit   = 256
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model. Every change goes through the service, and
// the list shown is always the service's latest snapshot.
type Model struct {
	ctx    context.Context
	svc    service.Service
	tasks  []service.Task
	cursor int
	focus  focus

	input  textinput.Model // new task
	edit   textinput.Model // task being edited
	editID service.ID

	// The stored text and the input's rendering of it. The input flattens
	// tabs and newlines, so an untouched buffer saves origText instead.
	origText  string
	origInput string

	status string
}

// New creates a model over svc.
func New(ctx context.Context, svc service.Service) Model {
	in := textinput.New()
	in.Placeholder = "Enter a new task"
	in.CharLimit = charLimit
	in.Prompt = "+ "

	// Existing text may be longer than anything typed here.
	ed := textinput.New()
	ed.CharLimit = 0
	ed.Prompt = ""

	m := Model{
		ctx:    ctx,
		svc:    svc,
		input:  in,
		edit:   ed,
		status: "Press 'a' to add, 'x' to toggle, 'e' to edit, 'd' to delete.",
	}
	m.refresh()
	return m
}

// Run starts the interactive editor and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, svc service.Service, out io.Writer) error {
	p := tea.NewProgram(New(ctx, svc), tea.WithContext(ctx), tea.WithOutput(out))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.focus {
	case focusAdd:
		return m.updateAdd(keyMsg)
	case focusEdit:
		return m.updateEdit(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "a":
		m.focus = focusAdd
		m.status = "Type a task and press Enter; Esc to go back"
		return m, m.input.Focus()
	case "x", " ":
		if t, ok := m.selected(); ok {
			if _, err := m.svc.ToggleDone(m.ctx, t.ID); err != nil {
				return m.failed(err), nil
			}
			m.refresh()
			m.status = "Toggled task"
		}
	case "d":
		if t, ok := m.selected(); ok {
			if _, err := m.svc.DeleteTask(m.ctx, t.ID); err != nil {
				return m.failed(err), nil
			}
			m.refresh()
			m.status = "Deleted task"
		}
	case "e", "enter":
		if t, ok := m.selected(); ok {
			if !t.Editing {
				if _, err := m.svc.BeginEdit(m.ctx, t.ID); err != nil {
					return m.failed(err), nil
				}
				m.refresh()
			}
			return m.startEdit(t)
		}
	case "c":
		if t, ok := m.selected(); ok && t.Editing {
			if _, err := m.svc.CancelEdit(m.ctx, t.ID); err != nil {
				return m.failed(err), nil
			}
			m.refresh()
			m.status = "Edit cancelled"
		}
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.focus = focusList
		m.status = ""
		return m, nil
	case "enter":
		_, ok, err := m.svc.AddTask(m.ctx, m.input.Value())
		if err != nil {
			return m.failed(err), nil
		}
		if !ok {
			m.status = rejectedMsg
			return m, nil
		}
		m.input.SetValue("")
		m.refresh()
		m.cursor = 0
		m.status = "Added task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if _, err := m.svc.CancelEdit(m.ctx, m.editID); err != nil {
			return m.failed(err), nil
		}
		m = m.endEdit()
		m.status = "Edit cancelled"
		return m, nil
	case "enter":
		text := m.edit.Value()
		if text == m.origInput {
			text = m.origText
		}
		ok, err := m.svc.SaveEdit(m.ctx, m.editID, text)
		if err != nil {
			return m.failed(err), nil
		}
		if !ok {
			m.status = rejectedMsg
			return m, nil
		}
		m = m.endEdit()
		m.status = "Saved"
		return m, nil
	default:
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		return m, cmd
	}
}

func (m Model) startEdit(t service.Task) (tea.Model, tea.Cmd) {
	m.editID = t.ID
	m.edit.SetValue(t.Text)
	m.edit.CursorEnd()
	m.origText = t.Text
	m.origInput = m.edit.Value()
	m.focus = focusEdit
	m.status = "Enter to save, Esc to cancel"
	return m, m.edit.Focus()
}

func (m Model) endEdit() Model {
	m.edit.Blur()
	m.edit.SetValue("")
	m.editID = 0
	m.origText, m.origInput = "", ""
	m.focus = focusList
	m.refresh()
	return m
}

// failed shows a storage error. The in-memory change stays applied.
func (m Model) failed(err error) Model {
	m.refresh()
	m.status = fmt.Sprintf("save failed: %v", err)
	return m
}

func (m *Model) refresh() {
	m.tasks = m.svc.Tasks()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (service.Task, bool) {
	if len(m.tasks) == 0 {
		return service.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(emptyText)
		b.WriteString("\n")
	}
	for i, t := range m.tasks {
		cursor := " "
		if i == m.cursor && m.focus != focusAdd {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(checkbox(t.Done))
		b.WriteString(" ")
		switch {
		case m.focus == focusEdit && t.ID == m.editID:
			b.WriteString(m.edit.View())
		case t.Done:
			b.WriteString(doneStyle.Render(t.Text))
		default:
			b.WriteString(t.Text)
		}
		if t.Editing && !(m.focus == focusEdit && t.ID == m.editID) {
			b.WriteString("  (editing)")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(help(m.focus))
	b.WriteString("\n")
	return b.String()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func help(f focus) string {
	switch f {
	case focusAdd:
		return "enter add • esc back • ctrl+c quit"
	case focusEdit:
		return "enter save • esc cancel • ctrl+c quit"
	default:
		return "↑/↓ move • a add • x toggle • e edit • c cancel edit • d delete • q quit"
	}
}
