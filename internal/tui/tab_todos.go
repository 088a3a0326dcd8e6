package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/tui/components"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// todosState tracks the to-do list cursor and the add-item input.
type todosState struct {
	cursor int
	adding bool
	input  textinput.Model
}

func newTodosState() todosState {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Prompt = "+ "
	return todosState{input: ti}
}

func (a *App) updateTodosKey(key string) (bool, tea.Cmd) {
	n := len(a.rec.Todos)
	svc := a.svc
	idx := a.todos.cursor

	switch key {
	case "j", "down":
		a.todos.cursor = clamp(a.todos.cursor+1, 0, n-1)
		return true, nil
	case "k", "up":
		a.todos.cursor = clamp(a.todos.cursor-1, 0, n-1)
		return true, nil
	case "g":
		a.todos.cursor = 0
		return true, nil
	case "G":
		a.todos.cursor = clamp(n-1, 0, n-1)
		return true, nil
	case "a", "n":
		a.todos.adding = true
		a.todos.input.SetValue("")
		a.todos.input.Width = a.contentWidth() - 10
		return true, tea.Batch(a.todos.input.Focus(), textinput.Blink)
	case " ", "space", "enter":
		if n == 0 {
			return true, nil
		}
		return true, a.runOK("", func() error {
			_, err := svc.ToggleTodo(idx)
			return err
		})
	case "x", "delete", "backspace":
		if n == 0 {
			return true, nil
		}
		text := a.rec.Todos[idx].Text
		return true, a.runOK("Deleted "+cli.Truncate(text, 30), func() error {
			_, err := svc.DeleteTodo(idx)
			return err
		})
	case "c":
		return true, a.runOK("Cleared completed to-dos", func() error {
			_, err := svc.ClearTodos(true)
			return err
		})
	}
	return false, nil
}

func (a App) updateTodoInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.todos.adding = false
		a.todos.input.Blur()
		return a, nil
	case "enter":
		text := a.todos.input.Value()
		a.todos.adding = false
		a.todos.input.Blur()
		if strings.TrimSpace(text) == "" {
			return a, nil
		}
		a.todos.cursor = len(a.rec.Todos)
		svc := a.svc
		cmd := a.runOK("Added "+cli.Truncate(text, 30), func() error {
			_, err := svc.AddTodo(text)
			return err
		})
		return a, cmd
	}

	var cmd tea.Cmd
	a.todos.input, cmd = a.todos.input.Update(msg)
	return a, cmd
}

func (a App) renderTodosTab(cw, h int) string {
	t := theme.Active
	todos := a.rec.Todos

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Strikethrough(true)
	checkStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	textW := innerW - 10

	// Card border, title, blank, input and hint lines.
	visible := h - 7
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if a.todos.cursor >= visible {
		offset = a.todos.cursor - visible + 1
	}

	var b strings.Builder
	if len(todos) == 0 {
		b.WriteString(hintStyle.Render("Nothing on the list. Press a to add a to-do."))
		b.WriteString("\n")
	}
	for i := offset; i < len(todos) && i < offset+visible; i++ {
		td := todos[i]
		style := rowStyle
		cursor := "  "
		if i == a.todos.cursor && !a.todos.adding {
			style = selStyle
			cursor = "▸ "
		}
		box := style.Render("[ ]")
		text := style.Render(cli.Truncate(td.Text, textW))
		if td.Done {
			box = checkStyle.Render("[x]")
			text = doneStyle.Render(cli.Truncate(td.Text, textW))
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%2d ", cursor, i+1)) + box + style.Render(" ") + text)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.todos.adding {
		b.WriteString(a.todos.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter add · esc cancel"))
	} else {
		b.WriteString(hintStyle.Render("a add · space toggle · x delete · c clear done"))
	}

	title := fmt.Sprintf("To-dos  %d/%d done", a.preview.TodosDone, a.preview.TodosTotal)
	return components.ContentCard(title, b.String(), cw)
}
