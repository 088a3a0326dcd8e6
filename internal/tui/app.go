// Package tui provides the interactive Bubble Tea dashboard for lifedash.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedash/internal/config"
	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/scoring"
	"github.com/theirongolddev/lifedash/internal/todo"
	"github.com/theirongolddev/lifedash/internal/tui/components"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg carries a fresh snapshot of everything the tabs display.
type dataLoadedMsg struct {
	rec     model.DailyRecord
	preview scoring.Result
	history []dashboard.HistoryEntry
	pref    dashboard.Theme
	err     error
}

// opDoneMsg reports the outcome of a mutating dashboard call.
type opDoneMsg struct {
	status string
	err    error
}

// App is the root Bubble Tea model.
type App struct {
	svc *dashboard.Service
	cfg config.Config

	// Data
	rec     model.DailyRecord
	preview scoring.Result
	history []dashboard.HistoryEntry
	pref    dashboard.Theme
	loaded  bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	busy      bool // a dashboard call is in flight
	status    string
	statusErr bool
	spinner   spinner.Model

	// Per-tab state
	habitCursor int
	mood        moodState
	meals       mealsState
	todos       todosState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues // shared across App copies; the form writes through it
	needSetup bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model over svc.
func NewApp(svc *dashboard.Service, cfg config.Config, needSetup bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		svc:       svc,
		cfg:       cfg,
		needSetup: needSetup,
		spinner:   sp,
		todos:     newTodosState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
		loadCmd(a.svc, a.cfg.General.HistoryDays),
	)
}

// loadCmd reads the record, a score preview, history and the theme.
func loadCmd(svc *dashboard.Service, days int) tea.Cmd {
	return func() tea.Msg {
		var msg dataLoadedMsg
		if msg.rec, msg.err = svc.LoadRecord(); msg.err != nil {
			return msg
		}
		if msg.preview, msg.err = svc.Preview(); msg.err != nil {
			return msg
		}
		if msg.history, msg.err = svc.History(days); msg.err != nil {
			return msg
		}
		msg.pref, msg.err = svc.Theme()
		return msg
	}
}

// run executes fn as a command; its status string is shown when it
// succeeds. Only one call runs at a time: keys that would start another
// are ignored until the data reload after it lands.
func (a *App) run(fn func() (string, error)) tea.Cmd {
	a.busy = true
	return func() tea.Msg {
		status, err := fn()
		return opDoneMsg{status: status, err: err}
	}
}

// runOK is run for calls with a fixed status line.
func (a *App) runOK(status string, fn func() error) tea.Cmd {
	return a.run(func() (string, error) {
		return status, fn()
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.meals.form != nil {
			a.meals.form = a.meals.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil || a.meals.form != nil || a.todos.adding {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case dataLoadedMsg:
		a.busy = false
		if msg.err != nil {
			a.setStatus(msg.err.Error(), true)
			a.loaded = true
			return a, nil
		}
		first := !a.loaded
		a.loaded = true
		selID := a.selectedTodoID()
		a.rec = msg.rec
		a.preview = msg.preview
		a.history = msg.history
		a.pref = msg.pref
		theme.SetActive(a.cfg.Appearance.Palette, a.pref == dashboard.ThemeDark)
		a.syncTabs(selID)

		if first && a.needSetup {
			vals := SetupValuesFrom(a.cfg, a.pref == dashboard.ThemeDark)
			a.setupVals = &vals
			a.setupForm = NewSetupForm(a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case opDoneMsg:
		if msg.err != nil {
			a.setStatus(msg.err.Error(), true)
		} else if msg.status != "" {
			a.setStatus(msg.status, false)
		}
		return a, loadCmd(a.svc, a.cfg.General.HistoryDays)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward everything else (cursor blinks etc.) to an active form or input.
	switch {
	case a.setupForm != nil:
		return a.updateSetupForm(msg)
	case a.meals.form != nil:
		return a.updateMealsForm(msg)
	case a.todos.adding:
		var cmd tea.Cmd
		a.todos.input, cmd = a.todos.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	// Forms and text input take every key while open.
	switch {
	case a.setupForm != nil:
		return a.updateSetupForm(msg)
	case a.meals.form != nil:
		return a.updateMealsForm(msg)
	case a.todos.adding:
		return a.updateTodoInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if a.busy {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	// Tab-specific bindings win over global ones.
	var (
		handled bool
		cmd     tea.Cmd
	)
	switch a.activeTab {
	case components.TabHabits:
		handled, cmd = a.updateHabitsKey(key)
	case components.TabMood:
		handled, cmd = a.updateMoodKey(key)
	case components.TabMeals:
		handled, cmd = a.updateMealsKey(key)
	case components.TabTodos:
		handled, cmd = a.updateTodosKey(key)
	}
	if handled {
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "s":
		svc := a.svc
		cmd = a.run(func() (string, error) {
			sc, err := svc.ComputeScore()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Scored %s %d%% on %s", sc.Grade, sc.Percentage, sc.Date), nil
		})
		return a, cmd
	case "T":
		svc := a.svc
		cmd = a.run(func() (string, error) {
			next, err := svc.ToggleTheme()
			return "Theme " + string(next), err
		})
		return a, cmd
	case "r":
		a.busy = true
		return a, loadCmd(a.svc, a.cfg.General.HistoryDays)
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

// syncTabs resets per-tab drafts and cursors to the freshly loaded data.
// The to-do cursor follows the item it was on when that item still exists.
func (a *App) syncTabs(todoID string) {
	a.habitCursor = clamp(a.habitCursor, 0, len(a.svc.Habits())-1)
	a.mood.reset(a.rec)
	if i := todo.IndexOf(a.rec.Todos, todoID); i >= 0 {
		a.todos.cursor = i
	}
	a.todos.cursor = clamp(a.todos.cursor, 0, len(a.rec.Todos)-1)
}

func (a App) selectedTodoID() string {
	if c := a.todos.cursor; c >= 0 && c < len(a.rec.Todos) {
		return a.rec.Todos[c].ID
	}
	return ""
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupForm = nil
		a.needSetup = false
		a.cfg = a.setupVals.Apply(a.cfg)
		cfg := a.cfg
		pref := dashboard.ThemeLight
		if a.setupVals.Dark {
			pref = dashboard.ThemeDark
		}
		svc := a.svc
		cmd = a.runOK("Setup saved to "+config.Path(), func() error {
			if err := config.Save(cfg); err != nil {
				return err
			}
			return svc.SetTheme(pref)
		})
		return a, cmd
	case huh.StateAborted:
		a.setupForm = nil
		a.needSetup = false
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  lifedash needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := logoStyle.Render("◈ lifedash") + subtitleStyle.Render(" · daily dashboard") + "\n\n" +
		a.spinner.View() + subtitleStyle.Render(" Loading today...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"t h m e d", "Jump to tab"},
			{"1-5", "Jump to tab"},
			{"tab", "Next tab"},
			{"j k", "Move cursor"},
		}},
		{"Editing", [][2]string{
			{"space", "Toggle habit / to-do"},
			{"← → + -", "Adjust mood or stress"},
			{"enter", "Save mood / edit meals"},
			{"p", "Simple meal plan"},
			{"a", "Add to-do"},
			{"x c", "Delete to-do / clear done"},
		}},
		{"Global", [][2]string{
			{"s", "Compute and save score"},
			{"T", "Toggle dark/light"},
			{"r", "Reload"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.status, a.statusErr)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case components.TabToday:
		content = a.renderTodayTab(cw, contentH)
	case components.TabHabits:
		content = a.renderHabitsTab(cw)
	case components.TabMood:
		content = a.renderMoodTab(cw)
	case components.TabMeals:
		content = a.renderMealsTab(cw)
	case components.TabTodos:
		content = a.renderTodosTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // one-column separator
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
