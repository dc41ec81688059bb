package tui

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/hydration"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/schedule"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
)

type boardModel struct {
	db *sql.DB

	width  int
	height int

	day *service.Day

	selected int
	picking  bool // choosing a meal option for the selected reminder

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	day *service.Day
	err error
}

type completedMsg struct {
	res service.CompleteResult
	err error
}

type undoneMsg struct {
	id  string
	err error
}

type waterMsg struct {
	progress hydration.Progress
	err      error
}

func newBoardModel(db *sql.DB) boardModel {
	return boardModel{
		db:      db,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		day, err := service.LoadDay(m.db, time.Now())
		return loadedMsg{day: day, err: err}
	}
}

func (m boardModel) completeCmd(id, option string) tea.Cmd {
	return func() tea.Msg {
		day, err := service.LoadDay(m.db, time.Now())
		if err != nil {
			return completedMsg{err: err}
		}
		res, err := service.CompleteReminder(m.db, day, id, option)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) undoCmd(id string) tea.Cmd {
	return func() tea.Msg {
		day, err := service.LoadDay(m.db, time.Now())
		if err != nil {
			return undoneMsg{id: id, err: err}
		}
		_, err = service.UndoReminder(m.db, day, id)
		return undoneMsg{id: id, err: err}
	}
}

func (m boardModel) waterCmd(add bool) tea.Cmd {
	return func() tea.Msg {
		day, err := service.LoadDay(m.db, time.Now())
		if err != nil {
			return waterMsg{err: err}
		}
		if add {
			p, err := service.AddWater(m.db, day, 1)
			return waterMsg{progress: p, err: err}
		}
		p, err := service.RemoveWater(m.db, day)
		return waterMsg{progress: p, err: err}
	}
}

func (m boardModel) selectedReminder() (string, bool) {
	if m.day == nil || m.selected < 0 || m.selected >= len(m.day.Catalog) {
		return "", false
	}
	return m.day.Catalog[m.selected].ID, true
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.day = msg.day
		if m.selected >= len(m.day.Catalog) {
			m.selected = len(m.day.Catalog) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		if msg.res.ShiftMinutes != 0 {
			m.lastLog = fmt.Sprintf("Completed %s (%+d min shift applied to the rest of today)", msg.res.Reminder.Title, msg.res.ShiftMinutes)
		} else {
			m.lastLog = "Completed " + msg.res.Reminder.Title
		}
		return m, m.loadCmd()
	case undoneMsg:
		if msg.err != nil {
			m.lastLog = "Undo failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		m.lastLog = "Undid " + msg.id
		return m, m.loadCmd()
	case waterMsg:
		if msg.err != nil {
			m.lastLog = "Hydration: " + msg.err.Error()
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("Hydration: %d/%d glasses (%.1fL)", msg.progress.Glasses, hydration.GoalGlasses, msg.progress.Liters)
		return m, m.loadCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.picking {
		id, ok := m.selectedReminder()
		if !ok {
			m.picking = false
			return m, nil
		}
		switch {
		case key == "esc" || key == "q":
			m.picking = false
			m.lastLog = "Cancelled."
			return m, nil
		case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
			r, _ := plan.Find(m.day.Catalog, id)
			n, _ := strconv.Atoi(key)
			if n > len(r.Options) {
				m.lastLog = fmt.Sprintf("Pick 1-%d.", len(r.Options))
				return m, nil
			}
			m.picking = false
			m.lastLog = "Completing " + r.Title + "…"
			return m, m.completeCmd(id, key)
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.day != nil && m.selected < len(m.day.Catalog)-1 {
			m.selected++
		}
		return m, nil
	case "c", " ", "enter":
		id, ok := m.selectedReminder()
		if !ok {
			return m, nil
		}
		r, _ := plan.Find(m.day.Catalog, id)
		if _, done := m.day.Completions.Completions[id]; done {
			m.lastLog = "Already completed."
			return m, nil
		}
		if len(r.Options) > 1 {
			m.picking = true
			m.lastLog = "Pick an option (1-" + strconv.Itoa(len(r.Options)) + "), esc to cancel."
			return m, nil
		}
		m.lastLog = "Completing " + r.Title + "…"
		return m, m.completeCmd(id, "1")
	case "u":
		id, ok := m.selectedReminder()
		if !ok {
			return m, nil
		}
		if _, done := m.day.Completions.Completions[id]; !done {
			m.lastLog = "Not completed yet."
			return m, nil
		}
		return m, m.undoCmd(id)
	case "w":
		return m, m.waterCmd(true)
	case "W":
		return m, m.waterCmd(false)
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.day == nil {
		return "Loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderSchedule())
	b.WriteString("\n")
	b.WriteString(m.renderSidebar())
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) renderHeader() string {
	d := m.day
	workout := d.Workout.Name
	icon := ui.IconWorkout
	if d.Workout.IsRest() {
		icon = ui.IconRest
	}
	return ui.Heading(icon, fmt.Sprintf("%s | %s | %s shift",
		timeutil.FormatDateLong(d.DateKey), workout, d.Shift))
}

func (m boardModel) renderSchedule() string {
	d := m.day
	lines := []string{ui.H2.Render("Today's Schedule")}
	for i, r := range d.Catalog {
		cursor := "  "
		if i == m.selected {
			cursor = ui.SelectedRow.Render("> ")
		}
		_, done := d.Completions.Completions[r.ID]
		clock := timeutil.Format12Hour(schedule.DisplayTime(d.Completions, r))
		mark := ui.CheckIcon(done)
		title := r.Title
		if done {
			title = ui.Muted.Render(title)
		}
		adjusted := ""
		if !done && schedule.IsAdjusted(d.Completions, r.ID) {
			adjusted = ui.Warn.Render(" (adjusted)")
		}
		line := fmt.Sprintf("%s%s %s  %s %s%s", cursor, mark, clock, r.Icon, title, adjusted)
		lines = append(lines, line)
		if i == m.selected && m.picking {
			rem, _ := plan.Find(d.Catalog, r.ID)
			for j, opt := range rem.Options {
				lines = append(lines, fmt.Sprintf("      %d. %s (%d kcal)", j+1, opt.Label, opt.Macros.Calories))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderSidebar() string {
	d := m.day
	goals := plan.DailyMacroGoals
	progress := hydration.ProgressOf(d.Hydration)
	lines := []string{
		ui.H2.Render("Macros"),
		ui.MacroLine("Calories", d.Macros.Consumed.Calories, goals.Calories, ""),
		ui.MacroLine("Protein", d.Macros.Consumed.Protein, goals.Protein, "g"),
		ui.MacroLine("Carbs", d.Macros.Consumed.Carbs, goals.Carbs, "g"),
		ui.MacroLine("Fats", d.Macros.Consumed.Fats, goals.Fats, "g"),
		"",
		fmt.Sprintf("%s %d/%d glasses %s %.1fL",
			ui.IconWater, progress.Glasses, hydration.GoalGlasses,
			ui.ProgressBar(progress.Glasses, hydration.GoalGlasses, 14), progress.Liters),
		"",
		ui.Dim.Render("j/k move · c complete · u undo · w/W water · r refresh · q quit"),
	}
	return strings.Join(lines, "\n")
}
