package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/habit"
	"github.com/stridecoach/stride/internal/models"
	"github.com/stridecoach/stride/internal/tui/components/habits"
	"github.com/stridecoach/stride/internal/utils"

	"github.com/google/uuid"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.habitsModel.SetSize(msg.Width-4, msg.Height-9)
		return m, nil

	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		m.formError = ""
		return m, m.form.Init()

	case habits.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case habits.DeleteHabitMsg:
		if h, err := m.store.GetHabit(msg.ID); err == nil {
			m.habitToDelete = h
			m.state = StateConfirmDelete
		}
		return m, nil

	case habits.RestoreHabitMsg:
		if err := m.store.RestoreHabit(msg.ID); err == nil {
			m.statusMessage = "Habit restored."
			m.refreshHabits()
		}
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateHabits(msg)
	}
}

func (m Model) updateHabits(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Deleted):
			m.showDeleted = !m.showDeleted
			m.refreshHabits()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.habitsModel, cmd = m.habitsModel.Update(msg)
	return m, cmd
}

// toggleHabit flips today's completion for the habit and surfaces the outcome
func (m *Model) toggleHabit(id string) {
	h, err := m.store.GetHabit(id)
	if err != nil {
		m.formError = err.Error()
		return
	}

	now := storeNow(m.store)
	today := now.Format(constants.DateFormat)
	updated, outcome, err := habit.ToggleCompletion(h, today, now)
	if err != nil {
		m.formError = err.Error()
		return
	}
	if err := m.store.UpdateHabit(updated); err != nil {
		m.formError = err.Error()
		return
	}

	m.formError = ""
	if outcome.Completed {
		m.statusMessage = fmt.Sprintf("Completed %q. Streak: %d", h.Name, outcome.NewStreak)
		if outcome.IsNewRecord {
			m.statusMessage = fmt.Sprintf("New record! %q streak is now %d", h.Name, updated.LongestStreak)
		}
	} else {
		m.statusMessage = fmt.Sprintf("Marked %q incomplete", h.Name)
	}
	m.refreshHabits()
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.createHabit(); err != nil {
			// Stay in form state to allow retry, ESC cancels
			m.formError = err.Error()
			m.form.State = huh.StateNormal
		} else {
			m.formError = ""
			m.statusMessage = fmt.Sprintf("Added habit %q", m.habitForm.Name)
			m.refreshHabits()
			m.state = StateHabits
		}
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) createHabit() error {
	if _, err := m.store.GetHabitByName(m.habitForm.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", m.habitForm.Name)
	}

	freq := models.Frequency{Type: models.FrequencyDaily}
	if m.habitForm.IsWeekly {
		days, err := models.ParseWeekdayList(strings.Join(m.habitForm.Days, ","))
		if err != nil {
			return err
		}
		freq = models.Frequency{Type: models.FrequencyWeekly, Days: days}
	}
	if err := habit.ValidateFrequency(freq); err != nil {
		return err
	}

	h := models.Habit{
		ID:           uuid.New().String(),
		Name:         m.habitForm.Name,
		Frequency:    freq,
		Progress:     make(map[string]models.ProgressEntry),
		ReminderTime: m.habitForm.Reminder,
		CreatedAt:    storeNow(m.store),
	}
	return m.store.AddHabit(h)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteHabit(m.habitToDelete.ID); err != nil {
				m.formError = err.Error()
			} else {
				m.statusMessage = fmt.Sprintf("Deleted %q (restore with 'D' then 'r')", m.habitToDelete.Name)
				m.refreshHabits()
			}
			m.state = StateHabits
		case "n", "N", "esc":
			m.state = StateHabits
		}
	}
	return m, nil
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Only on specific weekdays?").
				Value(&f.IsWeekly),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Weekdays").
				Options(
					huh.NewOption("Monday", "mon"),
					huh.NewOption("Tuesday", "tue"),
					huh.NewOption("Wednesday", "wed"),
					huh.NewOption("Thursday", "thu"),
					huh.NewOption("Friday", "fri"),
					huh.NewOption("Saturday", "sat"),
					huh.NewOption("Sunday", "sun"),
				).
				Value(&f.Days).
				Validate(func(days []string) error {
					if f.IsWeekly && len(days) == 0 {
						return fmt.Errorf("pick at least one weekday")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return !f.IsWeekly }),
		huh.NewGroup(
			huh.NewInput().
				Title("Reminder time (HH:MM, optional)").
				Value(&f.Reminder).
				Validate(func(s string) error {
					if s != "" && !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("expected HH:MM")
					}
					return nil
				}),
		),
	)
}
