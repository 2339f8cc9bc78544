package habits

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/habit"
	"github.com/stridecoach/stride/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type RestoreHabitMsg struct {
	ID string
}

type Item struct {
	Habit     models.Habit
	Completed bool
	Eligible  bool
	Weekly    int
	IsDeleted bool
}

func (i Item) Title() string {
	title := i.Habit.Name
	switch {
	case i.IsDeleted:
		title = "[DELETED] " + title
	case !i.Eligible:
		title = "- " + title
	case i.Completed:
		title = "✓ " + title
	default:
		title = "○ " + title
	}
	return title
}

func (i Item) Description() string {
	if i.IsDeleted {
		return "can restore with 'r'"
	}
	desc := fmt.Sprintf("streak %d (best %d) · week %d%%", i.Habit.CurrentStreak, i.Habit.LongestStreak, i.Weekly)
	if !i.Eligible {
		return desc + " · not scheduled today"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t", " "),
			key.WithHelp("t", "toggle today"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	now  time.Time
}

func New(habits []models.Habit, now time.Time, width, height int) Model {
	l := list.New(buildItems(habits, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Restore}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Restore}
	}

	return Model{list: l, keys: keys, now: now}
}

func buildItems(habits []models.Habit, now time.Time) []list.Item {
	today := now.Format(constants.DateFormat)
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		isDeleted := h.DeletedAt != nil
		entry, ok := h.Progress[today]
		items[i] = Item{
			Habit:     h,
			Completed: ok && entry.Completed && !isDeleted,
			Eligible:  habit.IsEligibleDay(now, h.Frequency),
			Weekly:    habit.ComputeWeeklyCompletion(h.Progress, h.Frequency, now),
			IsDeleted: isDeleted,
		}
	}
	return items
}

func (m *Model) SetHabits(habits []models.Habit, now time.Time) {
	m.now = now
	m.list.SetItems(buildItems(habits, now))
}

// Selected returns the habit under the cursor
func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsDeleted {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsDeleted {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok && i.IsDeleted {
				return m, func() tea.Msg { return RestoreHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
