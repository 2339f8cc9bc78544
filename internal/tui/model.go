package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/stridecoach/stride/internal/models"
	"github.com/stridecoach/stride/internal/storage"
	"github.com/stridecoach/stride/internal/tui/components/habits"
	"github.com/stridecoach/stride/internal/utils"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

type HabitFormModel struct {
	Name     string
	IsWeekly bool
	Days     []string
	Reminder string
}

type Model struct {
	store           storage.Provider
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitsModel     habits.Model
	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDelete   models.Habit
	showDeleted     bool
	statusMessage   string
	formError       string
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider) Model {
	now := storeNow(store)
	habitsList, _ := store.GetAllHabits(false)

	return Model{
		store:       store,
		state:       StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(habitsList, now, 0, 0),
	}
}

// storeNow resolves "now" in the configured timezone, falling back to local
// time when settings are unreadable.
func storeNow(store storage.Provider) time.Time {
	settings, err := store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

func (m *Model) refreshHabits() {
	habitsList, err := m.store.GetAllHabits(m.showDeleted)
	if err != nil {
		m.formError = err.Error()
		return
	}
	m.habitsModel.SetHabits(habitsList, storeNow(m.store))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Quit, m.keys.Help, m.keys.Deleted}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Quit, m.keys.Help, m.keys.Deleted},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
