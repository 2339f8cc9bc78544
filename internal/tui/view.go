package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/habit"
	"github.com/stridecoach/stride/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewHabits()
	}

	var status string
	if m.formError != "" {
		status = errorStyle.Render(m.formError)
	} else if m.statusMessage != "" {
		status = m.statusMessage
		if strings.HasPrefix(m.statusMessage, "New record!") {
			status = recordStyle.Render(m.statusMessage)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("stride"),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewHabits() string {
	sections := []string{m.habitsModel.View()}
	if item, ok := m.habitsModel.Selected(); ok && !item.IsDeleted {
		sections = append(sections, renderWeekStrip(item.Habit, storeNow(m.store)))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewConfirmDelete() string {
	return docStyle.Render(fmt.Sprintf(
		"%s\n\nDelete habit %q? This is a soft delete.\n\n[y] yes  [n] no",
		dangerStyle.Render("Confirm delete"),
		m.habitToDelete.Name,
	))
}

type dayCell int

const (
	dayCompleted dayCell = iota
	dayMissed
	dayPending
	dayIneligible
)

// weekCells classifies each day of the current week (Monday first) for the
// week strip: completed, missed, still pending (today or future), or not
// scheduled.
func weekCells(h models.Habit, now time.Time) []dayCell {
	start := habit.StartOfWeek(now)
	today := now.Format(constants.DateFormat)

	cells := make([]dayCell, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		dayStr := d.Format(constants.DateFormat)
		switch {
		case !habit.IsEligibleDay(d, h.Frequency):
			cells[i] = dayIneligible
		case completedOn(h, dayStr):
			cells[i] = dayCompleted
		case dayStr >= today:
			cells[i] = dayPending
		default:
			cells[i] = dayMissed
		}
	}
	return cells
}

func completedOn(h models.Habit, day string) bool {
	entry, ok := h.Progress[day]
	return ok && entry.Completed
}

func renderWeekStrip(h models.Habit, now time.Time) string {
	start := habit.StartOfWeek(now)
	today := now.Format(constants.DateFormat)
	cells := weekCells(h, now)

	var days []string
	for i, cell := range cells {
		d := start.AddDate(0, 0, i)
		label := d.Weekday().String()[:2]

		var marker string
		var style lipgloss.Style
		switch cell {
		case dayCompleted:
			marker, style = "✓", completedDayStyle
		case dayMissed:
			marker, style = "✗", missedDayStyle
		case dayPending:
			marker, style = "·", lipgloss.NewStyle()
		default:
			marker, style = " ", ineligibleDayStyle
		}

		col := style.Render(fmt.Sprintf("%s %s", label, marker))
		if d.Format(constants.DateFormat) == today {
			col = todayDayStyle.Render(col)
		}
		days = append(days, col)
	}

	weekly := habit.ComputeWeeklyCompletion(h.Progress, h.Frequency, now)
	return fmt.Sprintf("This week: %s   %d%%", strings.Join(days, "  "), weekly)
}
