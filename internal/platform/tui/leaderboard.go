package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// maxResults is the number of session results listed on the game over screen.
const maxResults = 5

// Leaderboard lists the best finished games of the session.
type Leaderboard struct {
	store   *storage.Store
	results []storage.Result
	table   table.Model
	latest  int64 // ID of the game that just ended
}

// NewLeaderboard creates a leaderboard backed by the session store.
// A nil store yields an always-empty leaderboard.
func NewLeaderboard(store *storage.Store) Leaderboard {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 20},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxResults+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Leaderboard{store: store, table: t}
}

// Record saves a finished game and refreshes the rows. The new result
// is highlighted when it makes the list.
func (l *Leaderboard) Record(player string, score, level int) error {
	if l.store == nil {
		return nil
	}
	id, err := l.store.SaveResult(player, score, level)
	if err != nil {
		return err
	}
	l.latest = id
	return l.Refresh()
}

// Refresh reloads the top results from the store.
func (l *Leaderboard) Refresh() error {
	if l.store == nil {
		l.results = nil
		l.updateTableRows()
		return nil
	}

	results, err := l.store.TopResults(maxResults)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}
	l.results = results
	l.updateTableRows()
	return nil
}

// updateTableRows updates the table with current results.
func (l *Leaderboard) updateTableRows() {
	rows := make([]table.Row, len(l.results))
	cursor := 0
	for i, r := range l.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
		}
		if r.ID == l.latest {
			cursor = i
		}
	}
	l.table.SetRows(rows)
	l.table.SetCursor(cursor)
}

// Results returns the listed results.
func (l Leaderboard) Results() []storage.Result {
	return l.results
}

// View renders the table, or nothing before the first finished game.
func (l Leaderboard) View() string {
	if len(l.results) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("SESSION BEST"),
		tableStyle.Render(l.table.View()),
	)
}
