package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SpeedTable renders the score-to-delay curve as a static table.
func SpeedTable(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	columns := []table.Column{
		{Title: "Score", Width: 8},
		{Title: "Delay", Width: 8},
		{Title: "Moves/s", Width: 8},
	}

	curve := snake.SpeedCurve()
	rows := make([]table.Row, len(curve))
	for i, step := range curve {
		rows[i] = table.Row{
			fmt.Sprintf("%d+", step.MinScore),
			step.Delay.String(),
			fmt.Sprintf("%.1f", float64(time.Second)/float64(step.Delay)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true).
		Padding(0, 1)
	s.Cell = r.NewStyle().Padding(0, 1)
	s.Selected = r.NewStyle()
	t.SetStyles(s)

	return t.View()
}
