package tui

import (
	"database/sql"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunBoard starts the interactive daily board on out.
func RunBoard(db *sql.DB, out io.Writer) error {
	m := newBoardModel(db)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
