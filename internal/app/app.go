package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hrutik5321/rollpair/internal/db"
)

// Options seed the connection form and the usable width.
type Options struct {
	Conn     db.ConnConfig
	MaxWidth float64
}

func New(store db.Store, opts Options) tea.Model {
	return initialModel(store, opts)
}

func NewProgram(store db.Store, opts Options) *tea.Program {
	return tea.NewProgram(New(store, opts))
}
