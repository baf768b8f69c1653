package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hrutik5321/rollpair/internal/db"
	"github.com/hrutik5321/rollpair/internal/rolls"
	"github.com/hrutik5321/rollpair/internal/ui/suggestions"
	"github.com/hrutik5321/rollpair/internal/ui/table"
)

// ----- Modes -----

type mode int

const (
	modeForm mode = iota
	modeSubstances
	modePlan
)

// ----- Messages from async DB commands -----

type connectResultMsg struct {
	err error
}

type substancesResultMsg struct {
	substances []db.Substance
	err        error
}

type planResultMsg struct {
	plan db.Plan
	err  error
}

// ----- Model -----

type Model struct {
	store db.Store

	// form inputs
	hostInput textinput.Model
	portInput textinput.Model
	userInput textinput.Model
	passInput textinput.Model
	dbInput   textinput.Model

	focusIndex int

	// state
	mode       mode
	status     string
	loading    bool
	substances []db.Substance
	cursor     int
	selected   db.Substance
	plan       db.Plan

	// usable width
	maxWidth     float64
	widthInput   textinput.Model
	editingWidth bool

	// terminal / scroll
	width       int
	horizOffset int
}

// ----- Initial model -----

func initialModel(store db.Store, opts Options) Model {
	host := textinput.New()
	host.Placeholder = "localhost"
	host.Prompt = "Host: "
	host.SetValue(opts.Conn.Host)

	port := textinput.New()
	port.Placeholder = "5432"
	port.Prompt = "Port: "
	port.SetValue(opts.Conn.Port)

	user := textinput.New()
	user.Placeholder = "postgres"
	user.Prompt = "User: "
	user.SetValue(opts.Conn.User)

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Prompt = "Password: "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.SetValue(opts.Conn.Password)

	dbInput := textinput.New()
	dbInput.Placeholder = "database name"
	dbInput.Prompt = "Database: "
	dbInput.SetValue(opts.Conn.Database)

	widthInput := textinput.New()
	widthInput.Placeholder = strconv.Itoa(rolls.DefaultMaxWidth)
	widthInput.Prompt = "Max width (mm): "

	m := Model{
		store:      store,
		hostInput:  host,
		portInput:  port,
		userInput:  user,
		passInput:  pass,
		dbInput:    dbInput,
		focusIndex: 0,
		mode:       modeForm,
		status:     "Fill details and press Enter to connect.",
		maxWidth:   rolls.EffectiveMaxWidth(opts.MaxWidth),
		widthInput: widthInput,
	}

	m.hostInput.Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ----- Commands (async DB operations) -----

func connectCmd(store db.Store, cfg db.ConnConfig) tea.Cmd {
	return func() tea.Msg {
		err := store.Connect(context.Background(), cfg)
		return connectResultMsg{err: err}
	}
}

func listSubstancesCmd(store db.Store) tea.Cmd {
	return func() tea.Msg {
		substances, err := store.ListSubstances(context.Background())
		return substancesResultMsg{substances: substances, err: err}
	}
}

func loadPlanCmd(store db.Store, substanceID int64) tea.Cmd {
	return func() tea.Msg {
		plan, err := store.LoadPlan(context.Background(), substanceID)
		return planResultMsg{plan: plan, err: err}
	}
}

// ----- Update -----

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case connectResultMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "Connection failed: " + msg.err.Error()
			m.mode = modeForm
			return m, nil
		}

		m.status = "Connected! Fetching substances..."
		m.mode = modeSubstances
		m.loading = true
		return m, listSubstancesCmd(m.store)

	case substancesResultMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "Failed to fetch substances: " + msg.err.Error()
			m.mode = modeForm
			return m, nil
		}
		m.substances = msg.substances
		m.cursor = 0
		m.status = "Use ↑/↓ and Enter to open a substance."
		if len(msg.substances) == 0 {
			m.status = "Connected but no substances found."
		}
		return m, nil

	case planResultMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "Failed to load plan: " + msg.err.Error()
			m.mode = modeSubstances
			return m, nil
		}
		m.plan = msg.plan
		m.mode = modePlan
		m.horizOffset = 0
		m.status = fmt.Sprintf("%d remaining roll(s) for %s.", len(msg.plan.RemainingRolls), m.selected.Name)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// ----- Key handling dispatcher -----

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateFormKey(msg)
	case modeSubstances:
		return m.updateSubstancesKey(msg)
	case modePlan:
		return m.updatePlanKey(msg)
	default:
		return m, nil
	}
}

// --- form mode ---

func (m Model) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focusIndex++
		if m.focusIndex > 4 {
			m.focusIndex = 4
		}
	case "shift+tab", "up":
		m.focusIndex--
		if m.focusIndex < 0 {
			m.focusIndex = 0
		}
	case "enter":
		if m.focusIndex == 4 {
			m.loading = true
			m.status = "Connecting to DB..."
			return m, connectCmd(m.store, m.connConfig())
		}
		m.focusIndex++
	}

	cmds := m.updateFocus()
	var cmd tea.Cmd
	switch m.focusIndex {
	case 0:
		m.hostInput, cmd = m.hostInput.Update(msg)
	case 1:
		m.portInput, cmd = m.portInput.Update(msg)
	case 2:
		m.userInput, cmd = m.userInput.Update(msg)
	case 3:
		m.passInput, cmd = m.passInput.Update(msg)
	case 4:
		m.dbInput, cmd = m.dbInput.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) connConfig() db.ConnConfig {
	return db.ConnConfig{
		Host:     m.hostInput.Value(),
		Port:     m.portInput.Value(),
		User:     m.userInput.Value(),
		Password: m.passInput.Value(),
		Database: m.dbInput.Value(),
	}
}

// --- substances mode ---

func (m Model) updateSubstancesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.substances)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.substances) == 0 {
			return m, nil
		}
		m.selected = m.substances[m.cursor]
		m.loading = true
		m.status = "Loading trimming plan for " + m.selected.Name + "..."
		return m, loadPlanCmd(m.store, m.selected.ID)
	}
	return m, nil
}

// --- plan mode ---

func (m Model) updatePlanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingWidth {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.editingWidth = false
			m.status = "Width unchanged."
			return m, nil
		case "enter":
			v := strings.TrimSpace(m.widthInput.Value())
			mw, err := strconv.ParseFloat(v, 64)
			if v != "" && err != nil {
				m.status = "Invalid width: " + v
				return m, nil
			}
			m.maxWidth = rolls.EffectiveMaxWidth(mw)
			m.editingWidth = false
			m.status = fmt.Sprintf("Pairing against %s mm.", strconv.FormatFloat(m.maxWidth, 'f', -1, 64))
			return m, nil
		}

		var cmd tea.Cmd
		m.widthInput, cmd = m.widthInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "b":
		m.mode = modeSubstances
		m.status = "Use ↑/↓ and Enter to open another substance."

	case "r":
		m.loading = true
		m.status = "Reloading trimming plan for " + m.selected.Name + "..."
		return m, loadPlanCmd(m.store, m.selected.ID)

	case "w":
		m.editingWidth = true
		m.widthInput.SetValue(strconv.FormatFloat(m.maxWidth, 'f', -1, 64))
		m.widthInput.Focus()
		m.status = "Enter the usable width in mm. Enter to apply, Esc to cancel."
		return m, nil

	case "left", "h":
		m.horizOffset -= 4
		if m.horizOffset < 0 {
			m.horizOffset = 0
		}
	case "right", "l":
		m.horizOffset += 4
	}

	return m, nil
}

// ----- Focus handling for form -----

func (m *Model) updateFocus() []tea.Cmd {
	var cmds []tea.Cmd

	m.hostInput.Blur()
	m.portInput.Blur()
	m.userInput.Blur()
	m.passInput.Blur()
	m.dbInput.Blur()

	switch m.focusIndex {
	case 0:
		cmds = append(cmds, m.hostInput.Focus())
	case 1:
		cmds = append(cmds, m.portInput.Focus())
	case 2:
		cmds = append(cmds, m.userInput.Focus())
	case 3:
		cmds = append(cmds, m.passInput.Focus())
	case 4:
		cmds = append(cmds, m.dbInput.Focus())
	}

	return cmds
}

// ----- Views -----

func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeSubstances:
		return m.viewSubstances()
	case modePlan:
		return m.viewPlan()
	default:
		return "Unknown state"
	}
}

func (m Model) viewForm() string {
	loading := ""
	if m.loading {
		loading = "\n\n[Working...]"
	}

	return fmt.Sprintf(
		"Enter Postgres Credentials:\n\n%s\n%s\n%s\n%s\n%s\n\n%s%s\n\n(ctrl+c/esc to quit)\n",
		m.hostInput.View(),
		m.portInput.View(),
		m.userInput.View(),
		m.passInput.View(),
		m.dbInput.View(),
		m.status,
		loading,
	)
}

func (m Model) viewSubstances() string {
	s := "Connected.\n\nSubstances:\n\n"

	if len(m.substances) == 0 && !m.loading {
		s += "  (no substances found)\n"
	}

	for i, sub := range m.substances {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		s += fmt.Sprintf("%s%s\n", cursor, sub.Name)
	}

	if m.loading {
		s += "\nLoading...\n"
	}

	s += "\n" + m.status + "\n"
	s += "\nUse ↑/↓ and Enter. Press q or ctrl+c to quit.\n"

	return s
}

func (m Model) viewPlan() string {
	s := fmt.Sprintf("Remaining Unpaired Rolls: %s\n\n", m.selected.Name)
	s += fmt.Sprintf("Total Weight of Unpaired Rolls: %s tonnes\n\n", strconv.FormatFloat(m.plan.WeightFinal, 'f', -1, 64))

	if len(m.plan.RemainingRolls) == 0 {
		s += "(No remaining rolls)\n"
	} else {
		rows := make([][]string, len(m.plan.RemainingRolls))
		for i, r := range m.plan.RemainingRolls {
			rows[i] = []string{
				strconv.FormatFloat(r.Width, 'f', -1, 64),
				strconv.FormatFloat(r.Quantity, 'f', -1, 64),
			}
		}
		s += "Current Unpaired Rolls\n\n" + table.Render([]string{"Width", "Remaining"}, rows)
	}

	if panel := suggestions.View(m.plan.RemainingRolls, m.maxWidth); panel != "" {
		s += "\n" + panel
	}

	if m.editingWidth {
		input := m.widthInput.View()

		top := "┌" + strings.Repeat("─", len(input)+2) + "┐"
		middle := "│ " + input + " "
		bottom := "└" + strings.Repeat("─", len(input)+2) + "┘"

		s += "\nWidth\n" + top + "\n" + middle + "\n" + bottom + "\n"
	}

	s += "\n" + m.status + "\n"
	s += "\nPress 'b' to go back, 'r' to reload, 'w' to change the width, ←/→ or h/l to scroll, 'q' or ctrl+c to quit.\n"

	return table.ApplyHorizontalScroll(s, m.horizOffset, m.width)
}
