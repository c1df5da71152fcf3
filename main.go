package main

import (
	"fmt"
	"os"

	"github.com/JakeRoggenbuck/hyperfind/internal/catalog"
	"github.com/JakeRoggenbuck/hyperfind/internal/config"
	"github.com/JakeRoggenbuck/hyperfind/internal/models"
	"github.com/JakeRoggenbuck/hyperfind/internal/ui"
	"github.com/JakeRoggenbuck/hyperfind/internal/ui/components"
	"github.com/JakeRoggenbuck/hyperfind/internal/usage"
	"github.com/JakeRoggenbuck/hyperfind/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Model is the main launcher model
type Model struct {
	cfg     *config.Config
	entries []*models.AppEntry
	store   *usage.Store
	usage   usage.Map
	state   *view.State

	// UI Components
	input textinput.Model
	list  *components.ResultList
	help  help.Model
	keys  ui.KeyMap

	// State
	query  string
	status string
	width  int
	height int
}

// New builds the launcher: catalog scan, usage load, initial idle view.
func New(cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "Search…"
	input.Prompt = "> "
	input.Focus()

	store := usage.NewStore("")
	usageMap := store.Load()

	entries := catalog.Load(cfg.CustomAppsPath())
	debugLog("Loaded %d catalog entries, %d usage records", len(entries), len(usageMap))

	list := components.NewResultList()
	list.ShowUsage = cfg.ShowUsage

	state := view.NewState(cfg.MaxVisible)
	state.SetItems(view.BuildItems(entries, "", usageMap, cfg.MaxFrequent))

	return Model{
		cfg:     cfg,
		entries: entries,
		store:   store,
		usage:   usageMap,
		state:   state,
		input:   input,
		list:    list,
		help:    help.New(),
		keys:    ui.DefaultKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Escape):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.state.MoveSelection(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.state.MoveSelection(1)
			return m, nil

		case key.Matches(msg, m.keys.Launch):
			return m.activate(m.state.Selected)
		}

		if idx, ok := altDigitIndex(msg.String()); ok {
			return m.activate(m.state.VisibleEntryAt(idx))
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.setQuery(m.input.Value())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// setQuery rebuilds the item sequence for a new query, resetting the
// window and selection.
func (m *Model) setQuery(query string) {
	m.query = query
	m.status = ""
	m.state.SetItems(view.BuildItems(m.entries, query, m.usage, m.cfg.MaxFrequent))
}

// activate launches the entry at the given absolute item index, falling
// back to the first visible entry when the index does not hold one. On
// success the launch is recorded and the launcher quits; on failure it
// stays open with the error on the status line.
func (m Model) activate(index int) (tea.Model, tea.Cmd) {
	var entry *models.AppEntry
	if index >= 0 && index < len(m.state.Items) && m.state.Items[index].Selectable() {
		entry = m.state.Items[index].Entry
	}
	if entry == nil {
		if first := m.state.VisibleEntryAt(0); first >= 0 {
			entry = m.state.Items[first].Entry
		}
	}
	if entry == nil {
		return m, nil
	}

	if err := catalog.Launch(entry); err != nil {
		debugLog("Launch failed: %v", err)
		fmt.Fprintf(os.Stderr, "hyperfind: %v\n", err)
		m.status = err.Error()
		return m, nil
	}

	m.usage.Record(entry.ID)
	if err := m.store.Save(m.usage); err != nil {
		debugLog("Usage save failed: %v", err)
		fmt.Fprintf(os.Stderr, "hyperfind: %v\n", err)
	}

	return m, tea.Quit
}

// View implements tea.Model
func (m Model) View() string {
	var sections []string

	sections = append(sections, ui.TitleStyle.Render("HyperFind"))
	sections = append(sections, ui.InputStyle.Render(m.input.View()))
	sections = append(sections, m.list.Render(m.state, m.usage))

	if m.status != "" {
		sections = append(sections, ui.ErrorStyle.Render(m.status))
	}
	sections = append(sections, ui.HelpBarStyle.Render(m.help.View(m.keys)))

	return ui.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// altDigitIndex maps "alt+1".."alt+9" to the 0-based visible entry index.
func altDigitIndex(s string) (int, bool) {
	if len(s) != 5 || s[:4] != "alt+" {
		return 0, false
	}
	d := s[4]
	if d < '1' || d > '9' {
		return 0, false
	}
	return int(d - '1'), true
}

func main() {
	showUsage := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("hyperfind %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("hyperfind - A keyboard-driven application launcher")
			fmt.Println()
			fmt.Println("Usage: hyperfind [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -u, --usage      Show launch counts next to entries")
			fmt.Println("  -d, --debug      Enable debug mode (logs to stderr)")
			fmt.Println()
			fmt.Println("Type to search, arrows to move, enter to launch, esc to close.")
			return
		case "-u", "--usage":
			showUsage = true
		case "-d", "--debug", "debug":
			debugMode = true
			catalog.DebugMode = true
			fmt.Fprintln(os.Stderr, "[DEBUG] Debug mode enabled")
		}
	}

	cfg, err := config.Load("")
	if err != nil {
		debugLog("Config fell back to defaults: %v", err)
	}
	if showUsage {
		cfg.ShowUsage = true
	}

	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
