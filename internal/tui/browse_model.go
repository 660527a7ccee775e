package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"homekeep/internal/db"
	"homekeep/internal/models"
	"homekeep/internal/views"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

// browseRow is one renderable line: either a room header or an item.
type browseRow struct {
	header string
	item   *models.StoreItem
}

// BrowseModel is the interactive inventory browser: items grouped by room,
// searchable by name, with the room filter cycling through the registry.
type BrowseModel struct {
	width  int
	height int

	focus  Focus
	search textinput.Model

	// Room filter: rooms[roomIdx], with index 0 meaning all rooms.
	rooms   []db.Tag
	roomIdx int

	items    []models.StoreItem
	rows     []browseRow
	selected int

	err error
}

// NewBrowseModel loads the room registry and the initial item set.
func NewBrowseModel(roomID uint) (BrowseModel, error) {
	rooms, err := db.ListTags(db.VocabRoom)
	if err != nil {
		return BrowseModel{}, err
	}

	search := textinput.New()
	search.Placeholder = "Search inventory"
	search.CharLimit = 40
	search.Width = 30

	m := BrowseModel{
		focus:  FocusList,
		search: search,
		rooms:  append([]db.Tag{{ID: db.AllRoomsID, Label: "all rooms"}}, rooms...),
	}
	for i, room := range m.rooms {
		if room.ID == roomID {
			m.roomIdx = i
		}
	}

	if err := m.reload(); err != nil {
		return BrowseModel{}, err
	}
	return m, nil
}

// reload re-queries the store for the current room filter.
func (m *BrowseModel) reload() error {
	items, err := db.ListActive(m.rooms[m.roomIdx].ID)
	if err != nil {
		return err
	}
	m.items = items
	m.regroup()
	return nil
}

// regroup rebuilds the visible rows from the cached items and the search
// query; the grouping itself is the view layer's job.
func (m *BrowseModel) regroup() {
	groups := views.GroupInventoryByRoom(m.items, m.search.Value())

	m.rows = m.rows[:0]
	for _, group := range groups {
		m.rows = append(m.rows, browseRow{header: group.Label})
		for i := range group.Items {
			m.rows = append(m.rows, browseRow{item: &group.Items[i]})
		}
	}
	if m.selected >= len(m.rows) {
		m.selected = 0
	}
	m.snapToItem(1)
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSearch {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			m.moveSelection(-1)
			return m, nil

		case "down", "j":
			m.moveSelection(1)
			return m, nil

		case "left", "h":
			m.cycleRoom(-1)
			return m, nil

		case "right", "l", "tab":
			m.cycleRoom(1)
			return m, nil

		case "/":
			m.focus = FocusSearch
			m.search.Focus()
			return m, textinput.Blink

		case "r":
			m.err = m.reload()
			return m, nil
		}
	}

	return m, nil
}

// handleSearchKeys handles key input when the search field has focus
func (m BrowseModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = FocusList
		m.search.Blur()
		m.search.SetValue("")
		m.regroup()
		return m, nil

	case "enter":
		m.focus = FocusList
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.regroup()
	return m, cmd
}

func (m *BrowseModel) moveSelection(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	m.snapToItem(delta)
}

// snapToItem skips header rows so the cursor always sits on an item.
func (m *BrowseModel) snapToItem(direction int) {
	if direction == 0 {
		direction = 1
	}
	for m.selected >= 0 && m.selected < len(m.rows) && m.rows[m.selected].item == nil {
		m.selected += direction
	}
	if m.selected < 0 || m.selected >= len(m.rows) {
		m.selected = 0
		for m.selected < len(m.rows) && m.rows[m.selected].item == nil {
			m.selected++
		}
		if m.selected >= len(m.rows) {
			m.selected = 0
		}
	}
}

func (m *BrowseModel) cycleRoom(delta int) {
	m.roomIdx = (m.roomIdx + delta + len(m.rooms)) % len(m.rooms)
	m.selected = 0
	m.err = m.reload()
}

// View renders the browser
func (m BrowseModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	filterStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright))
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Bold(true)
	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))
	dangerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder

	title := titleStyle.Render("homekeep inventory")
	filter := filterStyle.Render(fmt.Sprintf("[%s]", m.rooms[m.roomIdx].Label))
	b.WriteString(title + "  " + filter + "\n")

	if m.focus == FocusSearch || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(m.err.Error()) + "\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(rowStyle.Render("No items here.") + "\n")
	}

	now := time.Now()
	for i, row := range m.rows {
		if row.header != "" {
			b.WriteString(headerStyle.Render(row.header) + "\n")
			continue
		}

		item := row.item
		label := views.DaysLeftLabel(*item, now)
		line := fmt.Sprintf("  #%-4d %-30s %-6s %s", item.ID, truncate(item.Name, 30), item.Amount, label)

		switch {
		case i == m.selected:
			b.WriteString(selectedStyle.Render(line) + "\n")
		case label == "Expired" || label == "Time to replace":
			b.WriteString(dangerStyle.Render(line) + "\n")
		case strings.HasPrefix(label, "Expires"), label == "Replace today":
			b.WriteString(warnStyle.Render(line) + "\n")
		default:
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move · ←/→ room · / search · r refresh · q quit"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
