package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type logLoadedMsg struct {
	entries []domain.FlightLogEntry
	err     error
}

// logView is a scrollable logbook. d deletes the highlighted entry after
// confirmation.
type logView struct {
	state   *SharedState
	entries []domain.FlightLogEntry
	cursor  int
	offset  int
	loading bool
	err     error
}

func newLogView(state *SharedState) *logView {
	return &logView{state: state, loading: true}
}

func (v *logView) ID() ViewID    { return ViewLog }
func (v *logView) Title() string { return "Logbook" }

func (v *logView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("↑/↓"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (v *logView) Init() tea.Cmd {
	return v.loadData()
}

func (v *logView) loadData() tea.Cmd {
	a := v.state.App
	return func() tea.Msg {
		entries, err := a.Rewards.ListLog(context.Background(), 0)
		return logLoadedMsg{entries: entries, err: err}
	}
}

func (v *logView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.entries = msg.entries
			v.cursor = min(v.cursor, max(len(v.entries)-1, 0))
			v.clampOffset()
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				v.clampOffset()
			}
		case "down", "j":
			if v.cursor < len(v.entries)-1 {
				v.cursor++
				v.clampOffset()
			}
		case "d":
			if v.cursor < len(v.entries) {
				e := v.entries[v.cursor]
				a := v.state.App
				return v, confirmWizard(v.state, "Delete entry",
					fmt.Sprintf("Delete %q? Miles already earned are kept.", e.Title),
					func() (string, error) {
						return "Deleted " + e.Title + ".", a.Rewards.DeleteLogEntry(context.Background(), e.ID)
					})
			}
		}
	}
	return v, nil
}

// visibleRows is how many entries fit below the heading.
func (v *logView) visibleRows() int {
	return max(v.state.ContentHeight()-4, 3)
}

func (v *logView) clampOffset() {
	rows := v.visibleRows()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+rows {
		v.offset = v.cursor - rows + 1
	}
}

func (v *logView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header(fmt.Sprintf("Logbook (%d)", len(v.entries))) + "\n")
	if len(v.entries) == 0 {
		b.WriteString(formatter.Dim("No flights logged yet."))
		return b.String()
	}

	now := time.Now()
	end := min(v.offset+v.visibleRows(), len(v.entries))
	for i := v.offset; i < end; i++ {
		e := v.entries[i]
		cursor := "  "
		title := formatter.StyleFg.Render(padRight(truncateRunes(e.Title, 24), 24))
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(padRight(truncateRunes(e.Title, 24), 24))
		}
		fmt.Fprintf(&b, "%s%s %s %s %7s %s\n",
			cursor,
			title,
			formatter.PhaseIndicator(e.Status),
			padRight(formatter.FormatMinutes(domain.MinutesFromMs(e.FocusedMs)), 7),
			formatter.FormatMiles(e.MilesEarned),
			formatter.Dim(formatter.HumanTimestamp(e.EndedAt, now)),
		)
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
