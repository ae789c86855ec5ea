package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type cabinsLoadedMsg struct {
	status *app.CockpitStatus
	err    error
}

// cabinsView lists cabin classes. Enter buys a locked cabin or selects an
// owned one.
type cabinsView struct {
	state   *SharedState
	status  *app.CockpitStatus
	cursor  int
	loading bool
	err     error
}

func newCabinsView(state *SharedState) *cabinsView {
	return &cabinsView{state: state, loading: true}
}

func (v *cabinsView) ID() ViewID    { return ViewCabins }
func (v *cabinsView) Title() string { return "Cabins" }

func (v *cabinsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("↑/↓"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buy/select")),
	}
}

func (v *cabinsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *cabinsView) loadData() tea.Cmd {
	a := v.state.App
	return func() tea.Msg {
		status, err := a.Status.GetStatus(context.Background())
		return cabinsLoadedMsg{status: status, err: err}
	}
}

func (v *cabinsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cabinsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.status = msg.status
			v.cursor = min(v.cursor, max(len(v.status.Cabins)-1, 0))
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if v.status == nil {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.status.Cabins)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.activate()
		}
	}
	return v, nil
}

func (v *cabinsView) activate() tea.Cmd {
	if v.cursor >= len(v.status.Cabins) {
		return nil
	}
	c := v.status.Cabins[v.cursor]
	a := v.state.App
	ctx := context.Background()

	if c.Owned {
		return actionCmd(func() (string, error) {
			return "Selected " + c.Cabin.DisplayName + ".", a.Rewards.SelectCabin(ctx, c.Cabin.ID)
		})
	}
	return actionCmd(func() (string, error) {
		return fmt.Sprintf("Unlocked %s for %s.", c.Cabin.DisplayName, formatter.FormatMiles(c.Cabin.UnlockCost)),
			a.Rewards.PurchaseCabin(ctx, c.Cabin.ID)
	})
}

func (v *cabinsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Cabin classes") + "\n")
	fmt.Fprintf(&b, "%s %s\n\n", formatter.Dim("Balance"), formatter.StyleGreen.Render(formatter.FormatMiles(v.status.MileBalance)))

	for i, c := range v.status.Cabins {
		cursor := "  "
		name := formatter.StyleFg.Render(padRight(c.Cabin.DisplayName, 18))
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			name = formatter.StyleBold.Render(padRight(c.Cabin.DisplayName, 18))
		}

		var tag string
		switch {
		case c.Selected:
			tag = formatter.StyleGreen.Render("● selected")
		case c.Owned:
			tag = formatter.Dim("owned")
		case c.Affordable:
			tag = formatter.StyleYellow.Render(formatter.FormatMiles(c.Cabin.UnlockCost))
		default:
			tag = formatter.Dim(formatter.FormatMiles(c.Cabin.UnlockCost) + " (locked)")
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, name, formatter.Dim(fmt.Sprintf("×%.2f", c.Cabin.YieldMultiplier)), tag)
	}
	return b.String()
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
