package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}
type pongMsg struct{}

// counter counts keys and pongs; "t" schedules a long timer, "p" pings.
type counter struct {
	keys   []string
	pongs  int
	width  int
	ticked bool
}

func (c *counter) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (c *counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case pingMsg:
		return c, func() tea.Msg { return pongMsg{} }
	case pongMsg:
		c.pongs++
	case time.Time:
		c.ticked = true
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		switch msg.String() {
		case "t":
			return c, tea.Tick(time.Second, func(t time.Time) tea.Msg { return t })
		case "b":
			return c, tea.Batch(
				func() tea.Msg { return pongMsg{} },
				func() tea.Msg { return pongMsg{} },
			)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c *counter) View() string { return "" }

func TestDriver_DrainsInitChain(t *testing.T) {
	c := &counter{}
	d := New(t, c, WithSize(80, 24))
	d.DrainInit()

	assert.Equal(t, 80, c.width)
	assert.Equal(t, 1, c.pongs)
}

func TestDriver_DropsTimers(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	d.Press("t")

	assert.False(t, c.ticked)
	assert.Equal(t, 1, d.Dropped)
}

func TestDriver_RunsBatches(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	d.Press("b")
	assert.Equal(t, 2, c.pongs)
}

func TestDriver_NamedKeysAndTyping(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	d.Press("down")
	d.PressEnter()
	d.Type("hi")

	assert.Equal(t, []string{"down", "enter", "h", "i"}, c.keys)
}

func TestDriver_QuitStopsSends(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	d.Press("q")
	assert.True(t, d.Quitting)

	d.Press("x")
	assert.Equal(t, []string{"q"}, c.keys)
}

func TestDriver_WithSkip(t *testing.T) {
	c := &counter{}
	d := New(t, c, WithSkip(func(msg tea.Msg) bool {
		_, ok := msg.(pongMsg)
		return ok
	}))
	d.DrainInit()
	assert.Equal(t, 0, c.pongs)
}
