package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ljtab/internal/forcefield"
	"github.com/san-kum/ljtab/internal/viz"
)

const (
	defaultWidth  = 80
	defaultHeight = 12
)

// Browser is an interactive view cycling through the potential curves
// of every atom pair in a force field.
type Browser struct {
	pairs     []forcefield.Pair
	idx       int
	showForce bool
	width     int
}

func NewBrowser(atoms []forcefield.AtomType) Browser {
	return Browser{
		pairs: forcefield.Pairs(atoms),
		width: defaultWidth,
	}
}

// Run drives the browser until the user quits.
func Run(atoms []forcefield.AtomType) error {
	p := tea.NewProgram(NewBrowser(atoms))
	_, err := p.Run()
	return err
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
	case tea.KeyMsg:
		if len(b.pairs) == 0 {
			return b, tea.Quit
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "right", "l", "n":
			b.idx = (b.idx + 1) % len(b.pairs)
		case "left", "h", "p":
			b.idx = (b.idx - 1 + len(b.pairs)) % len(b.pairs)
		case "f", "tab":
			b.showForce = !b.showForce
		}
	}
	return b, nil
}

func (b Browser) View() string {
	if len(b.pairs) == 0 {
		return "no pairs defined\n"
	}

	pair := b.pairs[b.idx]
	mixed := pair.Params()

	title := viz.TitleStyle.Render(
		fmt.Sprintf("pair %d/%d  %s", b.idx+1, len(b.pairs), pair.Name()))

	params := lipgloss.JoinHorizontal(lipgloss.Top,
		viz.LabelStyle.Render("sigma"),
		viz.ValueStyle.Render(fmt.Sprintf("%.4f   ", mixed.Sigma)),
		viz.LabelStyle.Render("epsilon"),
		viz.ValueStyle.Render(fmt.Sprintf("%.4f", mixed.Epsilon)),
	)

	plotWidth := b.width - 12
	if plotWidth < 20 {
		plotWidth = 20
	}

	var curve []float64
	caption := "E(r)"
	if b.showForce {
		curve = viz.ForceCurve(mixed, plotWidth)
		caption = "F(r)"
	} else {
		curve = viz.EnergyCurve(mixed, plotWidth)
	}
	graph := viz.Plot(curve, caption, plotWidth, defaultHeight)

	help := viz.HelpStyle.Render("left/right cycle pairs · f toggle force · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, params, graph, help) + "\n"
}
