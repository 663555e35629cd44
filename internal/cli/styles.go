package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	FaintColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8b8b8b"}
	FaintStyle = lipgloss.NewStyle().Foreground(FaintColor)
	ErrColor   = lipgloss.AdaptiveColor{Light: "#770000", Dark: "#AA0000"}
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("32")).
			Padding(0, 1)
)

var errLinePfx = lipgloss.NewStyle().Background(ErrColor).Bold(true).Render(" ERR ") + " "

func RenderErrorLine(err error) string {
	return errLinePfx + err.Error()
}

// Pair is one labelled cell of a table row.
type Pair struct {
	Key   string
	Value string
}

func Pairs(in ...string) (r []Pair) {
	for i := 0; i+1 < len(in); i += 2 {
		r = append(r, Pair{in[i], in[i+1]})
	}
	return
}

// BasicTable renders rows of pairs with the keys of the first row as headers.
func BasicTable(title string, data [][]Pair) string {
	if len(data) == 0 {
		return ""
	}

	keys := make([]string, 0, len(data[0]))
	for _, p := range data[0] {
		keys = append(keys, p.Key)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(FaintStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(keys...)

	for _, kv := range data {
		row := make([]string, 0, len(kv))
		for _, p := range kv {
			row = append(row, p.Value)
		}
		tbl = tbl.Row(row...)
	}

	return TitleStyle.Render(title) + "\n" + tbl.Render()
}
