package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/fastica/ica"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// printReport lists iterations and convergence per component.
func printReport(out io.Writer, r ica.Report) {
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s solver, %d components", r.Algorithm, len(r.Components))))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COMPONENT", "ITERATIONS", "CHANGE", "STATUS")
	for i, c := range r.Components {
		status := okStyle.Render("converged")
		if !c.Converged {
			status = warnStyle.Render("iteration cap")
		}
		t.Row(fmt.Sprintf("ic%d", i), fmt.Sprint(c.Iterations), fmt.Sprintf("%.3g", c.FinalChange), status)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return cellStyle.Bold(true)
		}
		return cellStyle
	})

	fmt.Fprintln(out, t.Render())
}
