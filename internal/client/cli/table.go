package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	sepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// renderEmployees lays the employees out as a fixed-width table.
func renderEmployees(list []models.Employee) string {
	headers := []string{"ID", "Nome", "Cargo", "E-mail", "Salário"}
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{e.ID.String(), e.Nome, e.Cargo, deref(e.Email), e.Salario})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	// Width includes the padding.
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		for i, c := range cells {
			sb.WriteString(style.Width(widths[i]).Render(c))
			if i < len(cells)-1 {
				sb.WriteString(sepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(headers, headerStyle)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", total)) + "\n")
	for _, row := range rows {
		writeRow(row, cellStyle)
	}
	return sb.String()
}

// renderEmployee prints one employee as label/value lines.
func renderEmployee(e *models.Employee) string {
	label := lipgloss.NewStyle().Bold(true).Width(10)
	lines := []string{
		label.Render("ID") + e.ID.String(),
		label.Render("Nome") + e.Nome,
		label.Render("Cargo") + e.Cargo,
		label.Render("Endereço") + deref(e.Endereco),
		label.Render("E-mail") + deref(e.Email),
		label.Render("Salário") + e.Salario,
	}
	return strings.Join(lines, "\n") + "\n"
}
