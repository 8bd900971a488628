package brushview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp lists the key bindings by category.
func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(activeTabStyle.Render("chartbrush"))
	b.WriteString("\n")
	for _, category := range ModelKeyBindings() {
		b.WriteString(helpSectionStyle.Render(category.Name))
		b.WriteString("\n")
		for _, binding := range category.Bindings {
			key := helpKeyStyle.Render(strings.Join(binding.Keys, ", "))
			desc := helpDescStyle.Render(binding.Description)
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(b.String())
}
