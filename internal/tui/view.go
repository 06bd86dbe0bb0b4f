package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("classmate • %s", m.title())))

	sections = append(sections, sectionStyle.Render("Components"), m.renderList())
	sections = append(sections, sectionStyle.Render("Props"), m.input.View())
	if m.inputErr != "" {
		sections = append(sections, errorStyle.Render(m.inputErr))
	}

	if c, ok := m.lib.Component(m.Selected()); ok {
		p := BuildPreview(c, m.props, m.terminal, m.markup, m.lib.Options()...)
		sections = append(sections,
			sectionStyle.Render("Preview"),
			previewStyle.Render(p.Terminal),
			field("component", p.DisplayName),
			field("class", p.ClassName),
			field("style", p.CSS),
			field("props", p.Forwarded),
			sectionStyle.Render("Markup"),
			markupStyle.Render(p.Markup),
		)
	}

	sections = append(sections, helpStyle.Render("↑/↓ select • enter apply props • esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList() string {
	lines := make([]string, 0, len(m.ids))
	for i, id := range m.ids {
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("›")+" "+selectedStyle.Render(id))
			continue
		}
		lines = append(lines, "  "+itemStyle.Render(id))
	}
	return strings.Join(lines, "\n")
}

func field(label, value string) string {
	if value == "" {
		value = "-"
	}
	return labelStyle.Render(fmt.Sprintf("%-9s", label)) + " " + value
}

func (m Model) title() string {
	if m.lib != nil && strings.TrimSpace(m.lib.Name) != "" {
		return m.lib.Name
	}
	return "Preview"
}
