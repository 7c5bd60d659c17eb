package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gpukit/shaderir/ir"
	"github.com/gpukit/shaderir/layout"
	"github.com/gpukit/shaderir/typedesc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err       error
	mod       *typedesc.Module
	layouter  *layout.Layouter
	filename  string
	filter    textinput.Model
	visible   []ir.Handle
	selected  int
	filtering bool
}

func newInspectorModel(filename string) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "type name"
	ti.Prompt = "filter: "
	ti.Width = 30

	return &inspectorModel{
		filename: filename,
		filter:   ti,
	}
}

func runInteractive(descFile string) error {
	m := newInspectorModel(descFile)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type loadedMsg struct {
	err      error
	mod      *typedesc.Module
	layouter *layout.Layouter
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadTable
}

func (m *inspectorModel) loadTable() tea.Msg {
	mod, l, err := load(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{mod: mod, layouter: l}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			m.filtering = true
			m.filter.Focus()

		case "esc":
			m.filter.SetValue("")
			m.applyFilter()
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mod = msg.mod
		m.layouter = msg.layouter
		m.applyFilter()
	}

	return m, nil
}

func (m *inspectorModel) applyFilter() {
	m.visible = m.visible[:0]
	if m.mod == nil {
		return
	}
	needle := strings.ToLower(m.filter.Value())
	m.mod.Types.Each(func(h ir.Handle, ty *ir.Type) bool {
		if needle == "" || strings.Contains(strings.ToLower(ty.Name), needle) {
			m.visible = append(m.visible, h)
		}
		return true
	})
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.mod == nil {
		return "Loading type table..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	for i, h := range m.visible {
		ty := m.mod.Types.Get(h)
		tl := m.layouter.Resolve(h)
		line := fmt.Sprintf("%-16s %-24s size %4d  align %4d",
			displayName(ty), typeSummary(m.mod, ty), tl.Size, tl.Alignment)

		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + nameStyle.Render(fmt.Sprintf("%-16s", displayName(ty))))
			b.WriteString(" " + typeStyle.Render(fmt.Sprintf("%-24s", typeSummary(m.mod, ty))))
			b.WriteString(fmt.Sprintf(" size %4d  align %4d", tl.Size, tl.Alignment))
		}
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("no matching types"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • / filter • esc clear • q quit"))

	return b.String()
}

// detailView shows member placements for the selected struct.
func (m *inspectorModel) detailView() string {
	if m.selected >= len(m.visible) {
		return ""
	}
	h := m.visible[m.selected]
	ty := m.mod.Types.Get(h)
	st, ok := ty.Inner.(ir.Struct)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(typeStyle.Render(fmt.Sprintf("struct %s:", displayName(ty))))
	b.WriteString("\n")

	offset := uint32(0)
	for _, member := range st.Members {
		placement, alignment := m.layouter.MemberPlacement(offset, member)
		b.WriteString(memberStyle.Render(fmt.Sprintf("  .%-15s %-20s bytes %4d..%-4d align %d",
			member.Name, memberSummary(m.mod, member), placement.Start, placement.End, alignment)))
		b.WriteString("\n")
		offset = placement.End
	}

	tl := m.layouter.Resolve(h)
	if tl.Size > offset {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  (trailing padding: %d bytes)", tl.Size-offset)))
		b.WriteString("\n")
	}
	return b.String()
}
