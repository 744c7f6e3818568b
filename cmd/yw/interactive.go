package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ywlang/ywlib/host"
	"github.com/ywlang/ywlib/resource"
	"github.com/ywlang/ywlib/text"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err     error
	host    *host.Host
	result  string
	input   textinput.Model
	handle  resource.Handle
	lowered bool
}

func newInteractiveModel(initial string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type some text"
	ti.Prompt = "> "
	ti.Width = 60
	ti.SetValue(initial)
	ti.Focus()
	return &interactiveModel{input: ti}
}

type loweredMsg struct {
	err    error
	host   *host.Host
	result string
	handle resource.Handle
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.release()
			return m, tea.Quit
		case "enter":
			return m, m.lower(m.input.Value())
		}

	case loweredMsg:
		m.release()
		m.err = msg.err
		m.host = msg.host
		m.result = msg.result
		m.handle = msg.handle
		m.lowered = msg.err == nil
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.release()
		m.result = ""
		m.err = nil
	}
	return m, cmd
}

// lower places the current text in guest memory as UTF-16.
func (m *interactiveModel) lower(value string) tea.Cmd {
	return func() tea.Msg {
		h, err := host.Default()
		if err != nil {
			return loweredMsg{err: err}
		}
		handle, err := h.Lower(context.Background(), text.FromString(value), host.EncodingUTF16)
		if err != nil {
			return loweredMsg{err: err}
		}
		buf, _ := h.Buffer(handle)
		return loweredMsg{
			host:   h,
			handle: handle,
			result: fmt.Sprintf("ptr=%#x units=%d bytes=%d %s", buf.Ptr, buf.Units, buf.Bytes(), buf.Encoding.TypeName()),
		}
	}
}

func (m *interactiveModel) release() {
	if m.lowered && m.host != nil {
		m.host.Drop(m.handle)
	}
	m.lowered = false
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("yw"))
	b.WriteString(" code point explorer\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	s := text.FromString(m.input.Value())
	for _, r := range encodingRows(s, host.Encodings) {
		b.WriteString(typeStyle.Render(r.label))
		b.WriteString("\n  ")
		b.WriteString(unitStyle.Render(r.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	case m.lowered:
		b.WriteString(resultStyle.Render("Guest utf-16: " + m.result))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("enter lower into guest memory • esc quit"))
	return b.String()
}

func runInteractive(initial string) error {
	p := tea.NewProgram(newInteractiveModel(initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
