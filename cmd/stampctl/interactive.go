package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasmstamp/signer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type signState int

const (
	stateSelectKey signState = iota
	stateInputOutput
	stateShowResult
)

type signModel struct {
	err      error
	dir      string
	file     string
	keys     []signer.KeyInfo
	output   textinput.Model
	result   string
	selected int
	state    signState
}

type keysLoadedMsg struct {
	err  error
	keys []signer.KeyInfo
}

type signedMsg struct {
	err    error
	result string
}

func newSignModel(dir, file string) *signModel {
	ti := textinput.New()
	ti.Placeholder = "signature file path (empty prints the hex)"
	ti.CharLimit = 256
	ti.Width = 48
	return &signModel{dir: dir, file: file, output: ti, state: stateSelectKey}
}

func (m *signModel) Init() tea.Cmd {
	return m.loadKeys
}

func (m *signModel) loadKeys() tea.Msg {
	keys, err := signer.ListKeys(m.dir)
	if err == nil && len(keys) == 0 {
		err = fmt.Errorf("no keys in %s, run 'stampctl keygen' first", m.dir)
	}
	return keysLoadedMsg{keys: keys, err: err}
}

func (m *signModel) signFile() tea.Msg {
	kp, err := signer.LoadKeyPair(m.dir, m.keys[m.selected].Label)
	if err != nil {
		return signedMsg{err: err}
	}
	sig, err := kp.SignFile(m.file)
	if err != nil {
		return signedMsg{err: err}
	}

	out := m.output.Value()
	if out == "" {
		return signedMsg{result: sig.Hex()}
	}
	if err := os.WriteFile(out, []byte(sig.Hex()), 0o644); err != nil {
		return signedMsg{err: err}
	}
	return signedMsg{result: "signature written to " + out}
}

func (m *signModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputOutput || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectKey && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectKey && m.selected < len(m.keys)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectKey:
				if len(m.keys) > 0 {
					m.state = stateInputOutput
					m.output.Focus()
					return m, textinput.Blink
				}
			case stateInputOutput:
				m.state = stateShowResult
				return m, m.signFile
			case stateShowResult:
				return m, tea.Quit
			}

		case "esc":
			if m.state == stateInputOutput {
				m.state = stateSelectKey
				m.output.Blur()
			}
		}

	case keysLoadedMsg:
		m.err = msg.err
		m.keys = msg.keys
		return m, nil

	case signedMsg:
		m.err = msg.err
		m.result = msg.result
		return m, nil
	}

	if m.state == stateInputOutput {
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *signModel) View() string {
	s := titleStyle.Render("stampctl sign "+m.file) + "\n\n"

	if m.err != nil {
		s += errorStyle.Render("Error: "+m.err.Error()) + "\n\n"
		s += helpStyle.Render("q: quit")
		return s
	}

	switch m.state {
	case stateSelectKey:
		if len(m.keys) == 0 {
			s += "loading keys...\n"
			return s
		}
		s += "Select a signing key:\n\n"
		for i, k := range m.keys {
			line := fmt.Sprintf("  %s  %s", k.Label, k.PublicHex)
			if i == m.selected {
				s += selectedStyle.Render("> "+line[2:]) + "\n"
			} else {
				s += keyStyle.Render(line) + "\n"
			}
		}
		s += "\n" + helpStyle.Render("up/down: select  enter: choose  q: quit")

	case stateInputOutput:
		s += fmt.Sprintf("Signing with key '%s'\n\n", m.keys[m.selected].Label)
		s += m.output.View() + "\n\n"
		s += helpStyle.Render("enter: sign  esc: back  ctrl+c: quit")

	case stateShowResult:
		if m.result == "" {
			s += "signing...\n"
			return s
		}
		s += resultStyle.Render(m.result) + "\n\n"
		s += helpStyle.Render("enter/q: quit")
	}

	return s
}

func runInteractiveSign(dir, file string) error {
	p := tea.NewProgram(newSignModel(dir, file))
	_, err := p.Run()
	return err
}
