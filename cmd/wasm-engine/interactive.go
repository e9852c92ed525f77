package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

var (
	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

type funcEntry struct {
	name string
	fn   *runtime.Function
}

type interactiveModel struct {
	inst     *runtime.Instance
	filename string
	funcs    []funcEntry
	inputs   []textinput.Model
	selected int
	focusIdx int
	result   string
	isErr    bool
	state    modelState
}

func runInteractive(inst *runtime.Instance, filename string) error {
	var funcs []funcEntry
	for _, e := range inst.Module().Exports {
		if e.Kind != wasm.KindFunc {
			continue
		}
		ext, _ := inst.Export(e.Name)
		funcs = append(funcs, funcEntry{name: e.Name, fn: ext.Func})
	}
	if len(funcs) == 0 {
		return fmt.Errorf("module exports no functions")
	}
	sort.Slice(funcs, func(i, j int) bool { return funcs[i].name < funcs[j].name })

	m := interactiveModel{inst: inst, filename: filename, funcs: funcs}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m interactiveModel) Init() tea.Cmd { return nil }

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		if m.state == stateSelectFunc || key.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case "esc":
		m.state = stateSelectFunc
		return m, nil
	}

	switch m.state {
	case stateSelectFunc:
		switch key.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.funcs)-1 {
				m.selected++
			}
		case "enter":
			return m.beginInvoke()
		}
	case stateInputArgs:
		switch key.String() {
		case "tab", "down":
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.syncFocus()
		case "shift+tab", "up":
			m.focusIdx = (m.focusIdx + len(m.inputs) - 1) % len(m.inputs)
			m.syncFocus()
		case "enter":
			return m.invoke()
		default:
			var cmd tea.Cmd
			m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
			return m, cmd
		}
	case stateShowResult:
		if key.String() == "enter" {
			m.state = stateSelectFunc
		}
	}
	return m, nil
}

func (m interactiveModel) beginInvoke() (tea.Model, tea.Cmd) {
	ft := m.funcs[m.selected].fn.Type()
	if len(ft.Params) == 0 {
		return m.invoke()
	}
	m.inputs = make([]textinput.Model, len(ft.Params))
	for i, p := range ft.Params {
		in := textinput.New()
		in.Placeholder = p.String()
		m.inputs[i] = in
	}
	m.focusIdx = 0
	m.syncFocus()
	m.state = stateInputArgs
	return m, textinput.Blink
}

func (m *interactiveModel) syncFocus() {
	for i := range m.inputs {
		if i == m.focusIdx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m interactiveModel) invoke() (tea.Model, tea.Cmd) {
	entry := m.funcs[m.selected]
	ft := entry.fn.Type()

	raw := make([]string, len(m.inputs))
	for i := range m.inputs {
		raw[i] = strings.TrimSpace(m.inputs[i].Value())
	}

	var args []types.Value
	var err error
	if len(ft.Params) > 0 {
		args, err = parseArgs(ft, raw)
	}
	if err == nil {
		var results []types.Value
		results, err = m.inst.Invoke(entry.name, args...)
		if err == nil {
			m.result = formatResults(results)
			m.isErr = false
		}
	}
	if err != nil {
		m.result = err.Error()
		m.isErr = true
	}
	m.state = stateShowResult
	return m, nil
}

func (m interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.filename))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		for i, f := range m.funcs {
			line := f.name + signatureOf(f.fn.Type())
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(funcStyle.Render("  " + line))
			}
			b.WriteByte('\n')
		}
		b.WriteString(helpStyle.Render("\n↑/↓ select · enter invoke · q quit"))
	case stateInputArgs:
		b.WriteString(m.funcs[m.selected].name + "\n")
		for i := range m.inputs {
			b.WriteString("  " + m.inputs[i].View() + "\n")
		}
		b.WriteString(helpStyle.Render("\ntab next field · enter invoke · esc back"))
	case stateShowResult:
		if m.isErr {
			b.WriteString(errorStyle.Render(m.result))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString(helpStyle.Render("\n\nenter back · ctrl+c quit"))
	}
	return b.String()
}
