// Package prompt asks the interactive-mode questions through a small
// bubbletea text input.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user quits a prompt with ctrl-c or esc.
var ErrCancelled = errors.New("prompt cancelled")

// Question is one prompt. When Options is non-empty the answer must be one of
// them; anything else clears the input and asks again.
type Question struct {
	Key     string
	Prompt  string
	Options []string
}

// Asker returns answers keyed by Question.Key.
type Asker interface {
	Ask(questions []Question) (map[string]string, error)
}

var yesNo = []string{"y", "n", ""}

// promptModel is a bubbletea model that asks one question at a time.
type promptModel struct {
	questions []Question
	idx       int
	inputs    []textinput.Model
	done      bool
}

func newPromptModel(questions []Question) promptModel {
	inputs := make([]textinput.Model, len(questions))
	for i := range questions {
		ti := textinput.New()
		ti.CharLimit = 128
		inputs[i] = ti
	}
	m := promptModel{
		questions: questions,
		inputs:    inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			q := m.questions[m.idx]
			answer := strings.TrimSpace(m.inputs[m.idx].Value())
			if len(q.Options) > 0 && !slices.Contains(q.Options, answer) {
				m.inputs[m.idx].Reset()
				return m, nil
			}
			if m.idx < len(m.inputs)-1 {
				m.inputs[m.idx].Blur()
				m.idx++
				m.inputs[m.idx].Focus()
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.inputs[m.idx], cmd = m.inputs[m.idx].Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || len(m.questions) == 0 {
		return ""
	}
	q := m.questions[m.idx]
	return fmt.Sprintf("%s %s\n", q.Prompt, m.inputs[m.idx].View())
}

func (m promptModel) answers() map[string]string {
	out := make(map[string]string, len(m.questions))
	for i, q := range m.questions {
		out[q.Key] = strings.TrimSpace(m.inputs[i].Value())
	}
	return out
}

// TUI runs the prompts on a terminal.
type TUI struct {
	In  io.Reader
	Out io.Writer
}

func (t TUI) Ask(questions []Question) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}

	var opts []tea.ProgramOption
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	result, err := tea.NewProgram(newPromptModel(questions), opts...).Run()
	if err != nil {
		return nil, err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return nil, ErrCancelled
	}
	return final.answers(), nil
}

// YesNo maps a y/n answer, with an empty answer taking def.
func YesNo(answer string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y":
		return true
	case "n":
		return false
	default:
		return def
	}
}

// Seconds parses an update length; anything that is not an integer falls
// back to def.
func Seconds(answer string, def int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
	if err != nil {
		return def
	}
	return n
}
