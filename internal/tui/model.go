// Package tui provides the interactive Bubble Tea generator.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/logging"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/strength"
)

// Mode selects what the TUI generates.
type Mode int

const (
	ModePassword Mode = iota
	ModePassphrase
)

func (m Mode) String() string {
	if m == ModePassphrase {
		return "passphrase"
	}
	return "password"
}

// SeparatorPresets are cycled by the separator key.
var SeparatorPresets = []string{"-", "_", ".", " "}

const (
	maxPasswordLength = 128
	maxWordCount      = 12
	maxTargetLength   = 128
)

// Recorder receives the metrics of every generated secret.
type Recorder interface {
	Record(mode string, length int, a strength.Assessment)
}

// Model implements the Bubble Tea generator UI. Every settings change
// regenerates the secret.
type Model struct {
	gen      *generator.Generator
	recorder Recorder

	mode       Mode
	password   model.PasswordOptions
	passphrase model.PassphraseConstraints

	secret     string
	assessment strength.Assessment
	dictionary strength.DictionaryEstimate
	err        error

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a generator TUI. recorder may be nil.
func NewModel(gen *generator.Generator, mode Mode, pw model.PasswordOptions, pp model.PassphraseConstraints, recorder Recorder) *Model {
	m := &Model{
		gen:        gen,
		recorder:   recorder,
		mode:       mode,
		password:   pw,
		passphrase: pp,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.regenerate()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.apply(msg) {
			m.regenerate()
		}
		return m, nil
	default:
		return m, nil
	}
}

// apply mutates settings for msg and reports whether anything changed.
func (m *Model) apply(msg tea.KeyMsg) bool {
	k := m.keys
	pw, pp := &m.password, &m.passphrase
	switch {
	case key.Matches(msg, k.Regenerate):
	case key.Matches(msg, k.Mode):
		if m.mode == ModePassword {
			m.mode = ModePassphrase
		} else {
			m.mode = ModePassword
		}
	case key.Matches(msg, k.Longer):
		m.adjustLength(1)
	case key.Matches(msg, k.Shorter):
		m.adjustLength(-1)
	case m.mode == ModePassword && key.Matches(msg, k.Upper):
		pw.Upper = !pw.Upper
	case m.mode == ModePassword && key.Matches(msg, k.Lower):
		pw.Lower = !pw.Lower
	case m.mode == ModePassword && key.Matches(msg, k.Digits):
		pw.Digits = !pw.Digits
	case m.mode == ModePassword && key.Matches(msg, k.Symbols):
		pw.Symbols = !pw.Symbols
	case m.mode == ModePassphrase && key.Matches(msg, k.LengthMode):
		if pp.LengthMode == model.WordCount {
			pp.LengthMode = model.CharacterLength
		} else {
			pp.LengthMode = model.WordCount
		}
	case m.mode == ModePassphrase && key.Matches(msg, k.Capitalize):
		pp.Capitalize = !pp.Capitalize
	case m.mode == ModePassphrase && key.Matches(msg, k.Numbers):
		pp.IncludeNumbers = !pp.IncludeNumbers
	case m.mode == ModePassphrase && key.Matches(msg, k.MoreNums):
		pp.MinNumberCount = min(pp.MinNumberCount+1, generator.MaxNumberCount(pp.WordCount))
	case m.mode == ModePassphrase && key.Matches(msg, k.FewerNums):
		pp.MinNumberCount = max(pp.MinNumberCount-1, 0)
	case m.mode == ModePassphrase && key.Matches(msg, k.Separator):
		pp.Separator = nextSeparator(pp.Separator)
	default:
		return false
	}
	return true
}

func (m *Model) adjustLength(delta int) {
	if m.mode == ModePassword {
		m.password.Length = clamp(m.password.Length+delta, 1, maxPasswordLength)
		return
	}
	if m.passphrase.LengthMode == model.CharacterLength {
		m.passphrase.TargetLength = clamp(m.passphrase.TargetLength+delta, 1, maxTargetLength)
		return
	}
	m.passphrase.WordCount = clamp(m.passphrase.WordCount+delta, 1, maxWordCount)
	m.passphrase.MinNumberCount = min(m.passphrase.MinNumberCount, generator.MaxNumberCount(m.passphrase.WordCount))
}

func nextSeparator(current string) string {
	for i, s := range SeparatorPresets {
		if s == current {
			return SeparatorPresets[(i+1)%len(SeparatorPresets)]
		}
	}
	return SeparatorPresets[0]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (m *Model) regenerate() {
	m.err = nil
	var value string
	var err error
	if m.mode == ModePassword {
		var secret model.GeneratedSecret
		secret, err = m.gen.Password(generator.ConstraintsFromOptions(m.password))
		value = secret.Value
	} else {
		value, err = m.gen.Passphrase(m.passphrase)
	}
	if err != nil {
		m.err = err
		m.secret = ""
		m.assessment = strength.Assessment{}
		m.dictionary = strength.DictionaryEstimate{}
		logging.Debugf("tui generation failed: %v", err)
		return
	}
	m.secret = value
	m.assessment = strength.Assess(value)
	m.dictionary = strength.Dictionary(value)
	if m.recorder != nil {
		m.recorder.Record(m.mode.String(), len([]rune(value)), m.assessment)
	}
}

// Secret returns the currently displayed secret.
func (m *Model) Secret() string {
	return m.secret
}

// View implements tea.Model.
func (m *Model) View() string {
	contentWidth := 0
	if m.width > 0 {
		contentWidth = max(int(float64(m.width)*0.70), 1)
	}
	sections := []string{
		titleStyle.Render(m.renderTitle()),
		footerStyle.Render(m.renderSettings()),
		"",
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(errorMessage(m.err)))
	} else {
		sep := ""
		if m.mode == ModePassphrase {
			sep = m.passphrase.Separator
		}
		sections = append(sections, wrapStyledRunes(buildStyledRunes(m.secret, sep), contentWidth), "", m.renderFooter())
		for _, f := range m.assessment.Feedback {
			sections = append(sections, footerStyle.Render("· "+f))
		}
	}
	sections = append(sections, "", m.help.View(m.keys))
	content := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderTitle() string {
	if m.mode == ModePassword {
		return fmt.Sprintf("Password · %d characters", m.password.Length)
	}
	if m.passphrase.LengthMode == model.CharacterLength {
		return fmt.Sprintf("Passphrase · target %d characters", m.passphrase.TargetLength)
	}
	return fmt.Sprintf("Passphrase · %d words", m.passphrase.WordCount)
}

func (m *Model) renderSettings() string {
	if m.mode == ModePassword {
		pw := m.password
		return fmt.Sprintf("upper %s  lower %s  digits %s  symbols %s",
			onOff(pw.Upper), onOff(pw.Lower), onOff(pw.Digits), onOff(pw.Symbols))
	}
	pp := m.passphrase
	sep := pp.Separator
	if sep == " " {
		sep = "space"
	}
	return fmt.Sprintf("%s  separator %q  capitalize %s  numbers %s (%d)",
		modeLabel(pp.LengthMode), sep, onOff(pp.Capitalize), onOff(pp.IncludeNumbers), pp.MinNumberCount)
}

func (m *Model) renderFooter() string {
	if m.secret == "" {
		return ""
	}
	a := m.assessment
	segments := []string{
		LevelStyle(a.Level).Render(a.Level.String()),
		fmt.Sprintf("Score %d", a.Score),
		fmt.Sprintf("%.1f bits", a.EntropyBits),
		"Crack " + a.CrackTimeLabel,
		dictionarySegment(m.dictionary),
	}
	if m.mode == ModePassphrase && m.passphrase.LengthMode == model.CharacterLength {
		acc := generator.TargetAccuracy(m.secret, m.passphrase.TargetLength)
		segments = append(segments, fmt.Sprintf("Accuracy %d%%", acc.Percent))
	}
	return strings.Join(segments, "  ")
}

func dictionarySegment(d strength.DictionaryEstimate) string {
	seg := fmt.Sprintf("zxcvbn %d/4", d.Score)
	if d.Truncated {
		seg += fmt.Sprintf(" (first %d)", strength.MaxDictionaryRunes)
	}
	return seg
}

func errorMessage(err error) string {
	var cfgErr *generator.InvalidConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return "Cannot generate: " + cfgErr.Reason
	case errors.Is(err, generator.ErrUnreachableTarget):
		return "Target length is shorter than any word"
	default:
		return err.Error()
	}
}
