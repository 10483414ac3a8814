package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/tokensense"
	"github.com/etnz/tokensense/docs"
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Next:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "decrease")),
	Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "increase")),
	Help:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "how to use")),
	Quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	subtitleStyle = lipgloss.NewStyle().Italic(true).Faint(true)
	labelStyle    = lipgloss.NewStyle().Width(22)
	focusedStyle  = labelStyle.Foreground(lipgloss.Color("205")).Bold(true)
	figureStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// formField is one input of the form.
type formField struct {
	field tokensense.Field
	label string
	step  float64 // slider step, 0 for a text field
	input textinput.Model
}

func (f formField) slider() bool { return f.step > 0 }

// sessionModel is the bubbletea model of the interactive calculator.
type sessionModel struct {
	session  *tokensense.Session
	fields   []formField
	focus    int
	showHelp bool
	help     string
	err      error
}

func newSessionModel(s *tokensense.Session) sessionModel {
	fields := []formField{
		{field: tokensense.FieldSupply, label: "Initial Supply"},
		{field: tokensense.FieldBurn, label: "Burn Percentage", step: 1},
		{field: tokensense.FieldPrice, label: "Price per Token"},
		{field: tokensense.FieldHoldings, label: "Your Token Holdings"},
		{field: tokensense.FieldShare, label: "Holdings Percentage", step: 0.01},
	}
	for i := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 40
		in.SetValue(fieldText(s.State(), fields[i].field))
		fields[i].input = in
	}
	fields[0].input.Focus()
	fields[0].input.CursorEnd()

	return sessionModel{
		session: s,
		fields:  fields,
		help:    renderHelp(),
	}
}

// renderHelp renders the "How to Use" topic for the help panel.
func renderHelp() string {
	md, err := docs.GetTopic("howto")
	if err != nil {
		return err.Error()
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// fieldText returns the text shown in field for state s.
func fieldText(s tokensense.State, field tokensense.Field) string {
	switch field {
	case tokensense.FieldSupply:
		return tokensense.FormatGroupedInteger(s.InitialSupply)
	case tokensense.FieldBurn:
		return strconv.FormatFloat(float64(s.BurnPercentage), 'f', -1, 64)
	case tokensense.FieldPrice:
		return s.PricePerToken.Amount()
	case tokensense.FieldHoldings:
		return tokensense.FormatGroupedInteger(s.PersonalHoldings)
	case tokensense.FieldShare:
		return strconv.FormatFloat(math.Round(float64(s.HoldingsPercentage)*1e4)/1e4, 'f', -1, 64)
	}
	return ""
}

// sliderValue returns the numeric value of the slider field in state s.
func sliderValue(s tokensense.State, field tokensense.Field) float64 {
	if field == tokensense.FieldBurn {
		return float64(s.BurnPercentage)
	}
	return float64(s.HoldingsPercentage)
}

func (m sessionModel) Init() tea.Cmd { return textinput.Blink }

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.Quit):
		return m, tea.Quit
	case key.Matches(k, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(k, keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(k, keys.Prev):
		return m, m.moveFocus(-1)
	case m.fields[m.focus].slider() && key.Matches(k, keys.Left):
		m.slide(-1)
		return m, nil
	case m.fields[m.focus].slider() && key.Matches(k, keys.Right):
		m.slide(1)
		return m, nil
	}

	f := &m.fields[m.focus]
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(k)
	if f.input.Value() != before {
		m.apply(f.field, f.input.Value())
	}
	return m, cmd
}

// moveFocus leaves the focused field, showing the value in use again, and
// focuses the field delta positions away.
func (m *sessionModel) moveFocus(delta int) tea.Cmd {
	cur := &m.fields[m.focus]
	cur.input.Blur()
	cur.input.SetValue(fieldText(m.session.State(), cur.field))
	m.err = nil

	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	next := &m.fields[m.focus]
	cmd := next.input.Focus()
	next.input.CursorEnd()
	return cmd
}

// slide moves the focused slider by dir steps, within [0, 100].
func (m *sessionModel) slide(dir float64) {
	f := &m.fields[m.focus]
	scale := math.Round(1 / f.step)
	v := sliderValue(m.session.State(), f.field) + dir*f.step
	v = math.Round(v*scale) / scale
	v = math.Max(0, math.Min(100, v))
	raw := strconv.FormatFloat(v, 'f', -1, 64)
	f.input.SetValue(raw)
	f.input.CursorEnd()
	m.apply(f.field, raw)
}

// apply edits field with raw and refreshes the other fields.
func (m *sessionModel) apply(field tokensense.Field, raw string) {
	m.err = m.session.Edit(field, raw)
	if m.err != nil {
		return
	}
	s := m.session.State()
	for i := range m.fields {
		if i != m.focus {
			m.fields[i].input.SetValue(fieldText(s, m.fields[i].field))
		}
	}
}

func (m sessionModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TokenSense"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Burn Calculator & Holdings Tracker"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := labelStyle.Render(f.label)
		if i == m.focus {
			label = focusedStyle.Render(f.label)
		}
		b.WriteString(label)
		b.WriteString(f.input.View())
		if f.slider() {
			b.WriteString("  ")
			b.WriteString(sliderBar(sliderValue(m.session.State(), f.field), 20))
		}
		b.WriteString("\n")
	}

	figures := m.session.Figures()
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Circulating Supply"), figureStyle.Render(tokensense.FormatGroupedInteger(figures.CirculatingSupply)))
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Market Cap"), figureStyle.Render(tokensense.FormatCurrency(figures.MarketCap)))
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Holdings Value"), figureStyle.Render(tokensense.FormatAbbreviatedCurrency(figures.HoldingsValue)))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(m.help))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var hints []string
	for _, k := range []key.Binding{keys.Next, keys.Prev, keys.Left, keys.Right, keys.Help, keys.Quit} {
		hints = append(hints, k.Help().Key+" "+k.Help().Desc)
	}
	b.WriteString(hintStyle.Render(strings.Join(hints, " • ")))
	b.WriteString("\n")
	return b.String()
}

// sliderBar draws a percentage between 0 and 100 on width cells. Values above
// 100 fill the bar.
func sliderBar(p float64, width int) string {
	filled := int(math.Round(math.Max(0, math.Min(100, p)) / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
