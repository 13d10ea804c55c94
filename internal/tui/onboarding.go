package tui

import (
	"strings"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type onboardingStep int

const (
	onboardingIntro onboardingStep = iota
	onboardingName
)

// OnboardingModel is the first-run page: a headline, then a name prompt.
// The name is handed to the registration page.
type OnboardingModel struct {
	step   onboardingStep
	name   textinput.Model
	errMsg string
}

func NewOnboardingModel() *OnboardingModel {
	name := textinput.New()
	name.Placeholder = "Your Name"
	name.CharLimit = 64
	name.Width = 40

	return &OnboardingModel{name: name}
}

func (m *OnboardingModel) Init() tea.Cmd {
	return nil
}

func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.step == onboardingIntro {
		if !ok {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.step = onboardingName
			m.name.Focus()
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.login):
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		}
		return m, nil
	}

	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.step = onboardingIntro
			m.errMsg = ""
			m.name.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.name.Value())
			if name == "" {
				m.errMsg = app.MsgNameRequired
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg {
				return NavigateTo{Page: "register", Payload: OnboardingDone{Name: name}}
			}
		}
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *OnboardingModel) View() string {
	var b strings.Builder

	if m.step == onboardingIntro {
		b.WriteString(titleStyle.Render(app.MsgOnboardingHeadline))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(app.MsgOnboardingTagline))
		return renderPage(app.AppName, b.String(), "enter: continue │ l: "+strings.ToLower(app.MsgOnboardingHaveUser)+" │ v: version")
	}

	b.WriteString(mutedStyle.Render(app.MsgOnboardingIntro))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(app.MsgOnboardingAskName))
	b.WriteString("\n\n")
	b.WriteString(m.name.View())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(app.AppName, b.String(), "enter: continue │ esc: back")
}
