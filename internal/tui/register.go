package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/service"
	"github.com/MKhiriev/thoughts/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
)

// RegisterModel is the account creation screen. The name is usually
// pre-filled from onboarding, so focus starts on the email field then.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	fields := make([]textinput.Model, 3)

	fields[registerName] = textinput.New()
	fields[registerName].Placeholder = "Your Name"
	fields[registerName].CharLimit = 64
	fields[registerName].Width = 40
	fields[registerName].Focus()

	fields[registerEmail] = textinput.New()
	fields[registerEmail].Placeholder = "Email"
	fields[registerEmail].CharLimit = 254
	fields[registerEmail].Width = 40

	fields[registerPassword] = textinput.New()
	fields[registerPassword].Placeholder = "Password"
	fields[registerPassword].EchoMode = textinput.EchoPassword
	fields[registerPassword].EchoCharacter = '*'
	fields[registerPassword].CharLimit = 256
	fields[registerPassword].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OnboardingDone:
		m.inputs[registerName].SetValue(msg.Name)
		m.setFocus(registerEmail)
		return m, nil
	case AuthResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "onboarding"} }
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			creds := models.Credentials{
				Name:     m.inputs[registerName].Value(),
				Email:    strings.TrimSpace(m.inputs[registerEmail].Value()),
				Password: m.inputs[registerPassword].Value(),
			}
			if creds.Email == "" || creds.Password == "" {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(app.MsgCreateAccount))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[" + app.MsgProcessing + "]\n")
	} else {
		b.WriteString("\n[Create Account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(pageTitle("Create Account"), strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: create account")
}

func (m *RegisterModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		sess, err := auth.Register(ctx, creds)
		return AuthResult{Session: sess, Err: err}
	}
}

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
