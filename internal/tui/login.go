package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginFocus int

const (
	focusUsername loginFocus = iota
	focusPassword
	focusSubmit
	focusGuest
	focusCount
)

const (
	loginHeadline   = "Inicia sesión para sincronizar tu elo y tu billetera"
	submitLabel     = "Entrar"
	submittingLabel = "Verificando..."
	guestLabel      = "Entrar como invitado"
)

type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    loginFocus
	loading  bool

	// credentials captured at submit; later edits do not change who logs in
	pendingUser string
	pendingPass string
}

func newLoginForm() loginForm {
	user := textinput.New()
	user.Prompt = ""
	user.Placeholder = "Usuario o correo"
	user.CharLimit = 64
	user.Width = 32
	user.Focus()

	pass := textinput.New()
	pass.Prompt = ""
	pass.Placeholder = "Contraseña"
	pass.CharLimit = 64
	pass.Width = 32
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return loginForm{username: user, password: pass}
}

func (f *loginForm) resize(width int) {
	w := min(48, max(12, width-8))
	f.username.Width = w
	f.password.Width = w
}

func (f loginForm) canSubmit() bool {
	return !f.loading &&
		strings.TrimSpace(f.username.Value()) != "" &&
		strings.TrimSpace(f.password.Value()) != ""
}

func (f *loginForm) setFocus(to loginFocus) tea.Cmd {
	f.focus = (to%focusCount + focusCount) % focusCount
	f.username.Blur()
	f.password.Blur()
	switch f.focus {
	case focusUsername:
		return f.username.Focus()
	case focusPassword:
		return f.password.Focus()
	}
	return nil
}

func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusUsername:
		f.username, cmd = f.username.Update(msg)
	case focusPassword:
		f.password, cmd = f.password.Update(msg)
	}
	return cmd
}

func (a *App) updateLogin(msg tea.KeyMsg) tea.Cmd {
	scope := scopeLogin
	switch {
	case a.keys.IsAction(msg, actionQuit, scope):
		a.log.Info().Msg("quit")
		return tea.Quit
	case a.keys.IsAction(msg, actionGuest, scope):
		a.loginAsGuest()
		return nil
	case a.keys.IsAction(msg, actionFocusNext, scope):
		return a.login.setFocus(a.login.focus + 1)
	case a.keys.IsAction(msg, actionFocusPrev, scope):
		return a.login.setFocus(a.login.focus - 1)
	case a.keys.IsAction(msg, actionActivate, scope):
		switch a.login.focus {
		case focusUsername:
			return a.login.setFocus(focusPassword)
		case focusGuest:
			a.loginAsGuest()
			return nil
		default:
			return a.submitLogin()
		}
	}
	return a.login.update(msg)
}

func (a *App) submitLogin() tea.Cmd {
	if a.login.loading {
		return nil
	}
	if !a.login.canSubmit() {
		a.setError("Completa usuario y contraseña")
		return nil
	}
	a.login.loading = true
	a.login.pendingUser = a.login.username.Value()
	a.login.pendingPass = a.login.password.Value()
	id, cmd := a.tasks.Start(kindLogin, a.cfg.Timing.LoginDelay)
	a.loginTask = id
	a.setStatus(submittingLabel)
	a.log.Info().Uint64("task", id).Dur("delay", a.cfg.Timing.LoginDelay).Msg("login submitted")
	return tea.Batch(cmd, a.spinner.Tick)
}

func (a *App) finishLogin() {
	u := a.session.Login(a.login.pendingUser, a.login.pendingPass)
	a.login = newLoginForm()
	a.login.resize(a.width)
	a.setStatus("Bienvenido, " + u.Name)
	a.log.Info().Str("user_id", u.ID).Int("rating", u.Rating).Msg("login completed")
}

func (a *App) loginAsGuest() {
	if n := a.tasks.CancelKind(kindLogin); n > 0 {
		a.log.Debug().Int("cancelled", n).Msg("pending login cancelled")
	}
	u := a.session.LoginAsGuest()
	a.login = newLoginForm()
	a.login.resize(a.width)
	a.setStatus("Sesión de invitado")
	a.log.Info().Str("user_id", u.ID).Msg("guest login")
}

func (a *App) renderLogin() string {
	f := a.login
	label := mutedStyle.Render
	submit := submitLabel
	if f.loading {
		submit = a.spinner.View() + " " + submittingLabel
	}
	rows := []string{
		titleStyle.Render(appTitle),
		"",
		loginHeadline,
		"",
		label("Usuario o correo"),
		renderCard(0, f.focus == focusUsername, f.username.View()),
		label("Contraseña"),
		renderCard(0, f.focus == focusPassword, f.password.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderButton(submit, f.focus == focusSubmit, f.canSubmit() || f.loading),
			" ",
			renderButton(guestLabel, f.focus == focusGuest, true),
		),
		"",
		mutedStyle.Render("[tab] Campo  [enter] Entrar  [ctrl+g] Invitado  [ctrl+c] Salir"),
	}
	if strings.TrimSpace(a.status) != "" {
		rows = append(rows, "", a.renderStatusBar())
	}
	return strings.Join(rows, "\n")
}
