package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/chesschain/chesschain/internal/config"
	"github.com/chesschain/chesschain/internal/service"
	"github.com/chesschain/chesschain/internal/session"
	"github.com/chesschain/chesschain/internal/task"
)

const (
	kindLogin  task.Kind = "login"
	kindSearch task.Kind = "search"

	defaultWidth = 80
)

// App is the root Bubble Tea model.
type App struct {
	ctx     context.Context
	cfg     config.Config
	log     zerolog.Logger
	catalog *service.CatalogService
	session *session.Session
	tasks   *task.Scheduler
	picker  service.Picker
	keys    *KeyRegistry

	content  service.Catalog
	loaded   bool
	match    *service.Matchmaker
	swap     *service.SwapDesk
	security *service.SecurityCenter

	login      loginForm
	loginTask  uint64
	searchTask uint64

	offerCursor int
	filter      textinput.Model
	filtering   bool

	spinner   spinner.Model
	width     int
	height    int
	status    string
	statusErr bool
}

// Deps are the collaborators the app does not own.
type Deps struct {
	Catalog *service.CatalogService
	Session *session.Session
	// Clock drives the login and search delays. Nil means wall time.
	Clock  task.Clock
	Picker service.Picker
	Logger zerolog.Logger
}

type (
	catalogMsg struct{ catalog service.Catalog }
	statusMsg  string
	errMsg     struct{ error }
)

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	sess := deps.Session
	if sess == nil {
		sess = session.New()
	}
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "nombre o token"
	filter.CharLimit = 32

	a := &App{
		ctx:     ctx,
		cfg:     cfg,
		log:     deps.Logger.With().Str("session_id", sess.ID()).Logger(),
		catalog: deps.Catalog,
		session: sess,
		tasks:   task.NewScheduler(deps.Clock),
		picker:  deps.Picker,
		keys:    NewKeyRegistry(DefaultKeyBindings()),
		login:   newLoginForm(),
		filter:  filter,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   defaultWidth,
	}
	if cfg.Session.AutoGuest && !sess.LoggedIn() {
		u := sess.LoginAsGuest()
		a.log.Info().Str("user_id", u.ID).Msg("guest login")
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCatalog(), textinput.Blink)
}

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		if a.catalog == nil {
			return errMsg{errors.New("catálogo no configurado")}
		}
		c, err := a.catalog.Load(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return catalogMsg{catalog: c}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.login.resize(m.Width)
		a.filter.Width = max(8, m.Width-12)
		return a, nil
	case catalogMsg:
		a.applyCatalog(m.catalog)
		return a, nil
	case task.Fired:
		return a, a.handleFired(m)
	case spinner.TickMsg:
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case statusMsg:
		a.setStatus(string(m))
		return a, nil
	case errMsg:
		a.log.Error().Err(m.error).Msg("catalog load failed")
		a.setError("error: " + m.error.Error())
		return a, nil
	case tea.KeyMsg:
		if !a.session.LoggedIn() {
			return a, a.updateLogin(m)
		}
		return a, a.updateShell(m)
	}
	if !a.session.LoggedIn() {
		return a, a.login.update(msg)
	}
	if a.filtering {
		var cmd tea.Cmd
		a.filter, cmd = a.filter.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) applyCatalog(c service.Catalog) {
	a.content = c
	a.loaded = true
	a.match = service.NewMatchmaker(c.Offers, a.picker)
	a.swap = service.NewSwapDesk(c.Swap)
	a.security = service.NewSecurityCenter(c.Security)
	a.log.Debug().Int("offers", len(c.Offers)).Msg("catalog loaded")
}

func (a *App) handleFired(f task.Fired) tea.Cmd {
	if !a.tasks.Settle(f) {
		a.log.Debug().Str("kind", string(f.Kind)).Uint64("task", f.ID).Msg("stale task dropped")
		return nil
	}
	switch f.Kind {
	case kindLogin:
		a.finishLogin()
	case kindSearch:
		a.finishSearch()
	}
	return nil
}

func (a *App) busy() bool {
	return a.login.loading || (a.match != nil && a.match.Searching())
}

func (a *App) scope() string {
	switch {
	case !a.session.LoggedIn():
		return scopeLogin
	case a.filtering:
		return scopeFilter
	default:
		return tabScope(string(a.session.ActiveTab()))
	}
}

func (a *App) updateShell(msg tea.KeyMsg) tea.Cmd {
	scope := a.scope()
	if a.keys.IsAction(msg, actionQuit, scope) {
		a.log.Info().Msg("quit")
		return tea.Quit
	}
	if a.filtering {
		return a.updateFilter(msg)
	}
	switch {
	case a.keys.IsAction(msg, actionSwitchTab, scope):
		tabs := session.Tabs()
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(tabs) {
			a.selectTab(tabs[idx])
		}
		return nil
	case a.keys.IsAction(msg, actionTabNext, scope):
		a.selectTab(a.session.Next())
		return nil
	case a.keys.IsAction(msg, actionTabPrev, scope):
		a.selectTab(a.session.Prev())
		return nil
	}
	if !a.loaded {
		return nil
	}
	switch a.session.ActiveTab() {
	case session.TabMatchmaking:
		return a.updateMatchmaking(msg)
	case session.TabWallet:
		return a.updateWallet(msg)
	case session.TabSwap:
		return a.updateSwap(msg)
	case session.TabSecurity:
		return a.updateSecurity(msg)
	}
	return nil
}

func (a *App) selectTab(t session.Tab) {
	before := a.session.ActiveTab()
	if !a.session.Select(t) || before == t {
		return
	}
	a.log.Debug().Str("from", string(before)).Str("to", string(t)).Msg("tab changed")
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

func (a *App) View() string {
	if !a.session.LoggedIn() {
		return a.renderLogin()
	}
	var body string
	if !a.loaded {
		body = mutedStyle.Render("Cargando catálogo...")
	} else {
		switch a.session.ActiveTab() {
		case session.TabDashboard:
			body = a.renderDashboard()
		case session.TabMatchmaking:
			body = a.renderMatchmaking()
		case session.TabWallet:
			body = a.renderWallet()
		case session.TabSwap:
			body = a.renderSwap()
		case session.TabSecurity:
			body = a.renderSecurity()
		}
	}
	if a.height > 0 {
		body = fitHeight(body, max(1, a.height-3))
	}
	return strings.Join([]string{
		a.renderHeader(),
		body,
		a.renderFooter(),
		a.renderStatusBar(),
	}, "\n")
}
