package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/signal"
	"github.com/lmiranda/quest-keeper/models"
)

// ErrUserQuit reports that the user closed the program from the login flow
// instead of signing in.
var ErrUserQuit = errors.New("saiu do programa")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenDashboard
	screenCampaignForm
	screenJoin
	screenDetail
	screenItemForm
	screenProfile
)

type appMode int

const (
	modeAuth appMode = iota
	modeMain
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	mode     appMode

	currentScreen screen
	user          models.User

	welcome      welcomeModel
	login        loginModel
	register     registerModel
	dashboard    dashboardModel
	campaignForm campaignFormModel
	join         joinModel
	detail       detailModel
	itemForm     itemFormModel
	profile      profileModel

	// refreshed receives a tick whenever the background worker finished a
	// campaign fetch. Nil in auth mode.
	refreshed <-chan struct{}

	err          error
	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete tea.Cmd

	logout     bool
	resultUser models.User
}

func newAuthAppModel(ctx context.Context, services *service.ClientServices, version string) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeAuth,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(version),
		login:         newLoginModel(),
		register:      newRegisterModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, user models.User, refreshed <-chan struct{}) appModel {
	m := newAuthAppModel(ctx, services, "")
	m.mode = modeMain
	m.user = user
	m.currentScreen = screenDashboard
	m.dashboard = newDashboardModel()
	m.refreshed = refreshed
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.cmdLoadCampaigns(), m.cmdWaitRefresh())
	}
	return m.cmdFetchServerVersion()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.mode == modeAuth {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				pending := m.pendingDelete
				m.pendingDelete = nil
				if pending == nil {
					return m, nil
				}
				return m, pending
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = nil
			}
			return m, nil
		}

	case serverVersionMsg:
		if msg.version != "" {
			m.welcome.notice = helpStyle.Render("servidor v" + msg.version)
		}
		return m, nil

	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.resultUser = msg.user
		return m, tea.Quit

	case signedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case campaignsLoadedMsg:
		m.dashboard.loading = false
		m.dashboard.refreshing = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.dashboard.list = msg.list
		m.dashboard.clampIdx()
		return m, nil

	case campaignSavedMsg:
		m.campaignForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDashboard
		m.dashboard.status = "Mesa salva."
		return m, tea.Batch(m.cmdLoadCampaigns(), cmdClearStatus())

	case campaignDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDashboard
		m.dashboard.status = "Mesa excluída."
		return m, tea.Batch(m.cmdLoadCampaigns(), cmdClearStatus())

	case joinDoneMsg:
		m.join.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDashboard
		m.dashboard.status = "Você entrou na mesa " + msg.campaign.Name + "."
		return m, tea.Batch(m.cmdLoadCampaigns(), cmdClearStatus())

	case itemsLoadedMsg:
		m.detail.items[msg.kind] = msg.items
		m.detailFetchDone()
		return m, nil

	case membersLoadedMsg:
		m.detail.members = msg.members
		m.detailFetchDone()
		return m, nil

	case itemSavedMsg:
		m.itemForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDetail
		reload := m.cmdLoadDetail()
		return m, reload

	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.detail.status = "Registro excluído."
		reload := m.cmdLoadDetail()
		return m, tea.Batch(reload, cmdClearStatus())

	case memberRemovedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.detail.status = "Membro removido."
		return m, tea.Batch(m.cmdLoadMembers(m.detail.campaign.ID), cmdClearStatus())

	case profileSavedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.user = msg.user
		m.currentScreen = screenDashboard
		m.dashboard.status = "Perfil atualizado."
		return m, cmdClearStatus()

	case busNotifyMsg:
		// The background worker refreshed the campaign list; pick it up
		// when the dashboard is showing and keep listening either way.
		if msg.topic == signal.CampaignsRefreshed && m.currentScreen == screenDashboard {
			return m, tea.Batch(m.cmdLoadCampaigns(), m.cmdWaitRefresh())
		}
		return m, m.cmdWaitRefresh()

	case copiedMsg:
		m.detail.status = "Copiado!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.dashboard.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenCampaignForm:
		return m.updateCampaignForm(msg)
	case screenJoin:
		return m.updateJoin(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenItemForm:
		return m.updateItemForm(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenCampaignForm:
		body = m.campaignForm.View()
	case screenJoin:
		body = m.join.View()
	case screenDetail:
		body = m.detail.View()
	case screenItemForm:
		body = m.itemForm.View()
	case screenProfile:
		body = m.profile.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.campaignForm.submitting = v
	m.join.submitting = v
	m.itemForm.submitting = v
	m.profile.submitting = v
}

func (m *appModel) detailFetchDone() {
	if m.detail.pending > 0 {
		m.detail.pending--
	}
	if m.detail.pending == 0 {
		m.detail.loading = false
	}
	m.detail.clampIdx()
}

// ─── screen update handlers ─────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = focusNextInput(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = focusPrevInput(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.showErrorf("Email e senha são obrigatórios")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = focusNextInput(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = focusPrevInput(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if email == "" || password == "" {
				m.showErrorf("Email e senha são obrigatórios")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("As senhas não coincidem")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdSignUp(email, password, name)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.dashboard.idx > 0 {
				m.dashboard.idx--
			}
		case key.Matches(msg, keys.down):
			if m.dashboard.idx < len(m.dashboard.entries())-1 {
				m.dashboard.idx++
			}
		case key.Matches(msg, keys.enter):
			campaign, ok := m.dashboard.current()
			if !ok {
				return m, nil
			}
			role := models.RolePlayer
			if m.dashboard.isMasterAt(m.dashboard.idx) {
				role = models.RoleMaster
			}
			m.detail = newDetailModel(campaign, role)
			m.currentScreen = screenDetail
			load := m.cmdLoadDetail()
			return m, load
		case key.Matches(msg, keys.newItem):
			m.campaignForm = newCampaignFormModel(nil)
			m.currentScreen = screenCampaignForm
		case key.Matches(msg, keys.join):
			m.join = newJoinModel()
			m.currentScreen = screenJoin
		case key.Matches(msg, keys.edit):
			campaign, ok := m.dashboard.current()
			if !ok || !m.dashboard.isMasterAt(m.dashboard.idx) {
				return m, nil
			}
			m.campaignForm = newCampaignFormModel(&campaign)
			m.currentScreen = screenCampaignForm
		case key.Matches(msg, keys.delete):
			campaign, ok := m.dashboard.current()
			if !ok || !m.dashboard.isMasterAt(m.dashboard.idx) {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = campaign.Name
			m.pendingDelete = m.cmdDeleteCampaign(campaign.ID)
		case key.Matches(msg, keys.profile):
			m.profile = newProfileModel(m.user)
			m.currentScreen = screenProfile
		case key.Matches(msg, keys.refresh):
			if m.dashboard.refreshing {
				return m, nil
			}
			m.dashboard.refreshing = true
			return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadCampaigns())
		case key.Matches(msg, keys.logout):
			return m, m.cmdSignOut()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.dashboard.refreshing {
			var cmd tea.Cmd
			m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateCampaignForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.campaignForm.focus = focusNextInput(m.campaignForm.inputs, m.campaignForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.campaignForm.focus = focusPrevInput(m.campaignForm.inputs, m.campaignForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.campaignForm.editing {
				m.campaignForm.statusIdx = wrap(m.campaignForm.statusIdx-1, len(campaignStatuses))
				return m, nil
			}
		case key.Matches(keyMsg, keys.right):
			if m.campaignForm.editing {
				m.campaignForm.statusIdx = wrap(m.campaignForm.statusIdx+1, len(campaignStatuses))
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.campaignForm.inputs[0].Value())
			if name == "" {
				m.showErrorf("O nome da mesa é obrigatório")
				return m, nil
			}
			m.campaignForm.submitting = true
			if m.campaignForm.editing {
				return m, m.cmdUpdateCampaign(m.campaignForm.campaignID, m.campaignForm.patch())
			}
			description := strings.TrimSpace(m.campaignForm.inputs[1].Value())
			imageURL := strings.TrimSpace(m.campaignForm.inputs[2].Value())
			return m, m.cmdCreateCampaign(name, description, imageURL)
		}
	}

	var cmd tea.Cmd
	m.campaignForm.inputs[m.campaignForm.focus], cmd = m.campaignForm.inputs[m.campaignForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateJoin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			code := strings.ToUpper(strings.TrimSpace(m.join.input.Value()))
			if len(code) != models.InviteCodeLength {
				m.showErrorf(fmt.Sprintf("O código de convite tem %d caracteres", models.InviteCodeLength))
				return m, nil
			}
			m.join.submitting = true
			return m, m.cmdJoinCampaign(code)
		}
	}

	var cmd tea.Cmd
	m.join.input, cmd = m.join.input.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail.searching {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.detail.searching = false
			m.detail.search.Blur()
			m.detail.clampIdx()
			return m, nil
		}
		var cmd tea.Cmd
		m.detail.search, cmd = m.detail.search.Update(msg)
		m.detail.clampIdx()
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
		return m, m.cmdLoadCampaigns()
	case key.Matches(keyMsg, keys.tab):
		m.switchDetailTab(1)
	case key.Matches(keyMsg, keys.backtab):
		m.switchDetailTab(-1)
	case key.Matches(keyMsg, keys.up):
		if m.detail.idx > 0 {
			m.detail.idx--
		}
	case key.Matches(keyMsg, keys.down):
		m.detail.idx++
		m.detail.clampIdx()
	case key.Matches(keyMsg, keys.search):
		if m.detail.tab != membersTab {
			m.detail.searching = true
			m.detail.search.Focus()
		}
	case key.Matches(keyMsg, keys.filter):
		if options := m.detail.filterOptions(); len(options) > 0 {
			m.detail.filterIdx = wrap(m.detail.filterIdx+1, len(options))
			m.detail.clampIdx()
		}
	case key.Matches(keyMsg, keys.copy):
		if m.detail.tab == membersTab {
			return m, cmdCopyToClipboard(m.detail.campaign.InviteCode)
		}
	case key.Matches(keyMsg, keys.refresh):
		reload := m.cmdLoadDetail()
		return m, reload
	case key.Matches(keyMsg, keys.newItem):
		kind, ok := m.detail.currentKind()
		if !ok || !m.detail.isMaster() {
			return m, nil
		}
		m.itemForm = newItemFormModel(kind, nil, m.detail.items[models.KindLocation])
		m.currentScreen = screenItemForm
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.edit):
		kind, kindOK := m.detail.currentKind()
		item, itemOK := m.detail.currentItem()
		if !kindOK || !itemOK || !m.detail.isMaster() {
			return m, nil
		}
		m.itemForm = newItemFormModel(kind, &item, m.detail.items[models.KindLocation])
		m.currentScreen = screenItemForm
	case key.Matches(keyMsg, keys.toggle):
		kind, kindOK := m.detail.currentKind()
		item, itemOK := m.detail.currentItem()
		if !kindOK || !itemOK || !m.detail.isMaster() {
			return m, nil
		}
		return m, m.cmdToggleVisibility(kind, item)
	case key.Matches(keyMsg, keys.delete):
		if !m.detail.isMaster() {
			return m, nil
		}
		if m.detail.tab == membersTab {
			member, ok := m.detail.currentMember()
			if !ok || member.Role != models.RolePlayer {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = memberName(member)
			m.pendingDelete = m.cmdRemoveMember(member.UserID)
			return m, nil
		}
		kind, kindOK := m.detail.currentKind()
		item, itemOK := m.detail.currentItem()
		if !kindOK || !itemOK {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = item.Name
		m.pendingDelete = m.cmdDeleteItem(kind, item.ID)
	}

	return m, nil
}

func (m *appModel) switchDetailTab(delta int) {
	m.detail.tab = wrap(m.detail.tab+delta, membersTab+1)
	m.detail.idx = 0
	m.detail.filterIdx = 0
}

func (m appModel) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.itemForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.itemForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.itemForm.cycle(-1) {
				return m, nil
			}
		case key.Matches(keyMsg, keys.right):
			if m.itemForm.cycle(1) {
				return m, nil
			}
		case keyMsg.String() == "ctrl+s":
			if strings.TrimSpace(m.itemForm.name.Value()) == "" {
				m.showErrorf("O nome é obrigatório")
				return m, nil
			}
			m.itemForm.submitting = true
			return m, m.cmdSaveItem(m.itemForm.kind, m.itemForm.toItem())
		}
	}

	cmd := m.itemForm.forwardInput(msg)
	return m, cmd
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.profile.focusName = !m.profile.focusName
			if m.profile.focusName {
				m.profile.name.Focus()
			} else {
				m.profile.name.Blur()
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.profile.submitting = true
			name := strings.TrimSpace(m.profile.name.Value())
			return m, m.cmdSaveProfile(name, m.profile.avatar())
		}

		if !m.profile.focusName {
			switch {
			case key.Matches(keyMsg, keys.left):
				m.profile.avatarIdx = wrap(m.profile.avatarIdx-1, len(models.Avatars))
				return m, nil
			case key.Matches(keyMsg, keys.right):
				m.profile.avatarIdx = wrap(m.profile.avatarIdx+1, len(models.Avatars))
				return m, nil
			case key.Matches(keyMsg, keys.up):
				m.profile.avatarIdx = wrap(m.profile.avatarIdx-4, len(models.Avatars))
				return m, nil
			case key.Matches(keyMsg, keys.down):
				m.profile.avatarIdx = wrap(m.profile.avatarIdx+4, len(models.Avatars))
				return m, nil
			}
			return m, nil
		}
	}

	if m.profile.focusName {
		var cmd tea.Cmd
		m.profile.name, cmd = m.profile.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ─── commands ───────────────────────────────────────────────────────────

func (m appModel) cmdFetchServerVersion() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return serverVersionMsg{version: auth.ServerVersion(ctx)}
	}
}

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.SignIn(ctx, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdSignUp(email, password, name string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.SignUp(ctx, email, password, name)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return signedOutMsg{err: auth.SignOut(ctx)}
	}
}

func (m appModel) cmdLoadCampaigns() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CampaignService
	return func() tea.Msg {
		list, err := svc.Campaigns(ctx)
		return campaignsLoadedMsg{list: list, err: err}
	}
}

// cmdCreateCampaign creates the campaign and, when a cover image was given,
// follows up with a patch; the create endpoint only takes name and
// description.
func (m appModel) cmdCreateCampaign(name, description, imageURL string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CampaignService
	return func() tea.Msg {
		campaign, err := svc.CreateCampaign(ctx, name, description)
		if err != nil {
			return campaignSavedMsg{err: err}
		}
		if imageURL != "" {
			campaign, err = svc.UpdateCampaign(ctx, campaign.ID, models.CampaignPatch{ImageURL: &imageURL})
		}
		return campaignSavedMsg{campaign: campaign, err: err}
	}
}

func (m appModel) cmdUpdateCampaign(campaignID string, patch models.CampaignPatch) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CampaignService
	return func() tea.Msg {
		campaign, err := svc.UpdateCampaign(ctx, campaignID, patch)
		return campaignSavedMsg{campaign: campaign, err: err}
	}
}

func (m appModel) cmdDeleteCampaign(campaignID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CampaignService
	return func() tea.Msg {
		return campaignDeletedMsg{err: svc.DeleteCampaign(ctx, campaignID)}
	}
}

func (m appModel) cmdJoinCampaign(inviteCode string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CampaignService
	return func() tea.Msg {
		campaign, err := svc.JoinCampaign(ctx, inviteCode)
		return joinDoneMsg{campaign: campaign, err: err}
	}
}

// cmdLoadDetail fetches the five item collections and the member list in
// one concurrent batch. Each fetch degrades independently, so one failing
// collection never blanks the others.
func (m *appModel) cmdLoadDetail() tea.Cmd {
	campaignID := m.detail.campaign.ID
	m.detail.loading = true
	m.detail.pending = len(models.ItemKinds) + 1

	cmds := make([]tea.Cmd, 0, len(models.ItemKinds)+1)
	for _, kind := range models.ItemKinds {
		cmds = append(cmds, m.cmdLoadItems(campaignID, kind))
	}
	cmds = append(cmds, m.cmdLoadMembers(campaignID))
	return tea.Batch(cmds...)
}

func (m appModel) cmdLoadItems(campaignID string, kind models.ItemKind) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	return func() tea.Msg {
		return itemsLoadedMsg{kind: kind, items: svc.Items(ctx, campaignID, kind)}
	}
}

func (m appModel) cmdLoadMembers(campaignID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CampaignService
	return func() tea.Msg {
		return membersLoadedMsg{members: svc.Members(ctx, campaignID)}
	}
}

func (m appModel) cmdSaveItem(kind models.ItemKind, item models.Item) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	campaignID := m.detail.campaign.ID
	return func() tea.Msg {
		_, err := svc.SaveItem(ctx, campaignID, kind, item)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdToggleVisibility(kind models.ItemKind, item models.Item) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	campaignID := m.detail.campaign.ID
	return func() tea.Msg {
		_, err := svc.ToggleVisibility(ctx, campaignID, kind, item)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteItem(kind models.ItemKind, itemID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	campaignID := m.detail.campaign.ID
	return func() tea.Msg {
		return itemDeletedMsg{err: svc.DeleteItem(ctx, campaignID, kind, itemID)}
	}
}

func (m appModel) cmdRemoveMember(memberID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CampaignService
	campaignID := m.detail.campaign.ID
	return func() tea.Msg {
		return memberRemovedMsg{err: svc.RemoveMember(ctx, campaignID, memberID)}
	}
}

func (m appModel) cmdSaveProfile(name, avatar string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.UpdateProfile(ctx, name, avatar)
		return profileSavedMsg{user: user, err: err}
	}
}

// cmdWaitRefresh blocks on the worker's notification channel and re-emits
// the tick as a message. Re-armed after every delivery.
func (m appModel) cmdWaitRefresh() tea.Cmd {
	ch := m.refreshed
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return busNotifyMsg{topic: signal.CampaignsRefreshed}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemSavedMsg{err: fmt.Errorf("copiar para a área de transferência: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrevInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
