package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/slimytm/slimctl/internal/store"
	"github.com/slimytm/slimctl/internal/tasks"
)

// View identifies which screen the TUI is showing.
type View int

const (
	PlayersView View = iota
	PlaylistListView
	TrackListView
)

const volumeStep = 5

// storeUpdatedMsg signals that the store changed and the screen is stale.
type storeUpdatedMsg struct{}

// fetchDoneMsg signals that a one-shot catalog fetch returned.
type fetchDoneMsg struct{}

// Model is the root bubbletea model for the control TUI.
type Model struct {
	store  *store.Store
	syncer *tasks.Syncer
	logger *log.Logger

	view   View
	player models.PlayerID

	players   list.Model
	playlists list.Model
	tracks    list.Model

	keys keyMap
	help help.Model

	width  int
	height int
}

// New creates the TUI model. The syncer's Run loop must be started by the
// caller; the model only consumes its update pulses.
func New(st *store.Store, syncer *tasks.Syncer, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	m := &Model{
		store:  st,
		syncer: syncer,
		logger: logger,
		view:   PlayersView,
		keys:   newKeyMap(),
		help:   help.New(),
	}

	delegate := list.NewDefaultDelegate()
	m.players = list.New(nil, delegate, 0, 0)
	m.playlists = list.New(nil, delegate, 0, 0)
	m.tracks = list.New(nil, delegate, 0, 0)
	for _, l := range []*list.Model{&m.players, &m.playlists, &m.tracks} {
		l.SetShowTitle(false)
		l.SetShowHelp(false)
		l.SetShowStatusBar(false)
	}

	m.reload()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshPlaylists(), m.waitForUpdate())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case storeUpdatedMsg:
		m.reload()
		return m, m.waitForUpdate()
	case fetchDoneMsg:
		m.reload()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveList(msg)
}

func (m *Model) View() string {
	var body string
	switch m.view {
	case PlayersView:
		body = m.renderPlayers()
	case PlaylistListView:
		body = m.renderPlaylists()
	case TrackListView:
		body = m.renderTracks()
	}

	sections := []string{body}
	if m.store.ConnectionFailed() {
		sections = append(sections, styles.err.Render("Connection to the daemon lost. Restart to reconnect."))
	}
	sections = append(sections, styles.help.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case matches(msg, k.quit):
		return m, tea.Quit
	case matches(msg, k.back):
		switch m.view {
		case TrackListView:
			m.view = PlaylistListView
		case PlaylistListView:
			m.view = PlayersView
		}
		return m, nil
	case matches(msg, k.enter):
		return m.handleSelect()
	case matches(msg, k.refresh):
		return m, m.refreshPlaylists()
	case matches(msg, k.pause):
		if m.view != PlayersView {
			m.syncer.PauseSong(context.Background(), m.player)
			return m, nil
		}
	case matches(msg, k.next):
		if m.view != PlayersView {
			m.syncer.NextSong(context.Background(), m.player)
			return m, nil
		}
	case matches(msg, k.prev):
		if m.view != PlayersView {
			m.syncer.PreviousSong(context.Background(), m.player)
			return m, nil
		}
	case matches(msg, k.volUp):
		if m.view != PlayersView {
			m.nudgeVolume(volumeStep)
			return m, nil
		}
	case matches(msg, k.volDown):
		if m.view != PlayersView {
			m.nudgeVolume(-volumeStep)
			return m, nil
		}
	case matches(msg, k.shuffle):
		if m.view == TrackListView {
			m.syncer.Shuffle(context.Background(), m.player, m.store.CurrentPlaylist().ID, nil)
			return m, nil
		}
	}

	return m.updateActiveList(msg)
}

func (m *Model) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case PlayersView:
		item, ok := m.players.SelectedItem().(playerItem)
		if !ok {
			return m, nil
		}
		m.player = item.player.ID
		m.view = PlaylistListView
		return m, m.refreshPlaylists()
	case PlaylistListView:
		item, ok := m.playlists.SelectedItem().(playlistItem)
		if !ok {
			return m, nil
		}
		m.view = TrackListView
		return m, m.openPlaylist(item.playlist.ID)
	case TrackListView:
		item, ok := m.tracks.SelectedItem().(trackItem)
		if !ok {
			return m, nil
		}
		song := item.track
		m.syncer.PlaySong(context.Background(), m.player, m.store.CurrentPlaylist().ID, &song)
		return m, nil
	}
	return m, nil
}

func (m *Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlayersView:
		m.players, cmd = m.players.Update(msg)
	case PlaylistListView:
		m.playlists, cmd = m.playlists.Update(msg)
	case TrackListView:
		m.tracks, cmd = m.tracks.Update(msg)
	}
	return m, cmd
}

func (m *Model) nudgeVolume(delta int) {
	level := shared.Clamp(m.store.PlayerState(m.player).Volume+delta, 0, 100)
	m.syncer.SetVolume(context.Background(), m.player, level)
}

// reload rebuilds every list from the store's current selectors.
func (m *Model) reload() {
	players := m.store.Players()
	items := make([]list.Item, 0, len(players))
	for _, p := range players {
		items = append(items, playerItem{player: p})
	}
	m.players.SetItems(items)

	playlists := m.store.Playlists()
	items = make([]list.Item, 0, len(playlists))
	for _, p := range playlists {
		items = append(items, playlistItem{playlist: p})
	}
	m.playlists.SetItems(items)

	detail := m.store.CurrentPlaylist()
	items = make([]list.Item, 0, len(detail.Tracks))
	for _, t := range detail.Tracks {
		items = append(items, trackItem{track: t})
	}
	m.tracks.SetItems(items)
}

func (m *Model) resize() {
	// Leave room for the title line and the help footer.
	h := m.height - 6
	if h < 0 {
		h = 0
	}
	for _, l := range []*list.Model{&m.players, &m.playlists, &m.tracks} {
		l.SetSize(m.width, h)
	}
	m.help.Width = m.width
}

func (m *Model) renderPlayers() string {
	title := styles.title.Render("Players")
	if len(m.players.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			styles.warn.Render("No players connected. Waiting for the daemon..."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.players.View())
}

func (m *Model) renderPlaylists() string {
	title := styles.title.Render(fmt.Sprintf("Playlists • %s", m.playerLabel()))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.playlists.View(), m.nowPlaying())
}

func (m *Model) renderTracks() string {
	detail := m.store.CurrentPlaylist()
	title := styles.title.Render(fmt.Sprintf("%s • %s", detail.Title, m.playerLabel()))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.tracks.View(), m.nowPlaying())
}

func (m *Model) playerLabel() string {
	state := m.store.PlayerState(m.player)
	if state.Name == "" {
		return fmt.Sprintf("player %d", state.ID)
	}
	return state.Name
}

// nowPlaying renders a one-line transport status for the chosen player.
func (m *Model) nowPlaying() string {
	state := m.store.PlayerState(m.player)
	switch {
	case state.Loading:
		return styles.warn.Render("loading...")
	case state.Song.Empty():
		return styles.help.Render("idle")
	case state.Paused:
		return styles.warn.Render(fmt.Sprintf("⏸ %s - %s vol=%d", state.Song.Artist(), state.Song.Title, state.Volume))
	default:
		return styles.ok.Render(fmt.Sprintf("▶ %s - %s vol=%d", state.Song.Artist(), state.Song.Title, state.Volume))
	}
}

// waitForUpdate blocks on the syncer's pulse channel and re-arms after every
// storeUpdatedMsg, so each pulse produces exactly one redraw.
func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		<-m.syncer.Updates()
		return storeUpdatedMsg{}
	}
}

func (m *Model) refreshPlaylists() tea.Cmd {
	return func() tea.Msg {
		m.syncer.RefreshPlaylists(context.Background())
		return fetchDoneMsg{}
	}
}

func (m *Model) openPlaylist(id string) tea.Cmd {
	return func() tea.Msg {
		m.syncer.OpenPlaylist(context.Background(), id)
		return fetchDoneMsg{}
	}
}
