// Package tui is the terminal surface of the game: a Bubble Tea model that
// projects the controller's scene and forwards key presses to it.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/Makepad-fr/plantetyven/internal/app"
	"github.com/Makepad-fr/plantetyven/internal/asset"
	"github.com/Makepad-fr/plantetyven/internal/game"
	"github.com/Makepad-fr/plantetyven/internal/ui"
)

// Options for a play session.
type Options struct {
	ShopURL string
	Log     *zap.Logger
}

// Result tells the caller how the session ended.
type Result struct {
	VisitShop bool
	ShopURL   string
	Streak    int
}

type eventMsg app.Event

type triggerDoneMsg struct{ err error }

type modelTUI struct {
	ctx    context.Context
	ctrl   *app.Controller
	assets *asset.Lazy
	log    *zap.Logger
	keys   keyMap
	help   help.Model

	scene      app.Scene
	cursor     int
	triggering bool
	width      int
	height     int

	shopURL   string
	qr        string
	visitShop bool
}

func newModel(ctx context.Context, ctrl *app.Controller, assets *asset.Lazy, opt Options) modelTUI {
	log := opt.Log
	if log == nil {
		log = zap.NewNop()
	}
	m := modelTUI{
		ctx:     ctx,
		ctrl:    ctrl,
		assets:  assets,
		log:     log,
		keys:    newKeyMap(),
		help:    help.New(),
		scene:   ctrl.Snapshot(),
		shopURL: opt.ShopURL,
	}
	if opt.ShopURL != "" {
		if q, err := qrcode.New(opt.ShopURL, qrcode.Medium); err == nil {
			m.qr = strings.TrimRight(q.ToSmallString(false), "\n")
		} else {
			log.Warn("qr code not rendered", zap.Error(err))
		}
	}
	return m
}

// Run plays until the player quits. ctrl must already be loaded.
func Run(ctx context.Context, ctrl *app.Controller, assets *asset.Lazy, opt Options) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(ctx, ctrl, assets, opt)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, err
	}
	fm, ok := final.(modelTUI)
	if !ok {
		return Result{}, nil
	}
	return Result{VisitShop: fm.visitShop, ShopURL: fm.shopURL, Streak: fm.scene.Streak}, nil
}

func waitForEvent(ch <-chan app.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}

func (m modelTUI) trigger() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return triggerDoneMsg{err: ctrl.Trigger(ctx)}
	}
}

func (m modelTUI) Init() tea.Cmd { return waitForEvent(m.ctrl.Events()) }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ctrl.SetWidth(msg.Width)
		return m, nil

	case eventMsg:
		m.scene = m.ctrl.Snapshot()
		if m.scene.Mode == app.ModeChoosing && msg.Kind == app.EventStage {
			m.cursor = 0
		}
		return m, waitForEvent(m.ctrl.Events())

	case triggerDoneMsg:
		m.triggering = false
		if msg.err != nil && !errors.Is(msg.err, app.ErrBusy) && !errors.Is(msg.err, context.Canceled) {
			m.log.Error("round not started", zap.Error(msg.err))
		}
		m.scene = m.ctrl.Snapshot()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.ctrl.Close()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m modelTUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.scene.Mode {
	case app.ModeIntro:
		// ignore repeated presses until the running trigger returns
		if key.Matches(msg, m.keys.Start) && !m.triggering {
			m.triggering = true
			return m, m.trigger()
		}

	case app.ModeChoosing:
		n := len(m.scene.Choices)
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < n-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Choice):
			m.cursor = int(msg.String()[0] - '1')
			return m.pick()
		case key.Matches(msg, m.keys.Pick):
			return m.pick()
		}

	case app.ModeResult:
		if m.scene.Outcome == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Primary):
			return m.act(m.scene.Outcome.Panel.PrimaryDo)
		case key.Matches(msg, m.keys.Link):
			return m.act(m.scene.Outcome.Panel.LinkDo)
		}
	}
	return m, nil
}

func (m modelTUI) pick() (tea.Model, tea.Cmd) {
	if _, err := m.ctrl.Select(m.cursor); err != nil {
		m.log.Debug("pick ignored", zap.Int("cursor", m.cursor), zap.Error(err))
	}
	m.scene = m.ctrl.Snapshot()
	return m, nil
}

func (m modelTUI) act(a game.Action) (tea.Model, tea.Cmd) {
	switch a {
	case game.ActionVisitShop:
		m.visitShop = true
		m.ctrl.Close()
		return m, tea.Quit
	case game.ActionRestart:
		if err := m.ctrl.Restart(); err != nil {
			m.log.Error("restart failed", zap.Error(err))
		}
		m.scene = m.ctrl.Snapshot()
		m.cursor = 0
	}
	return m, nil
}

func (m modelTUI) View() string {
	f := frame{scene: m.scene, assets: m.assets, cursor: m.cursor, qr: m.qr, shop: m.shopURL}
	content := f.render()
	content += "\n\n" + m.help.View(m.helpKeys())
	return ui.Box(content)
}

func (m modelTUI) helpKeys() helpKeys {
	switch m.scene.Mode {
	case app.ModeIntro:
		return helpKeys{m.keys.Start, m.keys.Quit}
	case app.ModeChoosing:
		return helpKeys{m.keys.Left, m.keys.Right, m.keys.Choice, m.keys.Pick, m.keys.Quit}
	case app.ModeResult:
		return helpKeys{m.keys.Primary, m.keys.Link, m.keys.Quit}
	}
	return helpKeys{m.keys.Quit}
}
