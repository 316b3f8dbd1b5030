package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// stubGame finishes one round every tick and ends after two.
type stubGame struct {
	ticks  int
	resets int
	paused bool
}

func (g *stubGame) ID() string    { return "tui_stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.ticks >= 2 {
		return core.StepResult{State: g.State()}
	}
	g.ticks++
	return core.StepResult{
		State:  g.State(),
		Rounds: []core.RoundSummary{{Round: g.ticks, Attack: 10 * g.ticks}},
	}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: 10 * g.ticks * (g.ticks + 1) / 2, Round: g.ticks, Rounds: 2, GameOver: g.ticks >= 2, Paused: g.paused}
}

func init() {
	registry.Register("tui_stub", func() registry.Game { return &stubGame{} })
}

type savedRound struct {
	session string
	game    string
	round   core.RoundSummary
}

type fakeRecorder struct {
	scores []int
	rounds []savedRound
	err    error
}

func (f *fakeRecorder) SaveScore(gameID string, score int) (int64, error) {
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), f.err
}

func (f *fakeRecorder) SaveRound(sessionID, gameID string, r core.RoundSummary) (int64, error) {
	f.rounds = append(f.rounds, savedRound{sessionID, gameID, r})
	return int64(len(f.rounds)), f.err
}

func tick(t *testing.T, m tea.Model) tea.Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next
}

func press(t *testing.T, m tea.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(msg)
}

func TestModelRecordsRoundsAndScore(t *testing.T) {
	rec := &fakeRecorder{}
	game := &stubGame{}
	var m tea.Model = NewModel(game, rec, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30}, nil)
	m.Init()

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	if len(rec.rounds) != 2 {
		t.Fatalf("saved %d rounds, want 2", len(rec.rounds))
	}
	session := m.(Model).SessionID()
	if !storage.ValidSessionID(session) {
		t.Errorf("session id %q is not a UUID", session)
	}
	for i, r := range rec.rounds {
		if r.session != session || r.game != "tui_stub" || r.round.Round != i+1 {
			t.Errorf("round %d saved as %+v", i, r)
		}
	}
	if len(rec.scores) != 1 || rec.scores[0] != 30 {
		t.Errorf("scores saved = %v, want [30]", rec.scores)
	}

	// Restart starts a new session
	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m)
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.(Model).SessionID() == session {
		t.Error("restart kept the old session id")
	}
	m = tick(t, m)
	if got := rec.rounds[len(rec.rounds)-1].session; got == session {
		t.Error("round after restart saved under the old session")
	}
}

func TestModelSaveErrorsDoNotStopPlay(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	var m tea.Model = NewModel(&stubGame{}, rec, core.DefaultConfig(), nil)
	m.Init()
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	if !m.(Model).gameState.GameOver {
		t.Error("game should still finish")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	game := &stubGame{}
	var m tea.Model = NewModel(game, nil, core.DefaultConfig(), nil)
	m.Init()

	// Back is ignored mid-game
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if m.(Model).IsQuitting() || m.(Model).BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	// Standalone: back after game over quits
	m = tick(t, m)
	m = tick(t, m)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(Model).IsQuitting() || cmd == nil {
		t.Error("back at game over should quit a standalone game")
	}

	// Embedded: back returns to the menu
	em := NewModel(&stubGame{ticks: 2}, nil, core.DefaultConfig(), nil)
	em.embedded = true
	var mm tea.Model = em
	mm = tick(t, mm)
	mm, _ = press(t, mm, runeKey('b'))
	if !mm.(Model).BackToMenu() || mm.(Model).IsQuitting() {
		t.Error("back at game over should return to the menu")
	}

	m, _ = press(t, NewModel(&stubGame{}, nil, core.DefaultConfig(), nil), runeKey('q'))
	if !m.(Model).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	var m tea.Model = NewModel(game, nil, core.DefaultConfig(), nil)
	m.Init()
	m = tick(t, m)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 1 || game.ticks != 1 {
		t.Errorf("resize restarted the game: resets=%d ticks=%d", game.resets, game.ticks)
	}
	if !strings.Contains(m.View(), "stub board") {
		t.Error("view does not show the game")
	}
}

func TestSessionModelFlow(t *testing.T) {
	rec := &fakeRecorder{}
	var m tea.Model = NewSessionModel(rec, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, nil)

	// Pick the stub mode
	s := m.(SessionModel)
	for i, item := range s.menu.items {
		if item.GameID == "tui_stub" {
			s.menu.cursor = i
		}
	}
	m, _ = press(t, s, runeKey('l')) // hard
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.(SessionModel).screen != screenGame {
		t.Fatal("selecting a mode should start the game")
	}
	if got := m.(SessionModel).game.config.Difficulty; got != "hard" {
		t.Errorf("difficulty = %q, want hard", got)
	}

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	if len(rec.rounds) != 2 {
		t.Errorf("session saved %d rounds", len(rec.rounds))
	}

	m, _ = press(t, m, runeKey('b'))
	if m.(SessionModel).screen != screenMenu {
		t.Fatal("back at game over should show the menu")
	}
	if !strings.Contains(m.View(), "Difficulty: < hard >") {
		t.Error("menu forgot the chosen difficulty")
	}

	// Ticks left over from the game are ignored by the menu
	m = tick(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).screen != screenMenu || m.(SessionModel).quitting {
		t.Fatal("esc on the scoreboard should return to the menu")
	}

	m, cmd := press(t, m, runeKey('q'))
	if !m.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}
