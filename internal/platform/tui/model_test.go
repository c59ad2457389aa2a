package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dotmaze/internal/core"
	"github.com/vovakirdan/dotmaze/internal/storage"
)

// fakeGame replays a scripted sequence of states, one per Step.
type fakeGame struct {
	states  []core.GameState
	steps   int
	resets  int
	resized [2]int
	inputs  []core.InputFrame
	quitOn  int
	runID   string
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) RunID() string { return g.runID }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Step(input core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, input.Clone())
	g.steps++
	res := core.StepResult{State: g.State()}
	if g.quitOn > 0 && g.steps == g.quitOn {
		res.Quit = true
	}
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	if len(g.states) == 0 {
		return core.GameState{}
	}
	i := g.steps - 1
	if i < 0 {
		i = 0
	}
	if i >= len(g.states) {
		i = len(g.states) - 1
	}
	return g.states[i]
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{Gen: m.tickGen})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 30, Seed: 1}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	over := core.GameState{Score: 420, Level: 2, GameOver: true}
	game := &fakeGame{
		runID: "run-1",
		states: []core.GameState{
			{Score: 100, Level: 1},
			over, over, over,
			{Score: 0, Level: 1},
			{Score: 50, Level: 1, GameOver: true},
		},
	}
	m := NewModel(game, store, testConfig(), "alice")
	m.Init()

	for range 6 {
		m = tick(m)
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 saved results, got %d", len(scores))
	}
	top := scores[0]
	if top.Score != 420 || top.Level != 2 || top.Player != "alice" || top.RunID != "run-1" {
		t.Errorf("Unexpected saved result %+v", top)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{states: []core.GameState{{GameOver: true}}}
	m := NewModel(game, store, testConfig(), "bob")

	m = tick(m)

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no saved results, got %d", len(scores))
	}
}

func TestModelForwardsKeysToNextTick(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), "")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(m)
	m = tick(m)

	if len(game.inputs) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(game.inputs))
	}
	first := game.inputs[0]
	if first.Has(core.ActionUp) || !first.Has(core.ActionRight) {
		t.Errorf("Expected only the latest direction, got %v", first.Actions)
	}
	if game.inputs[1].Pressed() {
		t.Errorf("Expected input to be cleared after a tick, got %v", game.inputs[1].Actions)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), "")

	next, cmd := m.Update(TickMsg{Gen: m.tickGen + 100})
	m = next.(Model)
	if cmd != nil {
		t.Error("Expected stale tick to schedule nothing")
	}
	if game.steps != 0 {
		t.Errorf("Expected no steps, got %d", game.steps)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testConfig(), "")
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("Expected a single reset, got %d", game.resets)
	}
	if game.resized != [2]int{100, 40} {
		t.Errorf("Expected resize to 100x40, got %v", game.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("Expected screen 100x40, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	game := &fakeGame{states: []core.GameState{{Paused: false}, {Paused: true}}}
	m := NewModel(game, nil, testConfig(), "")

	m = tick(m)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Expected esc to be a game key while running")
	}

	m = tick(m)
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Expected esc to leave a paused game")
	}
	if cmd != nil {
		t.Error("Expected embedded model not to quit the program")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), "")
	m, cmd := press(m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("Expected q to quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestModelQuitFromGame(t *testing.T) {
	game := &fakeGame{quitOn: 1}
	m := NewModel(game, nil, testConfig(), "")
	m = tick(m)
	if !m.IsQuitting() {
		t.Error("Expected the game's quit request to stop the model")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), "")
	if !strings.Contains(m.View(), "fake") {
		t.Error("Expected view to contain the rendered game")
	}
}
