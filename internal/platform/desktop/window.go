// Package desktop provides the Ebitengine presenter: a fixed-size window
// that polls mouse, touch and keyboard, steps the game once per tick and
// draws its frames with plain rectangles and the debug font.
package desktop

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// WindowTitle is the title of the game window.
const WindowTitle = "brick_break"

// Window implements ebiten.Game around an initialized game.
type Window struct {
	game   registry.Game
	input  InputSource
	store  *storage.Store
	logger *log.Logger

	width  int
	height int
	tps    int

	queue core.InputQueue
	chars []rune
	frame core.Frame
	state core.GameState
}

// NewWindow creates the window model. A nil input reads real devices.
func NewWindow(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, input InputSource, logger *log.Logger) *Window {
	if input == nil {
		input = &EbitenInput{}
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return &Window{
		game:   game,
		input:  input,
		store:  store,
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		tps:    cfg.TickRate,
		frame:  game.Frame(),
		state:  game.State(),
	}
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	if w.input.JustPressed(core.ActionQuit) {
		return ebiten.Termination
	}

	// Queue in the order the game applies them: backspace, runes, confirm
	if w.input.JustPressed(core.ActionBackspace) {
		w.queue.PushAction(core.ActionBackspace)
	}
	w.chars = w.input.AppendChars(w.chars[:0])
	for _, r := range w.chars {
		w.queue.PushRune(r)
	}
	if w.input.JustPressed(core.ActionConfirm) {
		w.queue.PushAction(core.ActionConfirm)
	}

	in := core.NewInputFrame()
	w.queue.Drain(&in)
	if x, ok := w.input.PointerX(); ok && w.width > 0 {
		in.SetPointer(float64(x) / float64(w.width) * w.frame.PlayfieldW)
	}

	result := w.game.Step(in, 1/float64(w.tps))
	w.state = result.State
	w.frame = w.game.Frame()

	if result.Transition && result.State.GameOver {
		w.record(result.State)
	}
	return nil
}

// record saves a finished game to the session leaderboard.
func (w *Window) record(s core.GameState) {
	if w.store == nil {
		return
	}
	if _, err := w.store.SaveResult(s.Player, s.Score, s.Level); err != nil {
		w.logger.Warn("cannot record result", "err", err)
		return
	}
	best, err := w.store.BestFor(s.Player)
	if err != nil {
		w.logger.Warn("cannot read best score", "err", err)
		return
	}
	games, err := w.store.Count()
	if err != nil {
		w.logger.Warn("cannot count results", "err", err)
		return
	}
	w.logger.Info("result recorded", "player", s.Player, "score", s.Score, "best", best, "games", games)
}

// Draw renders the last frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	rects, texts := layoutFrame(w.frame, w.width, w.height)
	for _, r := range rects {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
	}
	for _, t := range texts {
		ebitenutil.DebugPrintAt(screen, t.Text, t.X, t.Y)
	}
}

// Layout keeps the logical screen at the configured window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// State returns the last game state summary.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the window and blocks until it is closed. Closing the
// window or pressing Escape returns nil.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := NewWindow(game, store, cfg, nil, logger)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(w.tps)

	err := ebiten.RunGame(w)
	game.Shutdown()
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
