package gui

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/milo/internal"
	"codeberg.org/snonux/milo/internal/card"
	"codeberg.org/snonux/milo/internal/engine"
	"codeberg.org/snonux/milo/internal/render"
)

// Application represents the main GUI application. It is the view adapter:
// it binds rendered card images to the window and translates clicks and key
// presses into events on the engine's bus. All state transitions happen in
// the engine; the GUI only displays the artifacts it is handed.
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	cardDisplay *CardDisplay
	statusLabel *widget.Label
	wrongBtn    *ttwidget.Button
	rightBtn    *ttwidget.Button
	flipBtn     *ttwidget.Button

	// Core
	engine *engine.Engine
	store  card.Store

	// Face currently bound to the display; touched only on the Fyne thread
	current     render.Card
	showingBack bool
	cardsSeen   int

	// Configuration
	config *Config

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds GUI application configuration.
type Config struct {
	DataFile   string // CSV word list with French/English header columns
	ThemeDir   string // theme resource directory, empty for built-in theme
	FlipDelay  time.Duration
	Policy     string // random, no-repeat or sequential
	Seed       int64  // random seed, 0 picks one from the clock
	Spec       render.Spec
	Background string // window background color name or #rrggbb

	// DisableCache turns off render memoization. Output is identical
	// either way; only latency changes.
	DisableCache bool
}

// DefaultConfig returns default GUI configuration.
func DefaultConfig() *Config {
	return &Config{
		FlipDelay:  5 * time.Second,
		Policy:     "random",
		Spec:       render.DefaultSpec(),
		Background: render.DefaultBackground,
	}
}

// New creates a new GUI application. All startup loads happen here, before
// any window is shown: an empty word list or unreadable theme resource
// returns an error and the UI never partially starts.
func New(config *Config) (*Application, error) {
	if config == nil {
		config = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if config.FlipDelay <= 0 {
			config.FlipDelay = defaults.FlipDelay
		}
		if config.Policy == "" {
			config.Policy = defaults.Policy
		}
		if config.Spec == (render.Spec{}) {
			config.Spec = defaults.Spec
		}
		if config.Background == "" {
			config.Background = defaults.Background
		}
	}

	store, err := card.LoadStore(config.DataFile)
	if err != nil {
		return nil, err
	}

	themeRes, err := render.LoadTheme(config.ThemeDir, config.Spec)
	if err != nil {
		return nil, err
	}
	renderer, err := render.NewRenderer(themeRes)
	if err != nil {
		return nil, err
	}
	if config.DisableCache {
		renderer.SetCacheEnabled(false)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy, err := card.ParsePolicy(config.Policy, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.milo")

	a := &Application{
		app:    myApp,
		store:  store,
		config: config,
		ctx:    ctx,
		cancel: cancel,
	}
	a.engine = engine.New(store, policy, renderer, a, config.FlipDelay)

	a.setupUI()

	return a, nil
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Milo v%s - French Flashcards", internal.Version))
	a.window.Resize(fyne.NewSize(900, 720))

	a.cardDisplay = NewCardDisplay()

	// Advance buttons (tooltips are set after the tooltip layer is
	// created). Wrong and right both advance: the viewer keeps no score.
	a.wrongBtn = ttwidget.NewButtonWithIcon("", theme.CancelIcon(), a.onAdvance)
	a.rightBtn = ttwidget.NewButtonWithIcon("", theme.ConfirmIcon(), a.onAdvance)
	a.flipBtn = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onFlip)

	buttons := container.NewHBox(
		a.wrongBtn,
		widget.NewSeparator(),
		a.flipBtn,
		widget.NewSeparator(),
		a.rightBtn,
	)

	a.statusLabel = widget.NewLabel(fmt.Sprintf("%d cards loaded", a.store.Len()))
	a.statusLabel.Alignment = fyne.TextAlignCenter

	content := container.NewBorder(
		nil,
		container.NewVBox(
			container.NewCenter(buttons),
			widget.NewSeparator(),
			a.statusLabel,
		),
		nil, nil,
		container.NewCenter(a.cardDisplay),
	)

	bg := canvas.NewRectangle(a.backgroundColor())
	stacked := container.NewStack(bg, content)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(stacked, a.window.Canvas()))

	a.wrongBtn.SetToolTip("Didn't know it - next card (space)")
	a.rightBtn.SetToolTip("Knew it - next card (space)")
	a.flipBtn.SetToolTip("Reveal the back (f)")

	a.window.SetOnClosed(func() {
		// Cancel the scheduler and stop the reducer; events already
		// queued are drained before the loop returns.
		a.cancel()
		a.engine.Bus().Close()
		a.wg.Wait()
	})

	a.setupKeyboardShortcuts()
}

// Run starts the reducer loop and then the GUI main loop.
func (a *Application) Run() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.engine.Run(a.ctx)
	}()

	a.window.ShowAndRun()
}

// onAdvance handles both the wrong and right buttons.
func (a *Application) onAdvance() {
	a.engine.Bus().Publish(engine.EventAdvance)
}

// onFlip reveals the back early. Same event as the auto-flip timer; a
// duplicate is dropped by the reducer.
func (a *Application) onFlip() {
	a.engine.Bus().Publish(engine.EventAutoFlip)
}

// ShowCard implements engine.View. Called from the reducer goroutine, so
// canvas updates are marshaled through fyne.Do.
func (a *Application) ShowCard(c render.Card, showingBack bool) {
	fyne.Do(func() {
		a.current = c
		a.showingBack = showingBack
		a.cardsSeen++
		a.refreshCard()
	})
}

// ShowFace implements engine.View. Only the displayed face changes; the
// artifacts from the last ShowCard stay bound.
func (a *Application) ShowFace(showingBack bool) {
	fyne.Do(func() {
		a.showingBack = showingBack
		a.refreshCard()
	})
}

func (a *Application) refreshCard() {
	img := a.current.Front
	face := a.config.Spec.FrontTitle
	if a.showingBack {
		img = a.current.Back
		face = a.config.Spec.BackTitle
	}
	a.cardDisplay.SetFace(img, face)
	a.statusLabel.SetText(fmt.Sprintf("Card %d - %d words - showing %s", a.cardsSeen, a.store.Len(), face))
}

func (a *Application) backgroundColor() color.Color {
	c, err := render.ParseColor(a.config.Background)
	if err != nil {
		return color.RGBA{R: 180, G: 221, B: 199, A: 255}
	}
	return c
}

// setupKeyboardShortcuts sets up keyboard shortcuts for the application
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeySpace, fyne.KeyRight, fyne.KeyReturn, fyne.KeyEnter:
			a.onAdvance()
		case fyne.KeyF, fyne.KeyUp:
			a.onFlip()
		case fyne.KeyQ, fyne.KeyEscape:
			a.window.Close()
		}
	})
}
