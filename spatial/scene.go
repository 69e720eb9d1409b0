package spatial

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/lukasmw/spatial3d/assets"
	"github.com/lukasmw/spatial3d/config"
	"github.com/lukasmw/spatial3d/geometry"
	"github.com/lukasmw/spatial3d/logger"
)

type SceneState int

const (
	SceneStateRunning SceneState = iota
	SceneStatePaused
)

const defaultStatLogIntervalSeconds = 5

type Scene struct {
	cfg         *config.Config
	listener    *Listener
	sources     []*Source
	statTimer   *Timer
	layoutStore *LayoutStore
	state       SceneState
	logger      logger.Logger
	userMessage string
}

func NewScene(cfg *config.Config) (*Scene, error) {
	layoutStore := NewLayoutStore(cfg)

	statLogInterval := cfg.GetStatLogInterval()
	if statLogInterval == 0 {
		statLogInterval = defaultStatLogIntervalSeconds
	}

	s := &Scene{
		cfg:         cfg,
		listener:    NewListener(),
		statTimer:   NewTimer(time.Duration(statLogInterval) * time.Second),
		layoutStore: layoutStore,
		state:       SceneStateRunning,
		logger:      logger.New(),
	}

	// A saved layout wins over the built-in one
	if sources, err := layoutStore.Load(); err == nil && len(sources) > 0 {
		s.sources = sources
		s.logger.Info("loaded saved source layout", "sourceCount", len(sources))
	} else {
		s.sources = defaultSources(cfg.GetSourceOrbitSpeed())
	}

	s.logger.Info("scene initialized", "sourceCount", len(s.sources), "statLogIntervalSeconds", statLogInterval)
	return s, nil
}

func defaultSources(orbitSpeed float64) []*Source {
	if orbitSpeed == 0 {
		orbitSpeed = 0.6
	}

	return []*Source{
		NewSource("drums", geometry.New(0.0, 0.0, 3.0), orbitSpeed),
		NewSource("vocals", geometry.New(-2.5, 0.5, 1.0), -orbitSpeed/2),
		NewSource("synth", geometry.New(2.0, 1.5, -2.0), orbitSpeed/3),
	}
}

func (s *Scene) Run() error {
	s.logger.Info("starting scene")
	s.setupWindow()

	// Running the scene calls Update() on every 'tick'
	return ebiten.RunGame(s)
}

func (s *Scene) setupWindow() {
	width := s.cfg.GetWindowWidth()
	if width == 0 {
		width = screenWidth
	}
	height := s.cfg.GetWindowHeight()
	if height == 0 {
		height = screenHeight
	}
	title := s.cfg.GetWindowTitle()
	if title == "" {
		title = "spatial3d"
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (s *Scene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.saveLayout()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.loadLayout()
	}

	if s.state == SceneStatePaused {
		return nil
	}

	s.listener.Update()
	for _, source := range s.sources {
		source.Update(s.listener)
	}

	s.statTimer.Update()
	if s.statTimer.IsReady() {
		s.logStats()
		s.statTimer.Reset()
	}

	return nil
}

func (s *Scene) togglePause() {
	if s.state == SceneStateRunning {
		s.state = SceneStatePaused
		s.logger.Debug("scene paused")
	} else {
		s.state = SceneStateRunning
		s.logger.Debug("scene resumed")
	}
}

func (s *Scene) saveLayout() {
	if err := s.layoutStore.Save(s.sources); err != nil {
		s.logger.Error("failed to save layout", "err", err.Error())
		s.userMessage = "save failed"
		return
	}
	s.logger.Info("layout saved", "sourceCount", len(s.sources))
	s.userMessage = "layout saved"
}

func (s *Scene) loadLayout() {
	sources, err := s.layoutStore.Load()
	if err != nil {
		s.logger.Error("failed to load layout", "err", err.Error())
		s.userMessage = "load failed"
		return
	}
	s.sources = sources
	s.logger.Info("layout loaded", "sourceCount", len(sources))
	s.userMessage = "layout loaded"
}

func (s *Scene) logStats() {
	for _, source := range s.sources {
		sp := source.Current()
		s.logger.Debug("source spatialization",
			"name", source.Name(),
			"azimuthDeg", degrees(sp.Azimuth),
			"elevationDeg", degrees(sp.Elevation),
			"distance", sp.Distance,
			"leftGain", sp.LeftGain,
			"rightGain", sp.RightGain,
		)
	}
}

func (s *Scene) Reset() {
	s.logger.Debug("resetting scene")
	s.listener.Reset()
	s.sources = defaultSources(s.cfg.GetSourceOrbitSpeed())
	s.statTimer.Reset()
	s.state = SceneStateRunning
	s.userMessage = ""
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.listener.Draw(screen)
	for _, source := range s.sources {
		source.Draw(screen)
	}

	s.drawHUD(screen)
}

func (s *Scene) drawHUD(screen *ebiten.Image) {
	yawText := fmt.Sprintf("Listener yaw: %+.0f°", degrees(s.listener.Yaw()))
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, 30)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, yawText, assets.HUDFont, op)

	instructionText := "Arrows turn listener | Space pause | R reset | S/L save/load layout"
	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(20, screenHeight-30)
	op2.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, instructionText, assets.HUDFont, op2)

	if s.userMessage != "" {
		op3 := &text.DrawOptions{}
		op3.GeoM.Translate(20, 60)
		op3.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, s.userMessage, assets.HUDFont, op3)
	}

	if s.state == SceneStatePaused {
		pausedOp := &text.DrawOptions{}
		pausedOp.GeoM.Scale(2.0, 2.0)
		pausedOp.GeoM.Translate(screenWidth/2-80, 40)
		pausedOp.ColorScale.ScaleWithColor(pausedTextColor)
		text.Draw(screen, "PAUSED", assets.HUDFont, pausedOp)
	}
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (width, height int) {
	return screenWidth, screenHeight
}
