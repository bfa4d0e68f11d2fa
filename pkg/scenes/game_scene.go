package scenes

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/catchthemall/pkg/config"
	"github.com/decker502/catchthemall/pkg/game"
	"github.com/decker502/catchthemall/pkg/logging"
)

// SessionFactory 创建一局新游戏
type SessionFactory func() *Session

// GameScene represents the main gameplay screen.
// It owns the current Session and replaces it with a fresh one when the
// player asks to restart.
type GameScene struct {
	newSession SessionFactory
	session    *Session
	hud        *HUD
	restarts   int

	logger *log.Logger
}

// NewGameScene creates the gameplay scene and starts the first session.
// hud may be nil, in which case only sprites are drawn.
func NewGameScene(newSession SessionFactory, hud *HUD) *GameScene {
	return &GameScene{
		newSession: newSession,
		session:    newSession(),
		hud:        hud,
		logger:     logging.For("GameScene"),
	}
}

// Session returns the session currently being played.
func (s *GameScene) Session() *Session {
	return s.session
}

// Restarts returns how many times the session has been replaced.
func (s *GameScene) Restarts() int {
	return s.restarts
}

// Restart discards the current session and starts a new one.
func (s *GameScene) Restart() {
	s.logger.Info("restarting session", "previous_score", s.session.Score(), "state", s.session.State())
	s.session = s.newSession()
	s.restarts++
}

// Update advances the scene by one frame.
// A restart request is applied before the frame so the new session
// receives the same input.
func (s *GameScene) Update(deltaTime float64, input game.InputFrame) {
	if input.Has(game.ActionRestart) {
		s.Restart()
	}
	s.session.Step(input)
}

// Draw renders the background, the entities and the HUD.
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	renderer := s.session.Renderer()
	if s.session.State() == StatePlaying {
		renderer.DrawCoins(screen)
	}
	renderer.DrawPlayers(screen)

	if s.hud != nil {
		s.hud.Draw(screen, s.session)
	}
}
