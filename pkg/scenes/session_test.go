package scenes

import (
	"testing"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/config"
	"github.com/decker502/catchthemall/pkg/ecs"
	"github.com/decker502/catchthemall/pkg/game"
)

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(1, nil)

	if s.State() != StatePlaying {
		t.Errorf("Expected PLAYING, got %v", s.State())
	}
	if x, y := s.PlayerPosition(); x != 50 || y != 50 {
		t.Errorf("Expected player at (50, 50), got (%v, %v)", x, y)
	}
	if s.Score() != 0 || s.SpeedBonus() != 0 {
		t.Errorf("Expected score 0 and bonus 0, got %d and %d", s.Score(), s.SpeedBonus())
	}
	if s.RemainingFrames() != 600 {
		t.Errorf("Expected 600 remaining frames, got %d", s.RemainingFrames())
	}
	if s.RemainingSeconds() != 10 {
		t.Errorf("Expected 10 remaining seconds, got %v", s.RemainingSeconds())
	}
	if got := len(s.CoinIDs()); got != 50 {
		t.Errorf("Expected 50 coins, got %d", got)
	}
}

func TestNewSessionCoinsAreInsidePlayfield(t *testing.T) {
	s := newTestSession(7, nil)
	em := s.EntityManager()

	for _, id := range s.CoinIDs() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		coin, _ := ecs.GetComponent[*components.CoinComponent](em, id)
		if pos.X < 0 || pos.X >= 1024-5 || pos.Y < 0 || pos.Y >= 768-5 {
			t.Errorf("Coin %d spawned outside playfield at (%v, %v)", id, pos.X, pos.Y)
		}
		if coin.Value != coin.Denomination.Value() {
			t.Errorf("Coin %d value %d does not match %v", id, coin.Value, coin.Denomination)
		}
	}
}

func TestSessionEndsAfterSessionFrames(t *testing.T) {
	s := newTestSession(3, nil)

	runFrames(s, 599, game.NewInputFrame())
	if s.State() != StatePlaying {
		t.Fatalf("Expected PLAYING after 599 frames, got %v", s.State())
	}
	if s.RemainingFrames() != 1 {
		t.Errorf("Expected 1 remaining frame, got %d", s.RemainingFrames())
	}

	s.Step(game.NewInputFrame())
	if s.State() != StateEnded {
		t.Fatalf("Expected ENDED after 600 frames, got %v", s.State())
	}
	if s.RemainingFrames() != 0 {
		t.Errorf("Expected 0 remaining frames, got %d", s.RemainingFrames())
	}

	wantX, wantY := config.EndPlayerPosition(1024, 768)
	if x, y := s.PlayerPosition(); x != wantX || y != wantY {
		t.Errorf("Expected player parked at (%v, %v), got (%v, %v)", wantX, wantY, x, y)
	}
}

func TestEndedSessionIsFrozen(t *testing.T) {
	s := newTestSession(5, nil)
	runFrames(s, 600, game.NewInputFrame())
	if s.State() != StateEnded {
		t.Fatalf("Expected ENDED, got %v", s.State())
	}

	em := s.EntityManager()
	coinPositions := make(map[ecs.EntityID]components.PositionComponent)
	for _, id := range s.CoinIDs() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		coinPositions[id] = *pos
	}
	score, bonus := s.Score(), s.SpeedBonus()
	px, py := s.PlayerPosition()

	inputs := []game.InputFrame{
		game.NewInputFrame(game.ActionLeft),
		game.NewInputFrame(game.ActionUp, game.ActionRight),
		game.NewInputFrame(),
	}
	for i := 0; i < 120; i++ {
		s.Step(inputs[i%len(inputs)])
	}

	if s.Score() != score || s.SpeedBonus() != bonus {
		t.Errorf("Score changed while ENDED: %d/%d -> %d/%d", score, bonus, s.Score(), s.SpeedBonus())
	}
	if s.RemainingFrames() != 0 {
		t.Errorf("Timer changed while ENDED: %d", s.RemainingFrames())
	}
	if x, y := s.PlayerPosition(); x != px || y != py {
		t.Errorf("Player moved while ENDED: (%v, %v) -> (%v, %v)", px, py, x, y)
	}
	for id, before := range coinPositions {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if *pos != before {
			t.Errorf("Coin %d moved while ENDED: %+v -> %+v", id, before, *pos)
		}
	}
}

func TestEndedPlayerSpins(t *testing.T) {
	s := newTestSession(5, nil)
	runFrames(s, 600, game.NewInputFrame())

	if s.PlayerAngle() != 0 {
		t.Fatalf("Expected angle 0 before spinning, got %v", s.PlayerAngle())
	}

	// 0 - 2 < 0,回到 360
	s.Step(game.NewInputFrame())
	if s.PlayerAngle() != 360 {
		t.Errorf("Expected angle 360, got %v", s.PlayerAngle())
	}

	s.Step(game.NewInputFrame())
	if s.PlayerAngle() != 358 {
		t.Errorf("Expected angle 358, got %v", s.PlayerAngle())
	}
}

func TestSessionInputSetsVelocity(t *testing.T) {
	s := newTestSession(9, nil)

	s.Step(game.NewInputFrame(game.ActionRight))
	if vx, vy := s.PlayerVelocity(); vx != 4 || vy != 0 {
		t.Errorf("Expected velocity (4, 0), got (%v, %v)", vx, vy)
	}
	if x, _ := s.PlayerPosition(); x != 54 {
		t.Errorf("Expected player x 54, got %v", x)
	}

	// 松开按键不产生动作,速度保持
	s.Step(game.NewInputFrame())
	if vx, _ := s.PlayerVelocity(); vx != 4 {
		t.Errorf("Expected velocity to persist, got %v", vx)
	}
}

func TestSessionBounceSound(t *testing.T) {
	sounds := newFakeSoundPlayer()
	s := newTestSession(11, sounds)

	// 玩家碰撞盒 70x70,左边缘在 x=15,向左 4 帧后越过左边界
	s.Step(game.NewInputFrame(game.ActionLeft))
	runFrames(s, 2, game.NewInputFrame())
	if sounds.played[SoundBounce] != 0 {
		t.Fatalf("Expected no bounce yet, got %d", sounds.played[SoundBounce])
	}

	s.Step(game.NewInputFrame())
	if sounds.played[SoundBounce] != 1 {
		t.Errorf("Expected 1 bounce sound, got %d", sounds.played[SoundBounce])
	}
	if vx, _ := s.PlayerVelocity(); vx <= 0 {
		t.Errorf("Expected velocity to flip positive, got %v", vx)
	}
}

func TestSessionIsDeterministicPerSeed(t *testing.T) {
	script := []game.InputFrame{
		game.NewInputFrame(game.ActionRight, game.ActionUp),
		game.NewInputFrame(),
		game.NewInputFrame(),
		game.NewInputFrame(game.ActionDown),
		game.NewInputFrame(),
		game.NewInputFrame(game.ActionLeft),
	}

	run := func() Snapshot {
		s := newTestSession(42, nil)
		for i := 0; i < 600; i++ {
			s.Step(script[i%len(script)])
		}
		return s.Snapshot()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("Expected identical snapshots, got %+v and %+v", first, second)
	}
	if first.State != StateEnded {
		t.Errorf("Expected ENDED after 600 frames, got %v", first.State)
	}
	if first.Coins != 50 {
		t.Errorf("Unexpected snapshot %+v", first)
	}
}

func TestRulesFromConfig(t *testing.T) {
	cfg, err := config.LoadGameConfig(nil, "")
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	cfg.Gameplay.CoinCount = 12

	rules, err := RulesFromConfig(cfg)
	if err != nil {
		t.Fatalf("RulesFromConfig() error = %v", err)
	}

	if rules.Width != 1024 || rules.Height != 768 {
		t.Errorf("Expected 1024x768, got %vx%v", rules.Width, rules.Height)
	}
	if rules.CoinCount != 12 {
		t.Errorf("Expected coin count 12, got %d", rules.CoinCount)
	}
	if rules.MovementSpeed != 4 || rules.SessionFrames != 600 {
		t.Errorf("Expected speed 4 and 600 frames, got %v and %d", rules.MovementSpeed, rules.SessionFrames)
	}
	if rules.CollectVolume != 0.6 || rules.BounceVolume != 1 {
		t.Errorf("Expected volumes 0.6/1, got %v/%v", rules.CollectVolume, rules.BounceVolume)
	}
	if f := rules.Playfield(); f.RespawnMargin != 5 || f.Width != 1024 {
		t.Errorf("Unexpected playfield %+v", f)
	}
}

func TestSessionStateString(t *testing.T) {
	if StatePlaying.String() != "PLAYING" || StateEnded.String() != "ENDED" {
		t.Errorf("Unexpected state names %q %q", StatePlaying, StateEnded)
	}
}
