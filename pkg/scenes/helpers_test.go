package scenes

import (
	"math/rand/v2"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/entities"
	"github.com/decker502/catchthemall/pkg/game"
)

// fakeSoundPlayer 记录每个音效的播放次数,返回已结束的句柄
type fakeSoundPlayer struct {
	played map[string]int
}

type finishedPlayback struct{}

func (finishedPlayback) IsPlaying() bool { return false }

func newFakeSoundPlayer() *fakeSoundPlayer {
	return &fakeSoundPlayer{played: make(map[string]int)}
}

func (f *fakeSoundPlayer) PlaySound(soundID string, volume float64) game.Playback {
	f.played[soundID]++
	return finishedPlayback{}
}

// testRules 与默认配置一致的规则
func testRules() SessionRules {
	return SessionRules{
		Width:             1024,
		Height:            768,
		CoinCount:         50,
		MovementSpeed:     4,
		SpeedBonusPerCoin: 1,
		SessionFrames:     600,
		FramesPerSecond:   60,
		StartX:            50,
		StartY:            50,
		PlayerScale:       0.7,
		CoinScale:         0.5,
		RespawnMargin:     5,
		CoinSpinStep:      1,
		EndSpinStep:       2,
		CollectVolume:     0.6,
		BounceVolume:      1,
	}
}

// testAssets 没有图片、只有尺寸的素材:玩家碰撞盒 70x70
func testAssets() SessionAssets {
	coins := make(entities.CoinSprites)
	for _, d := range components.AllDenominations {
		coins[d] = entities.SpriteSource{Width: 40, Height: 40}
	}
	return SessionAssets{
		Player: entities.SpriteSource{Width: 100, Height: 100},
		Coins:  coins,
	}
}

func newTestSession(seed uint64, sounds *fakeSoundPlayer) *Session {
	rng := rand.New(rand.NewPCG(seed, 1024))
	if sounds == nil {
		return NewSession(testRules(), testAssets(), rng, nil)
	}
	return NewSession(testRules(), testAssets(), rng, sounds)
}

// runFrames 用同一个输入推进 n 帧
func runFrames(s *Session, n int, input game.InputFrame) {
	for i := 0; i < n; i++ {
		s.Step(input)
	}
}
