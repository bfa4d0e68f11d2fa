package systems

import (
	"math/rand/v2"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
	"github.com/decker502/catchthemall/pkg/entities"
	"github.com/decker502/catchthemall/pkg/game"
)

// fakePlayback 可控的播放句柄
type fakePlayback struct {
	playing bool
}

func (p *fakePlayback) IsPlaying() bool { return p.playing }

// fakeSoundPlayer 记录每次播放请求,新播放默认处于播放中
type fakeSoundPlayer struct {
	started []string
	volumes []float64
	last    *fakePlayback
}

func (f *fakeSoundPlayer) PlaySound(soundID string, volume float64) game.Playback {
	f.started = append(f.started, soundID)
	f.volumes = append(f.volumes, volume)
	f.last = &fakePlayback{playing: true}
	return f.last
}

func (f *fakeSoundPlayer) count(soundID string) int {
	n := 0
	for _, id := range f.started {
		if id == soundID {
			n++
		}
	}
	return n
}

var testField = entities.Playfield{Width: 1024, Height: 768, RespawnMargin: 5}

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

// addTestPlayer 创建一个 40x40 碰撞盒的玩家
func addTestPlayer(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	return entities.NewPlayerEntity(em, entities.SpriteSource{Width: 40, Height: 40}, 1, x, y)
}

// addTestCoin 创建一个 20x20 碰撞盒的金币
func addTestCoin(em *ecs.EntityManager, d components.Denomination, x, y float64) ecs.EntityID {
	// 缩放按面额除以 1/2/3,这里把原始尺寸放大抵消,保证碰撞盒都是 20x20
	size := 20 * d.ScaleDivisor()
	return entities.NewCoinEntityAt(em, d, entities.SpriteSource{Width: size, Height: size}, 1, x, y)
}
