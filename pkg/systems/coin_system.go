package systems

import (
	"math/rand/v2"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
	"github.com/decker502/catchthemall/pkg/entities"
)

// CoinSystem 管理金币的下落、重生和旋转
type CoinSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	field         entities.Playfield
	spinStep      float64
}

// NewCoinSystem 创建金币系统
// spinStep 为每帧旋转的角度
func NewCoinSystem(em *ecs.EntityManager, rng *rand.Rand, field entities.Playfield, spinStep float64) *CoinSystem {
	return &CoinSystem{
		entityManager: em,
		rng:           rng,
		field:         field,
		spinStep:      spinStep,
	}
}

// Update 每帧调用一次
// 每枚金币下落等于面值的像素;掉出底部(Y<0)立即重生到随机位置
func (s *CoinSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.CoinComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		coin, _ := ecs.GetComponent[*components.CoinComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.Y -= float64(coin.Value)
		if pos.Y < 0 {
			s.Respawn(id)
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Angle += s.spinStep
			if sprite.Angle >= 360 {
				sprite.Angle -= 360
			}
		}
	}
}

// Respawn 把金币移到游戏区域内的随机位置
// 金币从不销毁,收集和掉落都通过重生实现
func (s *CoinSystem) Respawn(id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos.X, pos.Y = s.field.RandomPosition(s.rng)
}
