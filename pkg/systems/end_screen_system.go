package systems

import (
	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
)

// EndScreenSystem 结束画面中让玩家原地旋转
type EndScreenSystem struct {
	entityManager *ecs.EntityManager
	step          float64
}

// NewEndScreenSystem 创建结束画面系统,step 为每帧旋转角度
func NewEndScreenSystem(em *ecs.EntityManager, step float64) *EndScreenSystem {
	return &EndScreenSystem{entityManager: em, step: step}
}

// Park 把玩家放到结束画面的固定位置
func (s *EndScreenSystem) Park(x, y float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X, pos.Y = x, y
	}
}

// Update 每帧调用一次:角度减少 step,小于 0 时回到 360
func (s *EndScreenSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.Angle -= s.step
		if sprite.Angle < 0 {
			sprite.Angle = 360
		}
	}
}
