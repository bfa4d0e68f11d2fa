package systems

import (
	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
	"github.com/decker502/catchthemall/pkg/game"
)

// InputSystem 把方向动作转换为玩家速度
//
// 按下方向键时把对应轴的速度设为 ±(基础速度 + 速度加成);
// 没有松开处理,玩家会沿最后一次指定的方向持续移动。
type InputSystem struct {
	entityManager *ecs.EntityManager
	baseSpeed     float64
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, baseSpeed float64) *InputSystem {
	return &InputSystem{entityManager: em, baseSpeed: baseSpeed}
}

// Apply 处理本帧的输入
// 同一帧内的多个方向按 Left, Right, Up, Down 的顺序依次生效
func (s *InputSystem) Apply(input game.InputFrame) {
	if input.Empty() {
		return
	}

	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		speed := player.MoveSpeed(s.baseSpeed)

		if input.Has(game.ActionLeft) {
			vel.VX = -speed
		}
		if input.Has(game.ActionRight) {
			vel.VX = speed
		}
		if input.Has(game.ActionUp) {
			vel.VY = speed
		}
		if input.Has(game.ActionDown) {
			vel.VY = -speed
		}
	}
}
