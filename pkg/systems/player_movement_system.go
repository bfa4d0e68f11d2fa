package systems

import (
	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
	"github.com/decker502/catchthemall/pkg/entities"
)

// PlayerMovementSystem 移动玩家并处理屏幕边缘反弹
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	field         entities.Playfield
	sounds        SoundPlayer
	bounceSound   SoundCue
}

// NewPlayerMovementSystem 创建玩家移动系统
// sounds 可为 nil,此时反弹不发声
func NewPlayerMovementSystem(em *ecs.EntityManager, field entities.Playfield, sounds SoundPlayer, bounceSound SoundCue) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		field:         field,
		sounds:        sounds,
		bounceSound:   bounceSound,
	}
}

// Update 每帧调用一次:先按速度移动,再检查四条边
// 返回本帧发生的反弹次数
func (s *PlayerMovementSystem) Update() int {
	ids := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	bounces := 0
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX
		pos.Y += vel.VY

		col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		bounces += s.bounceOnEdges(pos, vel, col)
	}
	return bounces
}

// bounceOnEdges 四条边各自独立判断,角落一帧内可能反弹两次
// 越界时反转对应速度分量,并把碰撞盒贴回边缘
func (s *PlayerMovementSystem) bounceOnEdges(pos *components.PositionComponent, vel *components.VelocityComponent, col *components.CollisionComponent) int {
	halfW := col.Width / 2
	halfH := col.Height / 2
	bounces := 0

	if pos.X-halfW < 0 {
		vel.VX = -vel.VX
		pos.X = halfW
		bounces++
		s.playBounce()
	}

	if pos.X+halfW > s.field.Width {
		vel.VX = -vel.VX
		pos.X = s.field.Width - halfW
		bounces++
		s.playBounce()
	}

	if pos.Y-halfH < 0 {
		vel.VY = -vel.VY
		pos.Y = halfH
		bounces++
		s.playBounce()
	}

	if pos.Y+halfH > s.field.Height {
		vel.VY = -vel.VY
		pos.Y = s.field.Height - halfH
		bounces++
		s.playBounce()
	}

	return bounces
}

func (s *PlayerMovementSystem) playBounce() {
	if s.sounds != nil {
		s.sounds.PlaySound(s.bounceSound.ID, s.bounceSound.Volume)
	}
}
