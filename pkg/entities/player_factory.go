package entities

import (
	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
// 参数:
//   - manager: EntityManager 实例
//   - sprite: 玩家图片
//   - scale: 图片缩放,同时决定碰撞盒大小
//   - x, y: 出生点(世界坐标)
//
// 返回: 创建的实体ID
func NewPlayerEntity(manager *ecs.EntityManager, sprite SpriteSource, scale, x, y float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	// 初始静止,直到第一次按下方向键
	manager.AddComponent(id, &components.VelocityComponent{})
	manager.AddComponent(id, &components.SpriteComponent{Image: sprite.Image})
	manager.AddComponent(id, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	manager.AddComponent(id, &components.CollisionComponent{
		Width:  sprite.Width * scale,
		Height: sprite.Height * scale,
	})
	manager.AddComponent(id, &components.PlayerComponent{})

	return id
}
