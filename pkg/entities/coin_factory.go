package entities

import (
	"math/rand/v2"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
)

// RandomDenomination 在三种面额中均匀随机选择
func RandomDenomination(rng *rand.Rand) components.Denomination {
	return components.AllDenominations[rng.IntN(len(components.AllDenominations))]
}

// NewCoinEntity 创建一枚金币实体
// 面额均匀随机,位置在游戏区域内均匀随机
//
// 参数:
//   - manager: EntityManager 实例
//   - rng: 随机数源
//   - sprites: 各面额图片
//   - baseScale: 铜币缩放,银币和金币的缩放依次除以 2 和 3
//   - field: 游戏区域
//
// 返回: 创建的实体ID
func NewCoinEntity(manager *ecs.EntityManager, rng *rand.Rand, sprites CoinSprites, baseScale float64, field Playfield) ecs.EntityID {
	denomination := RandomDenomination(rng)
	x, y := field.RandomPosition(rng)
	return NewCoinEntityAt(manager, denomination, sprites[denomination], baseScale, x, y)
}

// NewCoinEntityAt 在指定位置创建指定面额的金币
func NewCoinEntityAt(manager *ecs.EntityManager, denomination components.Denomination, sprite SpriteSource, baseScale, x, y float64) ecs.EntityID {
	id := manager.CreateEntity()
	scale := baseScale / denomination.ScaleDivisor()

	manager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	manager.AddComponent(id, &components.SpriteComponent{Image: sprite.Image})
	manager.AddComponent(id, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	manager.AddComponent(id, &components.CollisionComponent{
		Width:  sprite.Width * scale,
		Height: sprite.Height * scale,
	})
	manager.AddComponent(id, &components.CoinComponent{
		Denomination: denomination,
		Value:        denomination.Value(),
	})

	return id
}
