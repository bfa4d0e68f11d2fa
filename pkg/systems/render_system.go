package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
)

// RenderSystem 渲染带 SpriteComponent 的实体
//
// 世界坐标 Y 轴向上,屏幕坐标 Y 轴向下,绘制时按屏幕高度翻转。
// 角度逆时针为正,因此在屏幕上取反旋转。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	screenHeight  float64
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, screenHeight float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		screenHeight:  screenHeight,
	}
}

// ScreenPosition 世界坐标转换为屏幕坐标
func (s *RenderSystem) ScreenPosition(pos *components.PositionComponent) (x, y float64) {
	return pos.X, s.screenHeight - pos.Y
}

// DrawCoins 绘制全部金币
func (s *RenderSystem) DrawCoins(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CoinComponent, *components.SpriteComponent](s.entityManager) {
		s.DrawEntity(screen, id)
	}
}

// DrawPlayers 绘制玩家
func (s *RenderSystem) DrawPlayers(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.SpriteComponent](s.entityManager) {
		s.DrawEntity(screen, id)
	}
}

// DrawEntity 以实体中心为锚点绘制图片,应用缩放和旋转
func (s *RenderSystem) DrawEntity(screen *ebiten.Image, id ecs.EntityID) {
	op, ok := s.spriteOptions(id)
	if !ok {
		return
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	screen.DrawImage(sprite.Image, op)
}

// spriteOptions 计算实体的绘制变换,没有图片或位置时返回 false
func (s *RenderSystem) spriteOptions(id ecs.EntityID) (*ebiten.DrawImageOptions, bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		return nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}

	op := &ebiten.DrawImageOptions{}

	// 居中图片
	bounds := sprite.Image.Bounds()
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)

	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		op.GeoM.Scale(scale.ScaleX, scale.ScaleY)
	}

	op.GeoM.Rotate(-sprite.Angle * math.Pi / 180)

	x, y := s.ScreenPosition(pos)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear

	return op, true
}
