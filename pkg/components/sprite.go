package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
type SpriteComponent struct {
	Image *ebiten.Image
	// Angle 朝向角度(度,逆时针为正),取值范围 [0, 360]
	Angle float64
}
