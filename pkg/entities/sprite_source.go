package entities

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/catchthemall/pkg/components"
)

// SpriteSource 实体使用的图片及其原始尺寸
// 尺寸单独保存,这样模拟逻辑和测试不依赖 GPU 图片
type SpriteSource struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
}

// SpriteSourceFromImage 由已加载的图片构造 SpriteSource
func SpriteSourceFromImage(img *ebiten.Image) SpriteSource {
	if img == nil {
		return SpriteSource{}
	}
	b := img.Bounds()
	return SpriteSource{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// CoinSprites 每种面额对应的图片
type CoinSprites map[components.Denomination]SpriteSource
