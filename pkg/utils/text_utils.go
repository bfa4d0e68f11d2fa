package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextAlign 文本水平对齐方式
type TextAlign int

const (
	// AlignLeft x 为文本左边缘
	AlignLeft TextAlign = iota
	// AlignCenter x 为文本中心
	AlignCenter
)

// DrawText 在屏幕坐标 (x, y) 处绘制一行文本,y 为文本顶部
// face 为 nil 时不绘制
func DrawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, align TextAlign, clr color.Color) {
	if screen == nil || face == nil || str == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	if align == AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(screen, str, face, op)
}

// MeasureTextWidth 测量单行文本宽度
func MeasureTextWidth(str string, face *text.GoTextFace) float64 {
	if str == "" || face == nil {
		return 0
	}

	width, _ := text.Measure(str, face, 0)
	return width
}
