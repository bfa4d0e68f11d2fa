package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// 布局配置常量
// 本文件定义了窗口尺寸和 HUD 文本的位置、字号、颜色

// Window Configuration (窗口配置)
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 1024

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 768

	// WindowTitle 窗口标题
	WindowTitle = "Catch them all"

	// TicksPerSecond 每秒逻辑帧数,倒计时按帧计算
	TicksPerSecond = 60
)

// HUD Configuration (HUD 配置)
// 以下坐标为屏幕坐标（左上角为原点, Y 轴向下）
const (
	// ClockTextX / ClockTextY 时钟戳位置（左上角）
	ClockTextX = 5.0
	ClockTextY = 4.0
	// ClockFontSize 时钟戳字号
	ClockFontSize = 8.0

	// ScoreTextX / ScoreTextY 分数文本位置,位于时钟戳下方
	ScoreTextX = 10.0
	ScoreTextY = 20.0
	// ScoreFontSize 分数字号
	ScoreFontSize = 12.0

	// TimerTextY 剩余时间文本的顶部位置,水平居中
	TimerTextY = 30.0
	// TimerFontSize 剩余时间字号
	TimerFontSize = 15.0

	// EndTitleFontSize "The End!" 字号
	EndTitleFontSize = 10.0
	// EndPromptFontSize 重新开始提示字号
	EndPromptFontSize = 12.0
	// EndPromptGap 提示文本相对标题向下的距离
	EndPromptGap = 30.0
)

// End Screen Configuration (结束画面配置)
const (
	// EndTitleText 结束标题
	EndTitleText = "The End!"
	// EndPromptText 重新开始提示
	EndPromptText = "Press enter to start again."
	// EndPlayerYDivisor 结束画面玩家的世界Y坐标 = 屏幕高度 / 2.5
	EndPlayerYDivisor = 2.5
)

// ClockLayout 时钟戳格式 (YYYY-MM-DD HH:MM:SS)
const ClockLayout = "2006-01-02 15:04:05"

// Colors (颜色)
var (
	// BackgroundColor 背景色 Davy's grey
	BackgroundColor = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}

	// TimerTextColor 剩余时间文本颜色 Redwood
	TimerTextColor = color.RGBA{R: 0xab, G: 0x4e, B: 0x52, A: 0xff}

	// HUDTextColor 其他 HUD 文本颜色
	HUDTextColor color.Color = colornames.White
)

// EndPlayerPosition 返回结束画面中玩家的世界坐标（Y 轴向上）
func EndPlayerPosition(width, height float64) (x, y float64) {
	return width / 2, height / EndPlayerYDivisor
}

// EndTitleY 返回 "The End!" 的屏幕Y坐标（屏幕中线）
func EndTitleY(height float64) float64 {
	return height / 2
}
