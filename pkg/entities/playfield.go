package entities

import "math/rand/v2"

// Playfield 游戏区域
// 世界坐标范围 [0, Width) × [0, Height),Y 轴向上
type Playfield struct {
	Width  float64
	Height float64
	// RespawnMargin 随机位置向内收缩的像素数,取值为 [0, W-margin) × [0, H-margin)
	RespawnMargin int
}

// RandomPosition 在游戏区域内均匀随机取一个整数像素位置
func (p Playfield) RandomPosition(rng *rand.Rand) (x, y float64) {
	return float64(randomInt(rng, int(p.Width)-p.RespawnMargin)),
		float64(randomInt(rng, int(p.Height)-p.RespawnMargin))
}

func randomInt(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return rng.IntN(n)
}
