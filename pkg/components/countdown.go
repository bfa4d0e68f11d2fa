package components

// CountdownComponent 以帧为单位的倒计时
// RemainingFrames 单调不增,到 0 后保持为 0
type CountdownComponent struct {
	RemainingFrames int
	FramesPerSecond int
}

// Tick 推进一帧,在 0 处饱和
func (c *CountdownComponent) Tick() {
	if c.RemainingFrames > 0 {
		c.RemainingFrames--
	}
}

// IsExpired 倒计时是否已结束
func (c *CountdownComponent) IsExpired() bool {
	return c.RemainingFrames == 0
}

// RemainingSeconds 剩余秒数(未取整)
func (c *CountdownComponent) RemainingSeconds() float64 {
	fps := c.FramesPerSecond
	if fps <= 0 {
		fps = 60
	}
	return float64(c.RemainingFrames) / float64(fps)
}
