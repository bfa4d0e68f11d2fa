package components

// CollisionComponent 定义以实体位置为中心的轴对齐碰撞盒
// 用于边缘反弹和玩家与金币的碰撞检测
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Bounds 返回碰撞盒在世界坐标中的四条边
func (c *CollisionComponent) Bounds(pos *PositionComponent) (left, bottom, right, top float64) {
	halfW := c.Width / 2
	halfH := c.Height / 2
	return pos.X - halfW, pos.Y - halfH, pos.X + halfW, pos.Y + halfH
}
