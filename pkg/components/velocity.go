package components

// VelocityComponent 存储实体每帧的位移(像素/帧)
// 方向键直接改写分量,松开按键不会清零
type VelocityComponent struct {
	VX float64
	VY float64
}
