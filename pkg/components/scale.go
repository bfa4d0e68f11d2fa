package components

// ScaleComponent 存储实体级别的缩放因子
// 渲染和碰撞盒共用同一缩放,保证"看到的"就是"碰到的"
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%）
	ScaleX float64

	// ScaleY Y轴缩放因子
	ScaleY float64
}
