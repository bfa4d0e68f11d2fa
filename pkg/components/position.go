package components

// PositionComponent 存储实体中心点的世界坐标
//
// 坐标系 Y 轴向上: (0,0) 是窗口左下角,金币通过减小 Y 下落。
// 渲染时由 RenderSystem 翻转为屏幕坐标。
type PositionComponent struct {
	X float64
	Y float64
}
