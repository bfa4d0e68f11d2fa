package components

// PlayerComponent 标记玩家实体,并存储本局的得分状态
type PlayerComponent struct {
	Score      int // 累计得分,只增不减
	SpeedBonus int // 每收集一枚金币 +1,叠加在基础移动速度上
}

// MoveSpeed 返回方向键按下时赋给速度分量的绝对值
func (p *PlayerComponent) MoveSpeed(baseSpeed float64) float64 {
	return baseSpeed + float64(p.SpeedBonus)
}
