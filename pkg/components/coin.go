package components

import "fmt"

// Denomination 表示金币面额
type Denomination int

const (
	Bronze Denomination = iota // 铜币: 1分, 下落 1 像素/帧
	Silver                     // 银币: 2分, 下落 2 像素/帧
	Gold                       // 金币: 3分, 下落 3 像素/帧
)

// AllDenominations 按定义顺序列出全部面额,用于均匀随机选择
var AllDenominations = []Denomination{Bronze, Silver, Gold}

// Value 返回面额对应的分值。分值同时也是下落速度(像素/帧)。
func (d Denomination) Value() int {
	switch d {
	case Silver:
		return 2
	case Gold:
		return 3
	default:
		return 1
	}
}

// ScaleDivisor 返回相对基础金币缩放的除数
// 面额越高图片越小: 铜币 1, 银币 2, 金币 3
func (d Denomination) ScaleDivisor() float64 {
	return float64(d.Value())
}

// ImageID 返回该面额在资源清单中的图片ID
func (d Denomination) ImageID() string {
	switch d {
	case Silver:
		return "IMAGE_COIN_SILVER"
	case Gold:
		return "IMAGE_COIN_GOLD"
	default:
		return "IMAGE_COIN_BRONZE"
	}
}

func (d Denomination) String() string {
	switch d {
	case Bronze:
		return "bronze"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	default:
		return fmt.Sprintf("Denomination(%d)", int(d))
	}
}

// CoinComponent 标记实体为金币
// 面额在创建时确定,此后不变;金币不会被销毁,只会重新放置
type CoinComponent struct {
	Denomination Denomination
	Value        int
}
