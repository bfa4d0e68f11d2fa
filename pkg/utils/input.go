// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/catchthemall/pkg/game"
)

// KeyBindings 按键到游戏动作的映射
type KeyBindings map[ebiten.Key]game.Action

// DefaultKeyBindings 方向键移动,Enter 重新开始,Escape 退出
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ebiten.KeyArrowLeft:   game.ActionLeft,
		ebiten.KeyArrowRight:  game.ActionRight,
		ebiten.KeyArrowUp:     game.ActionUp,
		ebiten.KeyArrowDown:   game.ActionDown,
		ebiten.KeyEnter:       game.ActionRestart,
		ebiten.KeyNumpadEnter: game.ActionRestart,
		ebiten.KeyEscape:      game.ActionQuit,
	}
}

// ActionsForKeys 把本帧刚按下的按键转换为输入帧
// 没有绑定的按键被忽略
func ActionsForKeys(bindings KeyBindings, keys []ebiten.Key) game.InputFrame {
	frame := game.NewInputFrame()
	for _, key := range keys {
		if action, ok := bindings[key]; ok {
			frame.Set(action)
		}
	}
	return frame
}

// PollKeyboard 读取本帧刚按下的按键
// 只响应按下事件,松开按键不产生动作
func PollKeyboard(bindings KeyBindings) game.InputFrame {
	keys := inpututil.AppendJustPressedKeys(nil)
	return ActionsForKeys(bindings, keys)
}
