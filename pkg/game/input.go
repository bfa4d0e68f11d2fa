package game

// Action 表示一个与物理按键无关的游戏动作
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow - 水平速度设为负
	ActionRight          // Right arrow - 水平速度设为正
	ActionUp             // Up arrow - 垂直速度设为正(Y 轴向上)
	ActionDown           // Down arrow - 垂直速度设为负
	ActionRestart        // Enter - 重新开始一局
	ActionQuit           // Escape - 退出程序
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame 一帧内触发的全部动作
// 由 App 在 Update 开始时采集,随后交给当前场景消费。
// 只记录按下事件,松开按键不产生任何动作。
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty 本帧是否没有任何动作
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}
