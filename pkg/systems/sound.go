package systems

import "github.com/decker502/catchthemall/pkg/game"

// SoundPlayer 播放音效并返回本次播放的句柄
// 由 game.AudioManager 实现;返回 nil 表示没有开始播放
type SoundPlayer interface {
	PlaySound(soundID string, volume float64) game.Playback
}

// SoundCue 一个音效及其音量
type SoundCue struct {
	ID     string
	Volume float64
}
