package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/catchthemall/pkg/logging"
)

// Playback 一次声音播放的句柄
// 调用方通过轮询 IsPlaying 判断这次播放是否已结束
type Playback interface {
	IsPlaying() bool
}

// streamPlayer 由 AudioManager 管理的一个播放器
// *audio.Player 满足该接口;关闭后 IsPlaying 返回 false
type streamPlayer interface {
	Playback
	SetVolume(volume float64)
	Play()
	Pause()
	Close() error
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 每次播放创建独立的播放器，同一音效可以叠加
//   - 回收已播放完毕的播放器
//
// 音频上下文为 nil 时进入静音模式：PlaySound 始终返回 nil，
// 供无窗口的验证工具和测试使用。
type AudioManager struct {
	resourceManager *ResourceManager
	active          []streamPlayer // 仍在播放或尚未回收的播放器
	newPlayer       func(pcm []byte) streamPlayer
	logger          *log.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文，可为 nil（静音模式）
//   - rm: ResourceManager 实例（用于按资源ID获取 PCM 数据）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, rm *ResourceManager) *AudioManager {
	am := &AudioManager{
		resourceManager: rm,
		logger:          logging.For("AudioManager"),
	}
	if ctx != nil {
		am.newPlayer = func(pcm []byte) streamPlayer {
			return ctx.NewPlayerFromBytes(pcm)
		}
	}
	return am
}

// IsSilent 是否处于静音模式
func (am *AudioManager) IsSilent() bool {
	return am.newPlayer == nil
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_BOUNCE", "SOUND_COIN_PICKED"）
//   - volume: 音量 (0.0 ~ 1.0)
//
// 返回：
//   - Playback: 本次播放的句柄；失败或静音模式下返回 nil
func (am *AudioManager) PlaySound(soundID string, volume float64) Playback {
	am.prune()

	if am.newPlayer == nil {
		return nil
	}

	pcm, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		am.logger.Warn("failed to load sound", "id", soundID, "error", err)
		return nil
	}

	player := am.newPlayer(pcm)
	player.SetVolume(volume)
	player.Play()

	am.active = append(am.active, player)
	return player
}

// ActiveCount 返回尚未回收的播放器数量
func (am *AudioManager) ActiveCount() int {
	return len(am.active)
}

// prune 关闭并移除已经播放完毕的播放器
func (am *AudioManager) prune() {
	kept := am.active[:0]
	for _, p := range am.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			am.logger.Warn("failed to close finished player", "error", err)
		}
	}
	for i := len(kept); i < len(am.active); i++ {
		am.active[i] = nil
	}
	am.active = kept
}

// StopAll 停止并释放全部播放器
func (am *AudioManager) StopAll() {
	for _, p := range am.active {
		p.Pause()
		if err := p.Close(); err != nil {
			am.logger.Warn("failed to close player", "error", err)
		}
	}
	am.active = nil
}

// PreloadSounds 预加载音效,在场景初始化时调用
func (am *AudioManager) PreloadSounds(soundIDs []string) error {
	for _, soundID := range soundIDs {
		if _, err := am.resourceManager.LoadSoundByID(soundID); err != nil {
			return err
		}
	}
	am.logger.Debug("preloaded sounds", "count", len(soundIDs))
	return nil
}
