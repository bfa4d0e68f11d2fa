package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/decker502/catchthemall/pkg/embedded"
)

// DefaultGameConfigPath 内嵌的默认玩法配置
const DefaultGameConfigPath = "data/gameplay.yaml"

// EnvPrefix 环境变量覆盖前缀,如 CATCH_GAMEPLAY_COIN_COUNT=10
const EnvPrefix = "CATCH"

// ErrInvalidConfig 配置值不合法
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏可调参数
//
// 加载顺序(后者覆盖前者):
//  1. 代码内默认值
//  2. 内嵌的 data/gameplay.yaml
//  3. --config 指定的用户文件
//  4. CATCH_ 前缀的环境变量
type GameConfig struct {
	Window   WindowConfig   `mapstructure:"window"`
	Gameplay GameplayConfig `mapstructure:"gameplay"`
	Audio    AudioConfig    `mapstructure:"audio"`
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

// GameplayConfig 一局游戏的规则参数
type GameplayConfig struct {
	// CoinCount 金币数量,整局保持不变
	CoinCount int `mapstructure:"coin_count"`
	// MovementSpeed 基础移动速度(像素/帧)
	MovementSpeed float64 `mapstructure:"movement_speed"`
	// SpeedBonusPerCoin 每收集一枚金币增加的速度加成
	SpeedBonusPerCoin int `mapstructure:"speed_bonus_per_coin"`
	// SessionFrames 一局的总帧数
	SessionFrames int `mapstructure:"session_frames"`
	// FramesPerSecond 剩余时间换算用的帧率
	FramesPerSecond int `mapstructure:"frames_per_second"`
	// StartX / StartY 玩家出生点(世界坐标, Y 轴向上)
	StartX float64 `mapstructure:"start_x"`
	StartY float64 `mapstructure:"start_y"`
	// PlayerScale 玩家图片缩放
	PlayerScale float64 `mapstructure:"player_scale"`
	// CoinScale 铜币图片缩放,银币和金币依次除以 2 和 3
	CoinScale float64 `mapstructure:"coin_scale"`
	// RespawnMargin 金币随机位置的范围向内收缩的像素数
	RespawnMargin int `mapstructure:"respawn_margin"`
	// CoinSpinStep 金币每帧旋转角度
	CoinSpinStep float64 `mapstructure:"coin_spin_step"`
	// EndSpinStep 结束画面玩家每帧旋转角度
	EndSpinStep float64 `mapstructure:"end_spin_step"`
}

// AudioConfig 音频参数
type AudioConfig struct {
	SampleRate    int     `mapstructure:"sample_rate"`
	CollectVolume float64 `mapstructure:"collect_volume"`
	BounceVolume  float64 `mapstructure:"bounce_volume"`
}

// setDefaults 注册全部键的默认值
// AutomaticEnv 只对已知的键生效,所以每个键都必须在这里出现
func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.title", WindowTitle)
	v.SetDefault("window.fullscreen", false)

	v.SetDefault("gameplay.coin_count", 50)
	v.SetDefault("gameplay.movement_speed", 4.0)
	v.SetDefault("gameplay.speed_bonus_per_coin", 1)
	v.SetDefault("gameplay.session_frames", 600)
	v.SetDefault("gameplay.frames_per_second", TicksPerSecond)
	v.SetDefault("gameplay.start_x", 50.0)
	v.SetDefault("gameplay.start_y", 50.0)
	v.SetDefault("gameplay.player_scale", 0.7)
	v.SetDefault("gameplay.coin_scale", 0.5)
	v.SetDefault("gameplay.respawn_margin", 5)
	v.SetDefault("gameplay.coin_spin_step", 1.0)
	v.SetDefault("gameplay.end_spin_step", 2.0)

	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.collect_volume", 0.6)
	v.SetDefault("audio.bounce_volume", 1.0)
}

// LoadGameConfig 加载游戏配置
//
// 参数:
//   - base: 基础 YAML 内容(通常为内嵌的 data/gameplay.yaml),为空时只使用默认值
//   - overridePath: 用户配置文件路径,为空时跳过
//
// 返回:
//   - *GameConfig: 合并并校验后的配置
//   - error: 解析或校验失败时返回错误
func LoadGameConfig(base []byte, overridePath string) (*GameConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if len(base) > 0 {
		if err := v.ReadConfig(bytes.NewReader(base)); err != nil {
			return nil, fmt.Errorf("failed to parse base game config: %w", err)
		}
	}

	if overridePath != "" {
		v.SetConfigFile(overridePath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to merge game config %s: %w", overridePath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefaultGameConfig 以内嵌的 data/gameplay.yaml 为基础加载配置
func LoadDefaultGameConfig(overridePath string) (*GameConfig, error) {
	base, err := embedded.ReadFile(DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DefaultGameConfigPath, err)
	}
	return LoadGameConfig(base, overridePath)
}

// Validate 验证配置有效性
//
// 返回的错误均包装 ErrInvalidConfig,调用方可用 errors.Is 判断
func (c *GameConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	g := c.Gameplay
	if g.CoinCount <= 0 {
		return invalid("coin_count must be positive, got %d", g.CoinCount)
	}
	if g.MovementSpeed < 0 {
		return invalid("movement_speed must not be negative, got %.2f", g.MovementSpeed)
	}
	if g.SpeedBonusPerCoin < 0 {
		return invalid("speed_bonus_per_coin must not be negative, got %d", g.SpeedBonusPerCoin)
	}
	if g.SessionFrames <= 0 {
		return invalid("session_frames must be positive, got %d", g.SessionFrames)
	}
	if g.FramesPerSecond <= 0 {
		return invalid("frames_per_second must be positive, got %d", g.FramesPerSecond)
	}
	if g.StartX < 0 || g.StartX >= float64(c.Window.Width) || g.StartY < 0 || g.StartY >= float64(c.Window.Height) {
		return invalid("start position (%.1f, %.1f) is outside the window", g.StartX, g.StartY)
	}
	if g.PlayerScale <= 0 || g.CoinScale <= 0 {
		return invalid("sprite scales must be positive, got player=%.2f coin=%.2f", g.PlayerScale, g.CoinScale)
	}
	if g.RespawnMargin < 0 || g.RespawnMargin >= c.Window.Width || g.RespawnMargin >= c.Window.Height {
		return invalid("respawn_margin %d does not fit the window", g.RespawnMargin)
	}

	a := c.Audio
	if a.SampleRate <= 0 {
		return invalid("sample_rate must be positive, got %d", a.SampleRate)
	}
	if a.CollectVolume < 0 || a.CollectVolume > 1 || a.BounceVolume < 0 || a.BounceVolume > 1 {
		return invalid("volumes must be within [0, 1], got collect=%.2f bounce=%.2f", a.CollectVolume, a.BounceVolume)
	}

	return nil
}
