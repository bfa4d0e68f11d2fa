// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来,main.go 只负责解析命令行、
// 初始化嵌入资源和启动 Ebitengine。
package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/catchthemall/pkg/config"
	"github.com/decker502/catchthemall/pkg/game"
	"github.com/decker502/catchthemall/pkg/logging"
	"github.com/decker502/catchthemall/pkg/scenes"
	"github.com/decker502/catchthemall/pkg/utils"
)

// ResourceConfigPath 内嵌的资源清单
const ResourceConfigPath = "data/resources.yaml"

// GameSceneName 游戏场景在 SceneManager 中的名字
const GameSceneName = "game"

// Config 定义应用启动配置
type Config struct {
	// Game 已加载并校验的游戏配置
	Game *config.GameConfig
	// Seed 随机数种子,0 表示使用当前时间
	Seed uint64
}

// App 是游戏应用的核心包装器,实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	bindings     utils.KeyBindings
	logger       *log.Logger
}

// NewRNG 按种子创建随机数源,seed 为 0 时使用当前时间
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前,必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil {
		return nil, fmt.Errorf("%w: missing game config", config.ErrInvalidConfig)
	}
	logger := logging.For("App")

	// 初始化音频上下文,采样率必须与解码采样率一致
	audioContext := audio.NewContext(cfg.Game.Audio.SampleRate)

	resourceManager := game.NewResourceManager(cfg.Game.Audio.SampleRate)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup(scenes.SessionGroupName); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	audioManager := game.NewAudioManager(audioContext, resourceManager)
	if err := audioManager.PreloadSounds(scenes.SessionSoundIDs); err != nil {
		return nil, fmt.Errorf("音效加载失败: %w", err)
	}

	assets, err := scenes.LoadSessionAssets(resourceManager)
	if err != nil {
		return nil, err
	}

	rules, err := scenes.RulesFromConfig(cfg.Game)
	if err != nil {
		return nil, err
	}

	hud, err := scenes.NewHUD(resourceManager, rules.Width, rules.Height)
	if err != nil {
		return nil, err
	}

	// 所有局共享一个随机数源,同一个种子得到同样的局序列
	rng := NewRNG(cfg.Seed)
	newSession := func() *scenes.Session {
		return scenes.NewSession(rules, assets, rng, audioManager)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		switch name {
		case GameSceneName:
			return scenes.NewGameScene(newSession, hud), nil
		default:
			return nil, fmt.Errorf("unknown scene: %s", name)
		}
	})
	if err := sceneManager.Load(GameSceneName); err != nil {
		return nil, err
	}

	logger.Info("app initialized", "coins", rules.CoinCount, "frames", rules.SessionFrames, "seed", cfg.Seed)

	return &App{
		cfg:          cfg.Game,
		sceneManager: sceneManager,
		audioManager: audioManager,
		bindings:     utils.DefaultKeyBindings(),
		logger:       logger,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次,先采集输入再交给当前场景
func (a *App) Update() error {
	input := utils.PollKeyboard(a.bindings)
	if input.Has(game.ActionQuit) {
		a.logger.Info("quit requested")
		a.audioManager.StopAll()
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	a.sceneManager.Update(deltaTime, input)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小,Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
