package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/catchthemall/pkg/logging"
)

// SceneFactory 场景工厂函数类型
// 用于按名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
	logger       *log.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		logger: logging.For("SceneManager"),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景,没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 Load 加载的场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Load 通过工厂函数创建并切换到指定名称的场景
// 创建失败时保留当前场景并返回错误
func (sm *SceneManager) Load(name string) error {
	if sm.sceneFactory == nil {
		return ErrNoSceneFactory
	}

	scene, err := sm.sceneFactory(name)
	if err != nil {
		return err
	}

	sm.SwitchTo(scene)
	sm.currentName = name
	sm.logger.Debug("switched scene", "name", name)
	return nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64, input InputFrame) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime, input)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
