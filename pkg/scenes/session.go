package scenes

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/jinzhu/copier"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/config"
	"github.com/decker502/catchthemall/pkg/ecs"
	"github.com/decker502/catchthemall/pkg/entities"
	"github.com/decker502/catchthemall/pkg/game"
	"github.com/decker502/catchthemall/pkg/logging"
	"github.com/decker502/catchthemall/pkg/systems"
)

// 音效资源ID,与 data/resources.yaml 对应
const (
	SoundBounce      = "SOUND_BOUNCE"
	SoundCoinPicked  = "SOUND_COIN_PICKED"
	ImagePlayer      = "IMAGE_PLAYER"
	SessionGroupName = "session"
)

// SessionState 一局游戏的状态
type SessionState int

const (
	StatePlaying SessionState = iota
	StateEnded
)

func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateEnded:
		return "ENDED"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// SessionRules 一局游戏的规则参数
// 字段名与 config.GameplayConfig / config.AudioConfig 保持一致,由 copier 按名复制
type SessionRules struct {
	Width  float64
	Height float64

	CoinCount         int
	MovementSpeed     float64
	SpeedBonusPerCoin int
	SessionFrames     int
	FramesPerSecond   int
	StartX            float64
	StartY            float64
	PlayerScale       float64
	CoinScale         float64
	RespawnMargin     int
	CoinSpinStep      float64
	EndSpinStep       float64

	CollectVolume float64
	BounceVolume  float64
}

// RulesFromConfig 由游戏配置生成规则
func RulesFromConfig(cfg *config.GameConfig) (SessionRules, error) {
	var rules SessionRules
	if err := copier.Copy(&rules, &cfg.Gameplay); err != nil {
		return SessionRules{}, fmt.Errorf("failed to copy gameplay rules: %w", err)
	}
	if err := copier.Copy(&rules, &cfg.Audio); err != nil {
		return SessionRules{}, fmt.Errorf("failed to copy audio rules: %w", err)
	}
	rules.Width = float64(cfg.Window.Width)
	rules.Height = float64(cfg.Window.Height)
	return rules, nil
}

// Playfield 规则对应的游戏区域
func (r SessionRules) Playfield() entities.Playfield {
	return entities.Playfield{Width: r.Width, Height: r.Height, RespawnMargin: r.RespawnMargin}
}

// SessionAssets 一局游戏使用的图片
// Image 可以为 nil(无窗口运行),尺寸仍用于碰撞盒
type SessionAssets struct {
	Player entities.SpriteSource
	Coins  entities.CoinSprites
}

// Session 一局游戏:玩家、金币、倒计时以及驱动它们的系统
//
// 每帧调用 Step 一次。PLAYING 状态下依次执行移动、金币下落、倒计时和碰撞;
// 倒计时到期后进入 ENDED,此后得分、金币和倒计时都不再变化,
// 只有玩家在结束位置旋转。重新开始由调用方创建新的 Session 完成。
type Session struct {
	rules         SessionRules
	entityManager *ecs.EntityManager

	playerID ecs.EntityID
	timerID  ecs.EntityID
	state    SessionState
	frame    int

	inputSystem      *systems.InputSystem
	movementSystem   *systems.PlayerMovementSystem
	coinSystem       *systems.CoinSystem
	countdownSystem  *systems.CountdownSystem
	collectionSystem *systems.CoinCollectionSystem
	endScreenSystem  *systems.EndScreenSystem
	renderSystem     *systems.RenderSystem
	world            *systems.CollisionWorld

	logger *log.Logger
}

// NewSession 创建一局新游戏
//
// 参数:
//   - rules: 规则参数
//   - assets: 玩家和金币图片
//   - rng: 金币面额和位置使用的随机数源
//   - sounds: 音效播放器,可为 nil
func NewSession(rules SessionRules, assets SessionAssets, rng *rand.Rand, sounds systems.SoundPlayer) *Session {
	em := ecs.NewEntityManager()
	field := rules.Playfield()

	s := &Session{
		rules:         rules,
		entityManager: em,
		state:         StatePlaying,
		world:         systems.NewCollisionWorld(rules.Width, rules.Height),
		logger:        logging.For("Session"),
	}

	s.playerID = entities.NewPlayerEntity(em, assets.Player, rules.PlayerScale, rules.StartX, rules.StartY)
	for i := 0; i < rules.CoinCount; i++ {
		entities.NewCoinEntity(em, rng, assets.Coins, rules.CoinScale, field)
	}

	s.timerID = em.CreateEntity()
	em.AddComponent(s.timerID, &components.CountdownComponent{
		RemainingFrames: rules.SessionFrames,
		FramesPerSecond: rules.FramesPerSecond,
	})

	s.addCollisionShapes()

	s.inputSystem = systems.NewInputSystem(em, rules.MovementSpeed)
	s.movementSystem = systems.NewPlayerMovementSystem(em, field, sounds,
		systems.SoundCue{ID: SoundBounce, Volume: rules.BounceVolume})
	s.coinSystem = systems.NewCoinSystem(em, rng, field, rules.CoinSpinStep)
	s.countdownSystem = systems.NewCountdownSystem(em)
	s.collectionSystem = systems.NewCoinCollectionSystem(em, s.world, s.coinSystem, sounds,
		systems.SoundCue{ID: SoundCoinPicked, Volume: rules.CollectVolume}, rules.SpeedBonusPerCoin)
	s.endScreenSystem = systems.NewEndScreenSystem(em, rules.EndSpinStep)
	s.renderSystem = systems.NewRenderSystem(em, rules.Height)

	s.logger.Debug("session started", "coins", rules.CoinCount, "frames", rules.SessionFrames)
	return s
}

func (s *Session) addCollisionShapes() {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if id == s.playerID {
			s.world.AddPlayer(id, pos, col)
		} else {
			s.world.AddCoin(id, pos, col)
		}
	}
}

// Step 推进一帧
// 输入在任何状态下都会更新玩家速度;ENDED 状态下速度不再生效
func (s *Session) Step(input game.InputFrame) {
	s.frame++
	s.inputSystem.Apply(input)

	switch s.state {
	case StatePlaying:
		s.movementSystem.Update()
		s.coinSystem.Update()
		expired := s.countdownSystem.Update()
		s.collectionSystem.Update()
		if expired {
			s.end()
		}
	case StateEnded:
		s.endScreenSystem.Update()
	}
}

// end 切换到 ENDED 并把玩家放到结束位置
func (s *Session) end() {
	s.state = StateEnded
	x, y := config.EndPlayerPosition(s.rules.Width, s.rules.Height)
	s.endScreenSystem.Park(x, y)
	s.logger.Info("session ended", "score", s.Score(), "frames", s.frame)
}

// State 当前状态
func (s *Session) State() SessionState {
	return s.state
}

// Frame 已推进的帧数
func (s *Session) Frame() int {
	return s.frame
}

// Rules 本局规则
func (s *Session) Rules() SessionRules {
	return s.rules
}

// EntityManager 本局的实体管理器
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Renderer 本局的渲染系统
func (s *Session) Renderer() *systems.RenderSystem {
	return s.renderSystem
}

func (s *Session) player() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	return p
}

func (s *Session) countdown() *components.CountdownComponent {
	c, _ := ecs.GetComponent[*components.CountdownComponent](s.entityManager, s.timerID)
	return c
}

// Score 当前得分
func (s *Session) Score() int {
	return s.player().Score
}

// SpeedBonus 当前速度加成
func (s *Session) SpeedBonus() int {
	return s.player().SpeedBonus
}

// RemainingFrames 剩余帧数
func (s *Session) RemainingFrames() int {
	return s.countdown().RemainingFrames
}

// RemainingSeconds 剩余秒数
func (s *Session) RemainingSeconds() float64 {
	return s.countdown().RemainingSeconds()
}

// PlayerPosition 玩家中心的世界坐标
func (s *Session) PlayerPosition() (x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	return pos.X, pos.Y
}

// PlayerVelocity 玩家当前速度
func (s *Session) PlayerVelocity() (vx, vy float64) {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, s.playerID)
	return vel.VX, vel.VY
}

// PlayerAngle 玩家当前角度
func (s *Session) PlayerAngle() float64 {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.playerID)
	return sprite.Angle
}

// CoinIDs 全部金币实体ID,按ID升序
func (s *Session) CoinIDs() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.CoinComponent](s.entityManager)
}

// Snapshot 本局状态摘要
type Snapshot struct {
	State           SessionState
	Frame           int
	Score           int
	SpeedBonus      int
	RemainingFrames int
	PlayerX         float64
	PlayerY         float64
	Coins           int
}

// Snapshot 返回当前状态摘要
func (s *Session) Snapshot() Snapshot {
	x, y := s.PlayerPosition()
	return Snapshot{
		State:           s.state,
		Frame:           s.frame,
		Score:           s.Score(),
		SpeedBonus:      s.SpeedBonus(),
		RemainingFrames: s.RemainingFrames(),
		PlayerX:         x,
		PlayerY:         y,
		Coins:           len(s.CoinIDs()),
	}
}
