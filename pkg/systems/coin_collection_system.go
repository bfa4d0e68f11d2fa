package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
	"github.com/decker502/catchthemall/pkg/game"
	"github.com/decker502/catchthemall/pkg/logging"
)

// CoinCollectionSystem 处理玩家与金币的碰撞
//
// 每枚被碰到的金币:重生到随机位置,面值计入得分,速度加成增加固定值。
// 收集音效只有一个槽位:槽位为空或上一次播放已结束时才开始新的播放,
// 同一帧内后续的碰撞因此保持静音。
type CoinCollectionSystem struct {
	entityManager *ecs.EntityManager
	world         *CollisionWorld
	coins         *CoinSystem
	sounds        SoundPlayer
	collectSound  SoundCue
	bonusPerCoin  int

	// soundSlot 当前收集音效的播放句柄
	soundSlot game.Playback
	logger    *log.Logger
}

// NewCoinCollectionSystem 创建金币收集系统
func NewCoinCollectionSystem(em *ecs.EntityManager, world *CollisionWorld, coins *CoinSystem, sounds SoundPlayer, collectSound SoundCue, bonusPerCoin int) *CoinCollectionSystem {
	return &CoinCollectionSystem{
		entityManager: em,
		world:         world,
		coins:         coins,
		sounds:        sounds,
		collectSound:  collectSound,
		bonusPerCoin:  bonusPerCoin,
		logger:        logging.For("CoinCollection"),
	}
}

// Update 每帧调用一次,返回本帧收集的金币数量
func (s *CoinCollectionSystem) Update() int {
	s.syncAll()

	collected := 0
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, playerID := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)

		for _, coinID := range s.world.CoinsTouching(playerID) {
			coin, ok := ecs.GetComponent[*components.CoinComponent](s.entityManager, coinID)
			if !ok {
				continue
			}

			s.coins.Respawn(coinID)
			if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, coinID); ok {
				s.world.Sync(coinID, pos)
			}

			player.Score += coin.Value
			player.SpeedBonus += s.bonusPerCoin
			collected++

			s.playCollectSound()

			s.logger.Debug("coin collected",
				"coin", coinID, "denomination", coin.Denomination, "score", player.Score, "bonus", player.SpeedBonus)
		}
	}
	return collected
}

// SoundSlotBusy 收集音效槽位是否仍在播放
func (s *CoinCollectionSystem) SoundSlotBusy() bool {
	return s.soundSlot != nil && s.soundSlot.IsPlaying()
}

func (s *CoinCollectionSystem) playCollectSound() {
	if s.sounds == nil || s.SoundSlotBusy() {
		return
	}
	s.soundSlot = s.sounds.PlaySound(s.collectSound.ID, s.collectSound.Volume)
}

// syncAll 把玩家和金币的当前位置写入碰撞空间
func (s *CoinCollectionSystem) syncAll() {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.world.Sync(id, pos)
	}
}
