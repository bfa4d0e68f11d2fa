package scenes

import (
	"fmt"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/entities"
	"github.com/decker502/catchthemall/pkg/game"
)

// SessionSoundIDs 一局游戏用到的音效
var SessionSoundIDs = []string{SoundBounce, SoundCoinPicked}

// LoadSessionAssets 加载玩家和三种金币的图片
// 资源清单必须已经加载
func LoadSessionAssets(rm *game.ResourceManager) (SessionAssets, error) {
	player, err := rm.LoadImageByID(ImagePlayer)
	if err != nil {
		return SessionAssets{}, fmt.Errorf("failed to load player image: %w", err)
	}

	assets := SessionAssets{
		Player: entities.SpriteSourceFromImage(player),
		Coins:  make(entities.CoinSprites, len(components.AllDenominations)),
	}
	for _, d := range components.AllDenominations {
		img, err := rm.LoadImageByID(d.ImageID())
		if err != nil {
			return SessionAssets{}, fmt.Errorf("failed to load %s coin image: %w", d, err)
		}
		assets.Coins[d] = entities.SpriteSourceFromImage(img)
	}
	return assets, nil
}

// LoadSessionAssetSizes 只读取图片尺寸,不创建 GPU 图片
// 供无窗口运行使用,实体没有可绘制的图片但碰撞盒与窗口模式一致
func LoadSessionAssetSizes(rm *game.ResourceManager) (SessionAssets, error) {
	sizeOf := func(id string) (entities.SpriteSource, error) {
		w, h, err := rm.ImageSizeByID(id)
		if err != nil {
			return entities.SpriteSource{}, err
		}
		return entities.SpriteSource{Width: float64(w), Height: float64(h)}, nil
	}

	player, err := sizeOf(ImagePlayer)
	if err != nil {
		return SessionAssets{}, fmt.Errorf("failed to read player image size: %w", err)
	}

	assets := SessionAssets{
		Player: player,
		Coins:  make(entities.CoinSprites, len(components.AllDenominations)),
	}
	for _, d := range components.AllDenominations {
		sprite, err := sizeOf(d.ImageID())
		if err != nil {
			return SessionAssets{}, fmt.Errorf("failed to read %s coin image size: %w", d, err)
		}
		assets.Coins[d] = sprite
	}
	return assets, nil
}
