package systems

import (
	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
)

// CountdownSystem 推进所有倒计时
type CountdownSystem struct {
	entityManager *ecs.EntityManager
}

// NewCountdownSystem 创建倒计时系统
func NewCountdownSystem(em *ecs.EntityManager) *CountdownSystem {
	return &CountdownSystem{entityManager: em}
}

// Update 每帧调用一次,返回是否有倒计时在本帧或之前已到期
func (s *CountdownSystem) Update() bool {
	expired := false
	for _, id := range ecs.GetEntitiesWith1[*components.CountdownComponent](s.entityManager) {
		countdown, _ := ecs.GetComponent[*components.CountdownComponent](s.entityManager, id)
		countdown.Tick()
		if countdown.IsExpired() {
			expired = true
		}
	}
	return expired
}
