package systems

import (
	"sort"

	"github.com/solarlune/resolv"

	"github.com/decker502/catchthemall/pkg/components"
	"github.com/decker502/catchthemall/pkg/ecs"
)

var (
	tagPlayer = resolv.NewTag("player")
	tagCoin   = resolv.NewTag("coin")
)

// collisionCellSize resolv 空间网格的单元尺寸（像素）
const collisionCellSize = 32

// trackedShape 实体对应的 resolv 形状
// offsetX/offsetY 是形状 Position() 相对实体中心的偏移,创建时记录一次
type trackedShape struct {
	shape   resolv.IShape
	offsetX float64
	offsetY float64
}

// CollisionWorld 用 resolv 空间维护实体的碰撞盒
// ECS 组件仍然是位置的唯一来源,每次查询前通过 Sync 把位置写入形状
type CollisionWorld struct {
	space  *resolv.Space
	shapes map[ecs.EntityID]*trackedShape
	owners map[resolv.IShape]ecs.EntityID
}

// NewCollisionWorld 创建覆盖整个游戏区域的碰撞空间
func NewCollisionWorld(width, height float64) *CollisionWorld {
	return &CollisionWorld{
		space:  resolv.NewSpace(int(width), int(height), collisionCellSize, collisionCellSize),
		shapes: make(map[ecs.EntityID]*trackedShape),
		owners: make(map[resolv.IShape]ecs.EntityID),
	}
}

func (w *CollisionWorld) add(id ecs.EntityID, pos *components.PositionComponent, col *components.CollisionComponent, tag resolv.Tags) {
	if old, ok := w.shapes[id]; ok {
		w.space.Remove(old.shape)
		delete(w.owners, old.shape)
	}

	sh := resolv.NewRectangleTopLeft(pos.X-col.Width/2, pos.Y-col.Height/2, col.Width, col.Height)
	sh.Tags().Set(tag)
	w.space.Add(sh)

	p := sh.Position()
	w.shapes[id] = &trackedShape{shape: sh, offsetX: p.X - pos.X, offsetY: p.Y - pos.Y}
	w.owners[sh] = id
}

// AddPlayer 注册玩家碰撞盒
func (w *CollisionWorld) AddPlayer(id ecs.EntityID, pos *components.PositionComponent, col *components.CollisionComponent) {
	w.add(id, pos, col, tagPlayer)
}

// AddCoin 注册金币碰撞盒
func (w *CollisionWorld) AddCoin(id ecs.EntityID, pos *components.PositionComponent, col *components.CollisionComponent) {
	w.add(id, pos, col, tagCoin)
}

// Remove 注销实体的碰撞盒
func (w *CollisionWorld) Remove(id ecs.EntityID) {
	if t, ok := w.shapes[id]; ok {
		w.space.Remove(t.shape)
		delete(w.owners, t.shape)
		delete(w.shapes, id)
	}
}

// Len 已注册的形状数量
func (w *CollisionWorld) Len() int {
	return len(w.shapes)
}

// Sync 把实体中心位置写入对应的形状
func (w *CollisionWorld) Sync(id ecs.EntityID, pos *components.PositionComponent) {
	if t, ok := w.shapes[id]; ok {
		t.shape.SetPosition(pos.X+t.offsetX, pos.Y+t.offsetY)
	}
}

// CoinsTouching 返回与指定实体相交的全部金币,按实体ID升序
func (w *CollisionWorld) CoinsTouching(id ecs.EntityID) []ecs.EntityID {
	t, ok := w.shapes[id]
	if !ok {
		return nil
	}

	hits := make([]ecs.EntityID, 0)
	seen := make(map[ecs.EntityID]bool)
	t.shape.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: t.shape.SelectTouchingCells(0).FilterShapes().ByTags(tagCoin),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if owner, ok := w.owners[set.OtherShape]; ok && !seen[owner] {
				seen[owner] = true
				hits = append(hits, owner)
			}
			return true
		},
	})

	sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })
	return hits
}
