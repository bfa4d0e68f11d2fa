package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPosition struct {
	X, Y float64
}

type testVelocity struct {
	VX, VY float64
}

type testCoin struct {
	Value int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 live entities, got %d", em.EntityCount())
	}
}

func TestAddComponentOverwritesSameType(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPosition{X: 1, Y: 1})
	em.AddComponent(id, &testPosition{X: 100, Y: 200})

	pos, ok := GetComponent[*testPosition](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestAddComponentToUnknownEntityIsIgnored(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testPosition{})

	if HasComponent[*testPosition](em, EntityID(42)) {
		t.Error("Unknown entity should not gain components")
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testCoin{Value: 3})

	coin, ok := GetComponent[*testCoin](em, id)
	if !ok || coin.Value != 3 {
		t.Errorf("Expected coin value 3, got %+v (found=%v)", coin, ok)
	}

	// 值类型与指针类型是不同的组件类型
	if _, ok := GetComponent[testCoin](em, id); ok {
		t.Error("Value type should not match a pointer component")
	}

	if _, ok := GetComponent[*testVelocity](em, id); ok {
		t.Error("Missing component should not be found")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{})
	em.AddComponent(id, &testVelocity{})

	em.RemoveComponent(id, reflect.TypeOf(&testVelocity{}))

	if !HasComponent[*testPosition](em, id) {
		t.Error("Position should survive removal of velocity")
	}
	if HasComponent[*testVelocity](em, id) {
		t.Error("Velocity should be removed")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testPosition{})) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPosition{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 live entities, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPosition{})
	em.AddComponent(id1, &testVelocity{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPosition{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocity{})

	both := GetEntitiesWith2[*testPosition, *testVelocity](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected [%d], got %v", id1, both)
	}

	withPos := GetEntitiesWith1[*testPosition](em)
	if len(withPos) != 2 {
		t.Errorf("Expected 2 entities with position, got %d", len(withPos))
	}

	none := GetEntitiesWith3[*testPosition, *testVelocity, *testCoin](em)
	if len(none) != 0 {
		t.Errorf("Expected no entities with coin, got %v", none)
	}
}

func TestGetEntitiesWithIsOrderedByID(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 64; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testCoin{Value: i})
	}

	// map 遍历是随机的,多次查询都必须返回相同的升序结果
	for round := 0; round < 5; round++ {
		ids := GetEntitiesWith1[*testCoin](em)
		if len(ids) != 64 {
			t.Fatalf("Expected 64 coins, got %d", len(ids))
		}
		for i := 1; i < len(ids); i++ {
			if ids[i-1] >= ids[i] {
				t.Fatalf("Round %d: ids not ascending at %d: %v", round, i, ids)
			}
		}
	}
}
