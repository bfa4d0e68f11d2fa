package game

import "errors"

var (
	// ErrNoSceneFactory SceneManager.Load 在未设置工厂函数时返回
	ErrNoSceneFactory = errors.New("scene factory not set")

	// ErrResourceConfigNotLoaded 在 LoadResourceConfig 之前按ID加载资源时返回
	ErrResourceConfigNotLoaded = errors.New("resource config not loaded - call LoadResourceConfig first")

	// ErrResourceNotFound 资源ID不在清单中
	ErrResourceNotFound = errors.New("resource ID not found")
)
