package resource

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedStore 为模板仓库加 LRU 缓存，同名资源只读取一次。
type CachedStore struct {
	next  Store
	cache *lru.Cache[string, string]
}

// NewCachedStore 创建带缓存的模板仓库，size 为缓存条目上限。
func NewCachedStore(next Store, size int) (*CachedStore, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create template cache: %w", err)
	}

	return &CachedStore{next: next, cache: cache}, nil
}

// Load 优先从缓存读取，未命中时读取并缓存。加载失败不缓存。
func (s *CachedStore) Load(name string) (string, error) {
	if text, ok := s.cache.Get(name); ok {
		return text, nil
	}

	text, err := s.next.Load(name)
	if err != nil {
		return "", err
	}
	s.cache.Add(name, text)
	slog.Debug("Template loaded", "name", name, "bytes", len(text))

	return text, nil
}
