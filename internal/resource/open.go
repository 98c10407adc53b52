package resource

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source 模板来源
type Source struct {
	// Location 为空使用内置模板；已存在的目录或 .zip 文件直接读取；
	// 带 :: 前缀或 URL scheme 的地址交给 go-getter 下载。
	Location string
	// FetchDir 远程模板包下载目录
	FetchDir string
	// CacheSize 缓存条目数，<= 0 时不缓存
	CacheSize int
	// OutputDir 输出目录，下载目录不能覆盖它
	OutputDir string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open 根据来源选择模板仓库实现。返回的 io.Closer 需在使用完毕后关闭。
func Open(ctx context.Context, src Source) (Store, io.Closer, error) {
	store, closer, err := open(ctx, src)
	if err != nil {
		return nil, nil, err
	}

	if src.CacheSize > 0 {
		cached, err := NewCachedStore(store, src.CacheSize)
		if err != nil {
			_ = closer.Close()
			return nil, nil, err
		}

		return cached, closer, nil
	}

	return store, closer, nil
}

func open(ctx context.Context, src Source) (Store, io.Closer, error) {
	if src.Location == "" {
		return Embedded(), nopCloser{}, nil
	}

	info, err := os.Stat(src.Location)
	switch {
	case err == nil && info.IsDir():
		store, err := NewDirStore(src.Location)
		if err != nil {
			return nil, nil, err
		}

		return store, nopCloser{}, nil

	case err == nil && strings.EqualFold(filepath.Ext(src.Location), ".zip"):
		store, err := OpenZip(src.Location)
		if err != nil {
			return nil, nil, err
		}

		return store, store, nil

	case err == nil:
		return nil, nil, fmt.Errorf("unsupported template source %s: expected a directory or .zip file", src.Location)
	case !IsRemote(src.Location):
		return nil, nil, fmt.Errorf("template source: %w", err)
	}

	store, err := Fetch(ctx, src.Location, src.FetchDir, src.OutputDir)
	if err != nil {
		return nil, nil, err
	}

	return store, nopCloser{}, nil
}
