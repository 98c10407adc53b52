// Package resource 提供模板资源的加载。
//
// 资源按名称 (如 template/tile/tick.mcfunction) 从资源根读取，资源根可以是：
//   - 编译进程序的内置模板 ([Embedded])
//   - 磁盘目录 ([NewDirStore])
//   - 单个 zip 归档 ([OpenZip])
//   - 远程模板包，下载到本地目录后按目录读取 ([Fetch])
//
// [Open] 根据来源在启动时选择一次实现，[CachedStore] 为任意实现加 LRU 缓存。
package resource

import (
	"archive/zip"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:template
var bundled embed.FS

// Store 按资源名加载模板原文
type Store interface {
	Load(name string) (string, error)
}

// FSStore 基于 fs.FS 的模板仓库
type FSStore struct {
	fsys fs.FS
}

// NewFSStore 创建基于 fs.FS 的模板仓库
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Load 读取资源原文。资源不存在时返回的错误满足 errors.Is(err, fs.ErrNotExist)。
func (s *FSStore) Load(name string) (string, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return "", fmt.Errorf("load template %s: %w", name, err)
	}

	return string(data), nil
}

// Embedded 返回内置模板仓库
func Embedded() *FSStore {
	return NewFSStore(bundled)
}

// NewDirStore 创建目录模板仓库，root 下应包含 template/ 目录。
func NewDirStore(root string) (*FSStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("template dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template dir %s: not a directory", root)
	}

	return NewFSStore(os.DirFS(root)), nil
}

// ZipStore zip 归档模板仓库，使用完毕需 Close。
type ZipStore struct {
	*FSStore
	rc *zip.ReadCloser
}

// OpenZip 打开 zip 归档，归档根下应包含 template/ 目录。
func OpenZip(path string) (*ZipStore, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open template archive %s: %w", path, err)
	}

	return &ZipStore{FSStore: NewFSStore(rc), rc: rc}, nil
}

// Close 关闭归档
func (s *ZipStore) Close() error {
	return s.rc.Close()
}

// IsNotFound 判断错误是否为资源不存在
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
