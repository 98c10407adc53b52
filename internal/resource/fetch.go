package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"github.com/natefinch/atomic"
)

// 下载目录布局：<fetch_dir>/pack 为模板根，<fetch_dir>/.easygui-fetch 记录来源。
const (
	fetchPackDir = "pack"
	fetchMarker  = ".easygui-fetch"
)

// ErrUnsafeFetchDir 下载目录为空、覆盖工作目录或输出目录
var ErrUnsafeFetchDir = errors.New("unsafe template fetch dir")

// Fetch 下载远程模板包并返回目录模板仓库。
//
// src 支持 go-getter 的全部来源 (git::、http 归档、s3::、gcs:: 等)，归档会自动解压。
// 模板包先下载到 dst 内的临时目录，成功后替换 dst/pack；下载失败时保留上一次的内容。
// dst 不能为空，不能等于或包含当前工作目录及 protect 中的目录，
// 已存在且非空的 dst 必须是之前由 Fetch 创建的。
func Fetch(ctx context.Context, src, dst string, protect ...string) (*FSStore, error) {
	abs, err := checkFetchDir(dst, protect)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create fetch dir: %w", err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working dir: %w", err)
	}

	tmp, err := os.MkdirTemp(abs, ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create fetch temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  filepath.Join(tmp, fetchPackDir),
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}
	slog.Info("Fetching template pack", "src", src, "dst", abs)
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetch template pack %s: %w", src, err)
	}

	pack := filepath.Join(abs, fetchPackDir)
	if _, err := os.Lstat(pack); err == nil {
		if err := os.Rename(pack, filepath.Join(tmp, "previous")); err != nil {
			return nil, fmt.Errorf("replace template pack: %w", err)
		}
	}
	if err := os.Rename(filepath.Join(tmp, fetchPackDir), pack); err != nil {
		return nil, fmt.Errorf("replace template pack: %w", err)
	}
	if err := atomic.WriteFile(filepath.Join(abs, fetchMarker), strings.NewReader(src+"\n")); err != nil {
		return nil, fmt.Errorf("write fetch marker: %w", err)
	}

	return NewDirStore(pack)
}

// checkFetchDir 校验下载目录并返回绝对路径
func checkFetchDir(dst string, protect []string) (string, error) {
	if strings.TrimSpace(dst) == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafeFetchDir)
	}
	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("resolve fetch dir: %w", err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	for _, p := range append([]string{pwd}, protect...) {
		if p == "" {
			continue
		}
		pAbs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", p, err)
		}
		if within(abs, pAbs) {
			return "", fmt.Errorf("%w: %s contains %s", ErrUnsafeFetchDir, abs, pAbs)
		}
	}

	entries, err := os.ReadDir(abs)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return abs, nil
	case err != nil:
		return "", fmt.Errorf("read fetch dir: %w", err)
	case len(entries) == 0:
		return abs, nil
	}
	if _, err := os.Stat(filepath.Join(abs, fetchMarker)); err != nil {
		return "", fmt.Errorf("%w: %s is not empty and was not created by a previous fetch", ErrUnsafeFetchDir, abs)
	}

	return abs, nil
}

// within 判断 path 是否等于 dir 或位于 dir 之下
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// IsRemote 判断来源是否为 go-getter 地址 (含 :: 强制前缀或 URL scheme)。
// 以 /、./、../ 开头或绝对路径一律视为本地路径。
func IsRemote(location string) bool {
	if filepath.IsAbs(location) ||
		strings.HasPrefix(location, "./") || strings.HasPrefix(location, "../") ||
		location == "." || location == ".." {
		return false
	}

	return strings.Contains(location, "::") || strings.Contains(location, "://")
}
