// Package registry 合并数据包中的标签注册表 (tags/*.json)。
//
// 注册表是字符串集合，形如 {"values": ["eg:tick"]}。每次写入都与已有文件取并集，
// 从不删除已记录的值，因此对同一文件的多次合并与调用顺序无关。
//
// 合并是无锁的读-改-写，多个进程并发合并同一文件会丢失更新。
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/natefinch/atomic"
)

// Registry 注册表文件内容
type Registry struct {
	Values []string `json:"values"`
}

// Read 读取注册表文件，文件不存在时返回空注册表。
func Read(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Registry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	return &reg, nil
}

// Merge 将 values 与 path 处已有的值取并集后写回，返回合并后的值 (已排序、去重)。
func Merge(path string, values ...string) ([]string, error) {
	existing, err := Read(path)
	if err != nil {
		return nil, err
	}

	merged := union(existing.Values, values)

	data, err := json.Marshal(Registry{Values: merged})
	if err != nil {
		return nil, fmt.Errorf("encode registry %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dir for registry %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("write registry %s: %w", path, err)
	}

	return merged, nil
}

func union(sets ...[]string) []string {
	out := []string{}
	for _, set := range sets {
		out = append(out, set...)
	}
	slices.Sort(out)

	return slices.Compact(out)
}
