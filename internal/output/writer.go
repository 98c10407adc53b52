// Package output 负责把生成的文件写入数据包目录。
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Writer 以 Root 为根写入文件，路径使用 / 分隔的数据包相对路径。
type Writer struct {
	Root string
}

// New 创建写入器，root 为空时使用当前目录。
func New(root string) *Writer {
	if root == "" {
		root = "."
	}

	return &Writer{Root: root}
}

// Path 返回相对路径在磁盘上的位置
func (w *Writer) Path(rel string) string {
	return filepath.Join(w.Root, filepath.FromSlash(rel))
}

// Write 写入文件，自动创建父目录，原子替换已有文件。
func (w *Writer) Write(rel, content string) error {
	path := w.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", rel, err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	slog.Debug("File written", "path", rel, "bytes", len(content))

	return nil
}

// WriteIfAbsent 仅在文件不存在时写入，返回是否写入。
func (w *Writer) WriteIfAbsent(rel, content string) (bool, error) {
	exists, err := w.Exists(rel)
	if err != nil || exists {
		return false, err
	}

	return true, w.Write(rel, content)
}

// Exists 判断文件是否存在
func (w *Writer) Exists(rel string) (bool, error) {
	_, err := os.Stat(w.Path(rel))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", rel, err)
	}
}
