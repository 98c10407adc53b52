package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// Option 配置加载选项
type Option func(*options)

type options struct {
	configPaths   []string
	content       []byte
	contentParser koanf.Parser
	envPrefix     string
	dotenv        bool
	dotenvFiles   []string
	cmd           *cli.Command
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，找到第一个即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) { o.configPaths = append(o.configPaths, paths...) }
}

// WithContent 直接加载一段配置内容，parser 为 nil 时按 YAML 解析。
func WithContent(data []byte, parser koanf.Parser) Option {
	return func(o *options) {
		o.content = data
		o.contentParser = parser
	}
}

// WithEnvPrefix 启用环境变量覆盖
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

// WithDotenv 在读取环境变量前加载 .env 文件，不覆盖已存在的环境变量。
// 未指定文件时读取当前目录的 .env，文件不存在时忽略。
func WithDotenv(files ...string) Option {
	return func(o *options) {
		o.dotenv = true
		o.dotenvFiles = files
	}
}

// WithCommand 使用 CLI flags 覆盖配置
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) { o.cmd = cmd }
}

// DefaultPaths 返回默认配置文件搜索路径
// appName 可选，若提供则包含用户主目录和系统配置目录
func DefaultPaths(appName ...string) []string {
	paths := []string{
		"config.yaml",
		"config/config.yaml",
	}

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		// 添加用户主目录
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		// 添加系统配置目录
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	return paths
}

// Load 加载配置，按优先级合并：默认值 → 配置内容 → 配置文件 → 环境变量 → CLI flags。
//
// 泛型参数 T 为配置结构体类型，必须使用 koanf tag 标记字段。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// 1️⃣ 默认配置 (最低优先级)
	if err := k.Load(structs.Provider(defaultConfig, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}
	knownKeys := k.Keys()

	// 2️⃣ 配置内容
	if o.content != nil {
		parser := o.contentParser
		if parser == nil {
			parser = yaml.Parser()
		}
		if err := k.Load(rawbytes.Provider(o.content), parser); err != nil {
			return nil, fmt.Errorf("failed to load config content: %w", err)
		}
	}

	// 3️⃣ 配置文件 (按顺序搜索，找到第一个即停止)
	if err := loadFirstFile(k, o.configPaths); err != nil {
		return nil, err
	}

	// 4️⃣ 环境变量
	if o.dotenv {
		loadDotenv(o.dotenvFiles)
	}
	if o.envPrefix != "" {
		if err := k.Load(confmap.Provider(envOverrides(k, knownKeys, o.envPrefix), "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load env overrides: %w", err)
		}
	}

	// 5️⃣ CLI flags (最高优先级，仅当用户明确指定时)
	if o.cmd != nil {
		flags := map[string]any{}
		collectCLIFlags(o.cmd, flags, reflect.TypeOf(defaultConfig), "")
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load cli flags: %w", err)
		}
	}

	var cfg T
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// loadFirstFile 加载第一个存在的配置文件。文件存在但解析失败时返回错误。
func loadFirstFile(k *koanf.Koanf, paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserForPath(path)); err != nil {
			return fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		slog.Debug("Loaded config from file", "path", path)

		return nil
	}

	if len(paths) > 0 {
		slog.Debug("No config file found, using defaults")
	}

	return nil
}

// parserForPath 根据扩展名选择解析器，默认 YAML。
func parserForPath(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Parser()
	}

	return yaml.Parser()
}

func loadDotenv(files []string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("Failed to load dotenv file", "path", f, "error", err)
		}
	}
}

// envKey 返回 koanf key 对应的环境变量名
func envKey(prefix, key string) string {
	name := strings.NewReplacer(".", "_", "-", "_").Replace(key)

	return prefix + strings.ToUpper(name)
}

// envOverrides 按已知 key 查找环境变量。
// 默认值为切片的 key，环境变量值按逗号拆分。
func envOverrides(k *koanf.Koanf, knownKeys []string, prefix string) map[string]any {
	out := map[string]any{}
	for _, key := range knownKeys {
		val, ok := os.LookupEnv(envKey(prefix, key))
		if !ok {
			continue
		}
		if isSlice(k.Get(key)) {
			out[key] = splitList(val)
			continue
		}
		out[key] = val
	}

	return out
}

func isSlice(v any) bool {
	if v == nil {
		return false
	}

	return reflect.TypeOf(v).Kind() == reflect.Slice
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// flagName 将 koanf key 转换为 CLI flag 名称 (kebab-case)
func flagName(key string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(key)
}

// collectCLIFlags 递归遍历结构体字段，收集用户明确指定的 CLI flags
func collectCLIFlags(cmd *cli.Command, out map[string]any, typ reflect.Type, prefix string) {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		koanfKey := field.Tag.Get("koanf")
		if koanfKey == "" {
			continue
		}

		fullKey := koanfKey
		if prefix != "" {
			fullKey = prefix + "." + koanfKey
		}

		if field.Type.Kind() == reflect.Struct &&
			field.Type != reflect.TypeFor[time.Time]() {
			collectCLIFlags(cmd, out, field.Type, fullKey)
			continue
		}

		name := flagName(fullKey)
		if !cmd.IsSet(name) {
			continue
		}

		if v, ok := flagValue(cmd, name, field.Type); ok {
			out[fullKey] = v
		}
	}
}

// flagValue 根据字段类型从 CLI 读取值
func flagValue(cmd *cli.Command, name string, fieldType reflect.Type) (any, bool) {
	if fieldType == reflect.TypeFor[time.Duration]() {
		return cmd.Duration(name), true
	}

	switch fieldType.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmd.Int(name), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmd.Uint(name), true
	case reflect.Float32, reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			return cmd.StringSlice(name), true
		}
	}

	return nil, false
}
