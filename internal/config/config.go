// Package config 提供生成器的运行配置 (settings) 管理。
//
// 注意区分：这里是生成器自身的选项 (输出目录、模板来源、pack.mcmeta 元数据)，
// tile 配置文档由 internal/tile 解析。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - DefaultPaths(appName) 中找到的第一个
//  3. 环境变量 - .env 与 EASYGUI_ 前缀
//  4. CLI flags
package config

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-easygui/pkg/config"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "EASYGUI_"

// Config 应用配置
type Config struct {
	Output   OutputConfig   `koanf:"output" desc:"输出配置"`
	Template TemplateConfig `koanf:"template" desc:"模板配置"`
	Pack     PackConfig     `koanf:"pack" desc:"pack.mcmeta 配置, 仅在文件不存在时写入"`
	Label    LabelConfig    `koanf:"label" desc:"标签物品配置"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	Dir string `koanf:"dir" desc:"数据包根目录, 所有输出路径相对于此目录"`
}

// TemplateConfig 模板配置
type TemplateConfig struct {
	Source    string `koanf:"source" desc:"模板来源: 留空使用内置模板; 目录; .zip 文件; 或 go-getter 支持的远程地址"`
	FetchDir  string `koanf:"fetch_dir" desc:"远程模板下载目录"`
	CacheSize int    `koanf:"cache_size" desc:"模板缓存条目数"`
}

// PackConfig pack.mcmeta 配置
type PackConfig struct {
	Format      int    `koanf:"format" desc:"pack_format"`
	Description string `koanf:"description" desc:"数据包描述"`
}

// LabelConfig 标签物品配置
type LabelConfig struct {
	Defaults []string `koanf:"defaults" desc:"总是写入 #eg:label 的物品"`
}

// DefaultConfig 返回默认配置
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir: ".",
		},
		Template: TemplateConfig{
			Source:    "",
			FetchDir:  ".easygui/template",
			CacheSize: 64,
		},
		Pack: PackConfig{
			Format:      10,
			Description: "",
		},
		Label: LabelConfig{
			Defaults: []string{"cookie"},
		},
	}
}

// Load 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
func Load(cmd *cli.Command, appName string, opts ...config.Option) (*Config, error) {
	return config.Load(
		DefaultConfig(),
		append([]config.Option{
			config.WithConfigPaths(config.DefaultPaths(appName)...),
			config.WithDotenv(),
			config.WithEnvPrefix(EnvPrefix),
			config.WithCommand(cmd),
		}, opts...)...,
	)
}
