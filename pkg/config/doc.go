// Package config 提供通用的配置加载功能，可被外部项目复用。
//
// # 特性
//
// 使用泛型支持任意配置结构体类型，配置加载优先级 (从低到高)：
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置内容 - 通过 WithContent 传入的原始字节
//  3. 配置文件 - 通过 WithConfigPaths 选项设置，找到第一个即停止
//  4. 环境变量 - 通过 WithEnvPrefix 选项启用，可配合 WithDotenv 读取 .env
//  5. CLI flags - 通过 WithCommand 选项设置，最高优先级
//
// # 快速开始
//
// 定义配置结构体，使用 koanf 和 desc 标签：
//
//	type Config struct {
//	    Dir    string `koanf:"dir"    desc:"输出目录"`
//	    Format int    `koanf:"format" desc:"数据包格式版本"`
//	}
//
// 加载配置（使用函数选项模式）：
//
//	cfg, err := config.Load(Config{Dir: ".", Format: 10},
//	    config.WithConfigPaths(config.DefaultPaths("myapp")...),
//	    config.WithDotenv(),
//	    config.WithEnvPrefix("MYAPP_"),
//	    config.WithCommand(cmd),
//	)
//
// # 环境变量
//
// 环境变量按默认配置中已有的 key 自动绑定，命名规则：
//   - 前缀 + 大写的 koanf key
//   - 点号 (.) 与连字符 (-) 转为下划线 (_)
//
// 示例 (前缀为 "MYAPP_")：
//   - MYAPP_OUTPUT_DIR → output.dir
//   - MYAPP_TEMPLATE_FETCH_DIR → template.fetch_dir
//
// 未绑定到任何 key 的环境变量被忽略。
//
// # CLI Flag 映射
//
// koanf key 中的 . 与 _ 均转为 -，仅当用户明确指定时覆盖：
//   - output.dir → --output-dir
//   - template.cache_size → --template-cache-size
//
// # 生成配置示例
//
// 使用 [ExampleYAML] 根据配置结构体生成带注释的 YAML 示例。
package config
