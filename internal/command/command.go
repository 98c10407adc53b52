// Package command 提供数据包生成器的命令行功能。
package command

import "github.com/lwmacct/251218-go-easygui/internal/config"

// Defaults 默认配置 - 单一来源 (Single Source of Truth)
var Defaults = config.DefaultConfig()
