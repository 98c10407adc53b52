package model

import (
	"fmt"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// bindingCurse 附魔子句：诅咒附魔只用于让物品发光
const bindingCurse = `,Enchantments:[{id:"minecraft:binding_curse",lvl:1}]`

// Item 物品描述
type Item struct {
	ID      string  `yaml:"id" validate:"required"`
	Text    string  `yaml:"text"`
	Color   *string `yaml:"color"`
	Enchant bool    `yaml:"enchant"`
	Tag     TagMap  `yaml:"tag"`
}

// ColorClause 返回 JSON 文本组件中的颜色子句，未设置颜色时为空。
func (i Item) ColorClause() string {
	if i.Color == nil {
		return ""
	}

	return fmt.Sprintf(`,"color":"%s"`, *i.Color)
}

// EnchantClause 返回 NBT 附魔子句，未启用时为空。
func (i Item) EnchantClause() string {
	if !i.Enchant {
		return ""
	}

	return bindingCurse
}

// EscapedColorClause 同 ColorClause，引号转义，用于嵌入 JSON 字符串字面量。
func (i Item) EscapedColorClause() string {
	return escapeQuotes(i.ColorClause())
}

// EscapedEnchantClause 同 EnchantClause，引号转义，用于嵌入 JSON 字符串字面量。
func (i Item) EscapedEnchantClause() string {
	return escapeQuotes(i.EnchantClause())
}

// TagClause 按文档顺序拼接 ,key:value
func (i Item) TagClause() string {
	var b strings.Builder
	for _, e := range i.Tag {
		b.WriteString(",")
		b.WriteString(e.Key)
		b.WriteString(":")
		b.WriteString(e.Value)
	}

	return b.String()
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// TagEntry 物品标签键值对
type TagEntry struct {
	Key   string
	Value string
}

// TagMap 保持文档顺序的标签映射
type TagMap []TagEntry

// UnmarshalYAML 按文档顺序读取映射。非标量的值以 flow 风格 YAML 文本保存。
func (m *TagMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: tag must be a mapping", node.Line)
	}

	out := make(TagMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		val, err := scalarText(node.Content[i+1])
		if err != nil {
			return err
		}
		out = append(out, TagEntry{Key: node.Content[i].Value, Value: val})
	}
	*m = out

	return nil
}

func scalarText(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}

	flow := *node
	flow.Style = yaml.FlowStyle
	data, err := yaml.Marshal(&flow)
	if err != nil {
		return "", fmt.Errorf("line %d: encode tag value: %w", node.Line, err)
	}

	return strings.TrimSpace(string(data)), nil
}
