package model

import (
	"fmt"

	yaml "go.yaml.in/yaml/v3"
)

// 槽位类型
const (
	SlotLabel = "label"
	SlotNLeft = "n_left"
	SlotDrop  = "drop"
)

// drop 槽位条件
const (
	CondIf     = "if"
	CondUnless = "unless"
	CondNever  = "never"
	CondAlways = "always"
)

// SlotSpec 槽位描述，字段按 Type 取用
type SlotSpec struct {
	Type string `yaml:"type"`

	// label
	Item  *Item  `yaml:"item"`
	Click string `yaml:"click"`

	// n_left
	N *int `yaml:"n"`

	// drop
	Cond string  `yaml:"cond"`
	Tag  *string `yaml:"tag"`
	ID   *string `yaml:"id"`
	Data *string `yaml:"data"`
}

// SlotEntry 槽位键及其描述。键可以是单个索引、a..b 闭区间或逗号分隔的列表。
type SlotEntry struct {
	Key  string
	Spec SlotSpec
}

// SlotMap 保持文档顺序的槽位映射
type SlotMap []SlotEntry

// UnmarshalYAML 按文档顺序读取槽位映射
func (m *SlotMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: slot must be a mapping", node.Line)
	}

	out := make(SlotMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		var spec SlotSpec
		if err := node.Content[i+1].Decode(&spec); err != nil {
			return fmt.Errorf("slot %s: %w", key.Value, err)
		}
		out = append(out, SlotEntry{Key: key.Value, Spec: spec})
	}
	*m = out

	return nil
}
