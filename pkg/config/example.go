package config

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	yamlv3 "go.yaml.in/yaml/v3"
)

// ExampleHeader 示例文件首行注释
const ExampleHeader = "配置示例文件, 复制此文件为 config.yaml 并根据需要修改"

// ExampleYAML 将配置结构体序列化为带注释的 YAML。
//
// 通过 desc tag 自动生成注释，适用于生成 config.example.yaml。
//
// 使用示例：
//
//	yaml := config.ExampleYAML(DefaultConfig())
//	os.WriteFile("config/config.example.yaml", yaml, 0644)
func ExampleYAML[T any](cfg T) []byte {
	node := structToNode(reflect.ValueOf(cfg), reflect.TypeOf(cfg))
	node.HeadComment = ExampleHeader

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	_ = enc.Encode(node)
	_ = enc.Close()

	return buf.Bytes()
}

// structToNode 将结构体转换为带注释的 yamlv3.Node。
func structToNode(val reflect.Value, typ reflect.Type) *yamlv3.Node {
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null"}
		}
		val = val.Elem()
		typ = typ.Elem()
	}

	node := &yamlv3.Node{Kind: yamlv3.MappingNode}

	for i := range typ.NumField() {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		key := field.Tag.Get("koanf")
		if key == "" {
			continue
		}
		comment := field.Tag.Get("desc")

		keyNode := &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: key}

		var valNode *yamlv3.Node
		isStruct := field.Type.Kind() == reflect.Struct &&
			field.Type != reflect.TypeFor[time.Time]()

		switch {
		case isStruct:
			valNode = structToNode(fieldVal, field.Type)
			keyNode.HeadComment = "\n" + comment // 复杂类型注释放在 key 上方，前面加空行
		case field.Type.Kind() == reflect.Slice:
			valNode = valueToNode(fieldVal)
			keyNode.HeadComment = comment
		default:
			valNode = valueToNode(fieldVal)
			setSimpleFieldComment(keyNode, valNode, comment)
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node
}

// setSimpleFieldComment 多行注释放在 key 上方，单行注释放在行尾。
func setSimpleFieldComment(keyNode, valNode *yamlv3.Node, comment string) {
	if strings.Contains(comment, "\n") {
		keyNode.HeadComment = comment
	} else {
		valNode.LineComment = comment
	}
}

// valueToNode 将值转换为 yamlv3.Node。
func valueToNode(val reflect.Value) *yamlv3.Node {
	if d, ok := val.Interface().(time.Duration); ok {
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: d.String()}
	}

	switch val.Kind() {
	case reflect.String:
		return &yamlv3.Node{
			Kind:  yamlv3.ScalarNode,
			Value: val.String(),
			Style: yamlv3.DoubleQuotedStyle,
		}

	case reflect.Bool:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: strconv.FormatBool(val.Bool())}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: strconv.FormatInt(val.Int(), 10)}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: strconv.FormatUint(val.Uint(), 10)}

	case reflect.Slice:
		node := &yamlv3.Node{Kind: yamlv3.SequenceNode}
		if val.Len() == 0 {
			node.Style = yamlv3.FlowStyle // [] 形式
		}
		for j := range val.Len() {
			elemNode := valueToNode(val.Index(j))
			elemNode.Style = 0
			node.Content = append(node.Content, elemNode)
		}

		return node

	default:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: fmt.Sprintf("%v", val.Interface())}
	}
}
