package tmpl

import (
	"fmt"
	"strings"
)

// Binding 单个占位符绑定
type Binding struct {
	Key   string
	Value any
}

// Bindings 有序的占位符绑定列表
type Bindings []Binding

// B 构造单个绑定，便于书写字面量：
//
//	tmpl.Bindings{tmpl.B("slot", 3), tmpl.B("id", "chest")}
func B(key string, value any) Binding {
	return Binding{Key: key, Value: value}
}

// With 返回追加了新绑定的副本，原列表不变。
func (b Bindings) With(key string, value any) Bindings {
	out := make(Bindings, 0, len(b)+1)
	out = append(out, b...)

	return append(out, B(key, value))
}

// Placeholder 返回 key 对应的占位符文本，即 <key>。
func Placeholder(key string) string {
	return "<" + key + ">"
}

// Render 将模板中每个 <key> 替换为绑定值的字符串形式。
//
// 单遍扫描 (strings.Replacer)，替换进来的值不会再被扫描，因此结果与绑定顺序无关。
// 值通过 fmt 的 %v 转为字符串，nil 视为空字符串。
// 模板中没有对应绑定的占位符保持原样。
func Render(template string, bindings Bindings) string {
	if len(bindings) == 0 {
		return template
	}

	pairs := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		pairs = append(pairs, Placeholder(b.Key), stringify(b.Value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
