package tmpl_test

import (
	"testing"

	"github.com/lwmacct/251218-go-easygui/pkg/tmpl"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		bindings tmpl.Bindings
		want     string
	}{
		{
			name:     "no placeholders",
			template: "say hello world",
			bindings: tmpl.Bindings{tmpl.B("id", "chest")},
			want:     "say hello world",
		},
		{
			name:     "no bindings",
			template: "function eg:tile/<id>/tick",
			bindings: nil,
			want:     "function eg:tile/<id>/tick",
		},
		{
			name:     "every occurrence replaced",
			template: "<id> <id> <id>",
			bindings: tmpl.Bindings{tmpl.B("id", "chest")},
			want:     "chest chest chest",
		},
		{
			name:     "unbound placeholder kept",
			template: "Items[{Slot:<slot>b}] <click>",
			bindings: tmpl.Bindings{tmpl.B("slot", 3)},
			want:     "Items[{Slot:3b}] <click>",
		},
		{
			name:     "integer value",
			template: "matches <n_add_one>..",
			bindings: tmpl.Bindings{tmpl.B("n_add_one", 6)},
			want:     "matches 6..",
		},
		{
			name:     "nil value renders empty",
			template: "a<color>b",
			bindings: tmpl.Bindings{tmpl.B("color", nil)},
			want:     "ab",
		},
		{
			name:     "bare key without brackets untouched",
			template: "id <id>",
			bindings: tmpl.Bindings{tmpl.B("id", "x")},
			want:     "id x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tmpl.Render(tt.template, tt.bindings))
		})
	}
}

func TestRender_NonRecursive(t *testing.T) {
	// 替换进来的值中出现的占位符不会被再次展开
	got := tmpl.Render("<a>|<b>", tmpl.Bindings{tmpl.B("a", "<b>"), tmpl.B("b", "x")})
	assert.Equal(t, "<b>|x", got)

	reversed := tmpl.Render("<a>|<b>", tmpl.Bindings{tmpl.B("b", "x"), tmpl.B("a", "<b>")})
	assert.Equal(t, got, reversed, "结果不应依赖绑定顺序")
}

func TestBindings_With(t *testing.T) {
	base := tmpl.Bindings{tmpl.B("slot", 1)}
	ext := base.With("id", "chest")

	assert.Len(t, base, 1, "原列表不应被修改")
	assert.Equal(t, "1 chest", tmpl.Render("<slot> <id>", ext))
}
