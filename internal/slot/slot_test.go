package slot

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251218-go-easygui/internal/model"
	"github.com/lwmacct/251218-go-easygui/internal/resource"
)

// mapStore 以 map 提供模板，便于断言完整输出
type mapStore map[string]string

func (m mapStore) Load(name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", fs.ErrNotExist
	}

	return text, nil
}

var testTemplates = mapStore{
	resource.SlotLabelEntry:      "L <id>/<slot>;",
	resource.SlotLabelHandler:    "<click>|<slot>|<item>|<text>|<color>|<enchant>",
	resource.SlotNLeftEntry:      "N <id>/<slot> <n_add_one>;",
	resource.SlotNLeftHandler:    "n <slot> <n>",
	resource.SlotDropEntryIf:     "IF <tile_id>/<slot>{<item_id><tag>}<data>;",
	resource.SlotDropEntryUnless: "UNLESS <tile_id>/<slot>{<item_id><tag>}<data>;",
	resource.SlotDropHandler:     "drop <slot>",
}

func ptr[T any](v T) *T { return &v }

func TestGenerate_Label(t *testing.T) {
	g := New(testTemplates)

	got, err := g.Generate("chest1", "4", model.SlotSpec{
		Type:  model.SlotLabel,
		Item:  &model.Item{ID: "minecraft:paper", Text: "Next", Color: ptr("gray"), Enchant: true},
		Click: "function eg:next",
	})
	require.NoError(t, err)

	assert.Equal(t, "L chest1/4;", got.Entry)
	assert.Equal(t,
		`function eg:next|4|minecraft:paper|Next|,"color":"gray"|,Enchantments:[{id:"minecraft:binding_curse",lvl:1}]`,
		got.Handler)
	assert.Equal(t, []string{"minecraft:paper"}, got.LabelItems)
}

func TestGenerate_LabelDefaults(t *testing.T) {
	got, err := New(testTemplates).Generate("chest1", "0", model.SlotSpec{
		Type: model.SlotLabel,
		Item: &model.Item{ID: "minecraft:paper"},
	})
	require.NoError(t, err)

	assert.Equal(t, "|0|minecraft:paper|||", got.Handler, "click/text/color/enchant 缺省为空")
}

func TestGenerate_NLeft(t *testing.T) {
	got, err := New(testTemplates).Generate("chest1", "0", model.SlotSpec{Type: model.SlotNLeft, N: ptr(5)})
	require.NoError(t, err)

	assert.Equal(t, "N chest1/0 6;", got.Entry)
	assert.Equal(t, "n 0 5", got.Handler)
	assert.Empty(t, got.LabelItems)
}

func TestGenerate_Drop(t *testing.T) {
	tests := []struct {
		name  string
		spec  model.SlotSpec
		entry string
	}{
		{
			name:  "if with all clauses",
			spec:  model.SlotSpec{Cond: model.CondIf, ID: ptr("minecraft:stone"), Tag: ptr("{a:1b}"), Data: ptr("a")},
			entry: `IF chest1/2{,id:"minecraft:stone",tag:{a:1b}}.tag.a;`,
		},
		{
			name:  "if without clauses",
			spec:  model.SlotSpec{Cond: model.CondIf},
			entry: "IF chest1/2{};",
		},
		{
			name:  "unless uses negated template",
			spec:  model.SlotSpec{Cond: model.CondUnless, ID: ptr("minecraft:dirt")},
			entry: `UNLESS chest1/2{,id:"minecraft:dirt"};`,
		},
		{
			name:  "always ignores clauses",
			spec:  model.SlotSpec{Cond: model.CondAlways, ID: ptr("minecraft:dirt"), Data: ptr("x")},
			entry: "IF chest1/2{};",
		},
		{
			name:  "never has no entry",
			spec:  model.SlotSpec{Cond: model.CondNever},
			entry: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.spec.Type = model.SlotDrop
			got, err := New(testTemplates).Generate("chest1", "2", tt.spec)
			require.NoError(t, err)

			assert.Equal(t, tt.entry, got.Entry)
			assert.Equal(t, "drop 2", got.Handler, "handler 总是生成")
		})
	}
}

func TestGenerate_ConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		spec  model.SlotSpec
		kind  error
		value string
	}{
		{"unknown type", model.SlotSpec{Type: "bogus"}, ErrUnknownSlotType, "bogus"},
		{"missing type", model.SlotSpec{}, ErrUnknownSlotType, ""},
		{"unknown cond", model.SlotSpec{Type: model.SlotDrop, Cond: "bogus"}, ErrUnknownDropCondition, "bogus"},
		{"missing cond", model.SlotSpec{Type: model.SlotDrop}, ErrUnknownDropCondition, ""},
		{"label without item", model.SlotSpec{Type: model.SlotLabel}, ErrMissingField, "item"},
		{"n_left without n", model.SlotSpec{Type: model.SlotNLeft}, ErrMissingField, "n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(testTemplates).Generate("chest1", "7", tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, "7", cerr.Slot)
			assert.Equal(t, tt.value, cerr.Value)
			assert.Contains(t, err.Error(), tt.kind.Error())
		})
	}
}

func TestGenerate_MissingTemplate(t *testing.T) {
	_, err := New(mapStore{}).Generate("chest1", "0", model.SlotSpec{Type: model.SlotNLeft, N: ptr(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGenerate_EmbeddedTemplates(t *testing.T) {
	got, err := New(resource.Embedded()).Generate("chest1", "0", model.SlotSpec{Type: model.SlotNLeft, N: ptr(5)})
	require.NoError(t, err)

	assert.Contains(t, got.Entry, "Items[{Slot:0b}]")
	assert.Contains(t, got.Entry, "matches 6..")
	assert.Contains(t, got.Entry, "function eg:tile/chest1/slot/0/eh")
	assert.Contains(t, got.Handler, "set value 5b")
	assert.NotContains(t, got.Entry+got.Handler, "<", "所有占位符都已绑定")
}

func TestExpandKey(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"0", []string{"0"}},
		{"3..5", []string{"3", "4", "5"}},
		{"7..7", []string{"7"}},
		{"0,2", []string{"0", "2"}},
		{"0, 7..8", []string{"0", "7", "8"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ExpandKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "1,", "a..3", "3..b", "5..3"} {
		t.Run(key, func(t *testing.T) {
			_, err := ExpandKey(key)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSlotKey)
		})
	}
}
