// Package slot 为单个槽位生成代码片段。
//
// 每个槽位产生两段代码：追加到 tile 每 tick 脚本中的入口片段 (entry)，
// 以及写入 slot/<slot>/eh.mcfunction 的事件处理脚本 (handler)。
// label 槽位还会返回需要登记到 #eg:label 的物品，由调用方统一合并。
package slot

import (
	"fmt"

	"github.com/lwmacct/251218-go-easygui/internal/model"
	"github.com/lwmacct/251218-go-easygui/internal/resource"
	"github.com/lwmacct/251218-go-easygui/pkg/tmpl"
)

// Fragments 槽位生成结果
type Fragments struct {
	Entry      string
	Handler    string
	LabelItems []string
}

// Generator 槽位代码生成器
type Generator struct {
	store resource.Store
}

// New 创建槽位代码生成器
func New(store resource.Store) *Generator {
	return &Generator{store: store}
}

// Generate 按槽位类型生成代码片段。类型或条件未知时返回 *ConfigError。
func (g *Generator) Generate(tileID, slot string, spec model.SlotSpec) (Fragments, error) {
	switch spec.Type {
	case model.SlotLabel:
		return g.label(tileID, slot, spec)
	case model.SlotNLeft:
		return g.nLeft(tileID, slot, spec)
	case model.SlotDrop:
		return g.drop(tileID, slot, spec)
	default:
		return Fragments{}, &ConfigError{Kind: ErrUnknownSlotType, Slot: slot, Value: spec.Type}
	}
}

func (g *Generator) label(tileID, slot string, spec model.SlotSpec) (Fragments, error) {
	if spec.Item == nil {
		return Fragments{}, &ConfigError{Kind: ErrMissingField, Slot: slot, Value: "item"}
	}
	item := *spec.Item

	entry, err := g.render(resource.SlotLabelEntry, tmpl.Bindings{
		tmpl.B("slot", slot),
		tmpl.B("id", tileID),
	})
	if err != nil {
		return Fragments{}, err
	}

	handler, err := g.render(resource.SlotLabelHandler, tmpl.Bindings{
		tmpl.B("slot", slot),
		tmpl.B("item", item.ID),
		tmpl.B("text", item.Text),
		tmpl.B("color", item.ColorClause()),
		tmpl.B("enchant", item.EnchantClause()),
		tmpl.B("click", spec.Click),
	})
	if err != nil {
		return Fragments{}, err
	}

	return Fragments{Entry: entry, Handler: handler, LabelItems: []string{item.ID}}, nil
}

func (g *Generator) nLeft(tileID, slot string, spec model.SlotSpec) (Fragments, error) {
	if spec.N == nil {
		return Fragments{}, &ConfigError{Kind: ErrMissingField, Slot: slot, Value: "n"}
	}
	n := *spec.N

	entry, err := g.render(resource.SlotNLeftEntry, tmpl.Bindings{
		tmpl.B("slot", slot),
		tmpl.B("id", tileID),
		tmpl.B("n_add_one", n+1),
	})
	if err != nil {
		return Fragments{}, err
	}

	handler, err := g.render(resource.SlotNLeftHandler, tmpl.Bindings{
		tmpl.B("slot", slot),
		tmpl.B("n", n),
	})
	if err != nil {
		return Fragments{}, err
	}

	return Fragments{Entry: entry, Handler: handler}, nil
}

func (g *Generator) drop(tileID, slot string, spec model.SlotSpec) (Fragments, error) {
	var (
		entryName string
		bindings  = tmpl.Bindings{
			tmpl.B("slot", slot),
			tmpl.B("tile_id", tileID),
		}
	)

	switch spec.Cond {
	case model.CondIf, model.CondUnless:
		entryName = resource.SlotDropEntryIf
		if spec.Cond == model.CondUnless {
			entryName = resource.SlotDropEntryUnless
		}
		bindings = append(bindings,
			tmpl.B("tag", clause(spec.Tag, ",tag:%s")),
			tmpl.B("item_id", clause(spec.ID, `,id:"%s"`)),
			tmpl.B("data", clause(spec.Data, ".tag.%s")),
		)
	case model.CondAlways:
		entryName = resource.SlotDropEntryIf
		bindings = append(bindings, tmpl.B("tag", ""), tmpl.B("item_id", ""), tmpl.B("data", ""))
	case model.CondNever:
	default:
		return Fragments{}, &ConfigError{Kind: ErrUnknownDropCondition, Slot: slot, Value: spec.Cond}
	}

	var entry string
	if entryName != "" {
		var err error
		if entry, err = g.render(entryName, bindings); err != nil {
			return Fragments{}, err
		}
	}

	handler, err := g.render(resource.SlotDropHandler, tmpl.Bindings{tmpl.B("slot", slot)})
	if err != nil {
		return Fragments{}, err
	}

	return Fragments{Entry: entry, Handler: handler}, nil
}

func (g *Generator) render(name string, bindings tmpl.Bindings) (string, error) {
	text, err := g.store.Load(name)
	if err != nil {
		return "", err
	}

	return tmpl.Render(text, bindings), nil
}

// clause 可选字段存在时按 format 格式化，否则为空
func clause(v *string, format string) string {
	if v == nil {
		return ""
	}

	return fmt.Sprintf(format, *v)
}
