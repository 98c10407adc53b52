// Package tile 将 tile 配置文档组装成数据包文件。
//
// 流程是单向的：tick 脚本 → 各槽位 → 搜索脚本 → 刷怪蛋或掉落物分支 → 全局文件与注册表。
// 任一步出错立即返回，已写出的文件不回滚。
package tile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/lwmacct/251218-go-easygui/internal/model"
	"github.com/lwmacct/251218-go-easygui/internal/output"
	"github.com/lwmacct/251218-go-easygui/internal/registry"
	"github.com/lwmacct/251218-go-easygui/internal/resource"
	"github.com/lwmacct/251218-go-easygui/internal/slot"
	"github.com/lwmacct/251218-go-easygui/pkg/tmpl"
)

// Options 组装选项
type Options struct {
	PackFormat      int
	PackDescription string
	// LabelDefaults 总是登记到 #eg:label 的物品
	LabelDefaults []string
}

// Result 单个 tile 的组装结果
type Result struct {
	TileID     string
	Files      []string
	LabelItems []string
}

// Assembler tile 组装器
type Assembler struct {
	store  resource.Store
	writer *output.Writer
	slots  *slot.Generator
	opts   Options
}

// New 创建组装器
func New(store resource.Store, writer *output.Writer, opts Options) *Assembler {
	return &Assembler{
		store:  store,
		writer: writer,
		slots:  slot.New(store),
		opts:   opts,
	}
}

// run 单次组装的状态
type run struct {
	*Assembler
	tile   *model.Tile
	result *Result
}

// Assemble 生成一个 tile 的全部文件并合并全局注册表。
func (a *Assembler) Assemble(t *model.Tile) (*Result, error) {
	r := &run{
		Assembler: a,
		tile:      t,
		result:    &Result{TileID: t.ID},
	}

	steps := []func() error{
		r.tick,
		r.searchItemFrame,
		r.instantiation,
		r.globals,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return r.result, fmt.Errorf("tile %s: %w", t.ID, err)
		}
	}

	slog.Info("Tile generated", "id", t.ID, "files", len(r.result.Files), "labels", len(r.result.LabelItems))

	return r.result, nil
}

// tick 生成各槽位脚本并组装 tile 的 tick 脚本
func (r *run) tick() error {
	t := r.tile
	head, err := r.render(resource.TileTick, tmpl.Bindings{
		tmpl.B("id", t.ID),
		tmpl.B("block", t.Entity.Block.ID),
	})
	if err != nil {
		return err
	}

	var entries strings.Builder
	entries.WriteString(head)

	labels := append([]string{}, r.opts.LabelDefaults...)
	for _, s := range t.Slot {
		indexes, err := slot.ExpandKey(s.Key)
		if err != nil {
			return err
		}

		for _, index := range indexes {
			frag, err := r.slots.Generate(t.ID, index, s.Spec)
			if err != nil {
				return err
			}
			if err := r.write(SlotHandlerPath(t.ID, index), frag.Handler); err != nil {
				return err
			}
			entries.WriteString(frag.Entry)
			labels = append(labels, frag.LabelItems...)
		}
	}
	entries.WriteString(t.Tick)
	slices.Sort(labels)
	r.result.LabelItems = slices.Compact(labels)

	return r.write(FunctionPath(t.ID, "tick"), entries.String())
}

func (r *run) searchItemFrame() error {
	return r.renderTo(FunctionPath(r.tile.ID, "search/item_frame"), resource.TileSearchItemFrame,
		tmpl.Bindings{tmpl.B("id", r.tile.ID)})
}

// instantiation 按是否配置刷怪蛋选择放置方式
func (r *run) instantiation() error {
	if r.tile.SpawnEgg != nil {
		return r.spawnEgg()
	}

	return r.droppedItem()
}

func (r *run) spawnEgg() error {
	t := r.tile
	egg := *t.SpawnEgg
	id := tmpl.Bindings{tmpl.B("id", t.ID)}

	if err := r.renderTo(FunctionPath(t.ID, "spawn_egg"), resource.TileSpawnEgg, tmpl.Bindings{
		tmpl.B("id", t.ID),
		tmpl.B("spawn_egg", egg.ID),
		tmpl.B("text", egg.Text),
		tmpl.B("color", egg.ColorClause()),
		tmpl.B("enchant", egg.EnchantClause()),
	}); err != nil {
		return err
	}

	// 战利品表中的 NBT 位于 JSON 字符串内，子句使用转义引号
	if err := r.renderTo(LootTablePath(t.ID), resource.TileSpawnEggLoot, tmpl.Bindings{
		tmpl.B("id", t.ID),
		tmpl.B("spawn_egg", egg.ID),
		tmpl.B("text", egg.Text),
		tmpl.B("color", egg.EscapedColorClause()),
		tmpl.B("enchant", egg.EscapedEnchantClause()),
	}); err != nil {
		return err
	}

	if err := r.renderTo(FunctionPath(t.ID, "search/area_effect_cloud"), resource.TileSearchAreaEffectCloud, id); err != nil {
		return err
	}

	if err := r.renderTo(FunctionPath(t.ID, "destroy"), resource.TileDestroy(t.Setblock), tmpl.Bindings{
		tmpl.B("id", t.ID),
		tmpl.B("block", t.Entity.Block.ID),
	}); err != nil {
		return err
	}

	if err := r.renderTo(FunctionPath(t.ID, "try_spawn/cancel"), resource.TileTrySpawnCancel, id); err != nil {
		return err
	}
	if err := r.renderTo(FunctionPath(t.ID, "try_spawn/check"), resource.TileTrySpawnCheck, id); err != nil {
		return err
	}

	if err := r.merge(SearchAreaEffectRegistry, FunctionID(t.ID, "search/area_effect_cloud")); err != nil {
		return err
	}

	return r.renderTo(FunctionPath(t.ID, "try_spawn/load"), resource.TileTrySpawnLoad, r.containerBindings())
}

func (r *run) droppedItem() error {
	t := r.tile
	if t.DroppedItem == nil {
		return fmt.Errorf("dropped_item is required when spawn_egg is absent")
	}
	item := *t.DroppedItem
	tag := item.TagClause()

	if err := r.renderTo(FunctionPath(t.ID, "dropped_item"), resource.DroppedItem, tmpl.Bindings{
		tmpl.B("id", t.ID),
		tmpl.B("item", item.ID),
		tmpl.B("text", item.Text),
		tmpl.B("color", item.ColorClause()),
		tmpl.B("enchant", item.EnchantClause()),
		tmpl.B("tag", tag),
	}); err != nil {
		return err
	}

	if err := r.renderTo(LootTablePath(t.ID), resource.DroppedItemLoot, tmpl.Bindings{
		tmpl.B("id", t.ID),
		tmpl.B("item", item.ID),
		tmpl.B("text", item.Text),
		tmpl.B("color", item.EscapedColorClause()),
		tmpl.B("enchant", item.EscapedEnchantClause()),
		tmpl.B("tag", tag),
	}); err != nil {
		return err
	}

	if err := r.renderTo(FunctionPath(t.ID, "search/item"), resource.TileSearchItem,
		tmpl.Bindings{tmpl.B("id", t.ID)}); err != nil {
		return err
	}

	if err := r.renderTo(FunctionPath(t.ID, "destroy"), resource.DroppedItemDestroy(t.Setblock), tmpl.Bindings{
		tmpl.B("id", t.ID),
		tmpl.B("block", t.Entity.Block.ID),
		tmpl.B("load", hook(t.Destroy, "~ ~-1 ~")),
		tmpl.B("item", item.ID),
		tmpl.B("text", item.Text),
		tmpl.B("color", item.ColorClause()),
		tmpl.B("enchant", item.EnchantClause()),
		tmpl.B("tag", tag),
	}); err != nil {
		return err
	}

	if err := r.renderTo(FunctionPath(t.ID, "try_spawn/check"), resource.DroppedItemTrySpawnCheck,
		tmpl.Bindings{tmpl.B("id", t.ID)}); err != nil {
		return err
	}

	if err := r.merge(SearchItemRegistry, FunctionID(t.ID, "search/item")); err != nil {
		return err
	}

	bindings := r.containerBindings().With("load", hook(t.Load, "~ ~1 ~"))

	return r.renderTo(FunctionPath(t.ID, "try_spawn/load"), resource.DroppedItemTrySpawnLoad, bindings)
}

// containerBindings 放置容器方块与展示物品框所需的绑定
func (r *run) containerBindings() tmpl.Bindings {
	block, item := r.tile.Entity.Block, r.tile.Entity.Item

	return tmpl.Bindings{
		tmpl.B("id", r.tile.ID),
		tmpl.B("item", item.ID),
		tmpl.B("item_text", item.Text),
		tmpl.B("item_color", item.ColorClause()),
		tmpl.B("item_enchant", item.EnchantClause()),
		tmpl.B("block", block.ID),
		tmpl.B("block_text", block.Text),
		tmpl.B("block_color", block.ColorClause()),
	}
}

// globals 合并全局注册表并写出全局脚本
func (r *run) globals() error {
	if err := r.merge(LabelRegistry, r.result.LabelItems...); err != nil {
		return err
	}
	if err := r.merge(SearchItemFrameRegistry, FunctionID(r.tile.ID, "search/item_frame")); err != nil {
		return err
	}
	if err := r.renderTo(GameTickFunction, resource.GameTick, nil); err != nil {
		return err
	}
	if err := r.renderTo(GameLoadFunction, resource.GameLoad, nil); err != nil {
		return err
	}
	if err := r.packMeta(); err != nil {
		return err
	}
	if err := r.merge(MinecraftTickRegistry, gameTickFunctionID); err != nil {
		return err
	}

	return r.merge(MinecraftLoadRegistry, gameLoadFunctionID)
}

type packMetaFile struct {
	Pack struct {
		PackFormat  int    `json:"pack_format"`
		Description string `json:"description"`
	} `json:"pack"`
}

// packMeta 仅在 pack.mcmeta 不存在时写入
func (r *run) packMeta() error {
	var meta packMetaFile
	meta.Pack.PackFormat = r.opts.PackFormat
	meta.Pack.Description = r.opts.PackDescription

	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode %s: %w", PackMeta, err)
	}

	written, err := r.writer.WriteIfAbsent(PackMeta, string(data))
	if err != nil {
		return err
	}
	if written {
		r.result.Files = append(r.result.Files, PackMeta)
	}

	return nil
}

func (r *run) render(name string, bindings tmpl.Bindings) (string, error) {
	text, err := r.store.Load(name)
	if err != nil {
		return "", err
	}

	return tmpl.Render(text, bindings), nil
}

func (r *run) renderTo(rel, name string, bindings tmpl.Bindings) error {
	text, err := r.render(name, bindings)
	if err != nil {
		return err
	}

	return r.write(rel, text)
}

func (r *run) write(rel, content string) error {
	if err := r.writer.Write(rel, content); err != nil {
		return err
	}
	r.result.Files = append(r.result.Files, rel)

	return nil
}

func (r *run) merge(rel string, values ...string) error {
	if _, err := registry.Merge(r.writer.Path(rel), values...); err != nil {
		return err
	}
	r.result.Files = append(r.result.Files, rel)

	return nil
}

// hook 将可选的钩子命令包装为相对坐标执行，未配置时为空
func hook(cmd *string, offset string) string {
	if cmd == nil {
		return ""
	}

	return "execute positioned " + offset + " run " + *cmd
}
