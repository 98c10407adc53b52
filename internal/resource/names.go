package resource

// Root 模板资源根目录名
const Root = "template"

// 固定的模板资源名，相对于资源根 (目录、zip 或内置)。
const (
	SlotLabelEntry      = "template/slot_type/label/entry.mcfunction"
	SlotLabelHandler    = "template/slot_type/label/eh.mcfunction"
	SlotNLeftEntry      = "template/slot_type/n_left/entry.mcfunction"
	SlotNLeftHandler    = "template/slot_type/n_left/eh.mcfunction"
	SlotDropEntryIf     = "template/slot_type/drop/entry_if.mcfunction"
	SlotDropEntryUnless = "template/slot_type/drop/entry_unless.mcfunction"
	SlotDropHandler     = "template/slot_type/drop/eh.mcfunction"

	TileTick                  = "template/tile/tick.mcfunction"
	TileSearchItemFrame       = "template/tile/search/item_frame.mcfunction"
	TileSearchAreaEffectCloud = "template/tile/search/area_effect_cloud.mcfunction"
	TileSearchItem            = "template/tile/search/item.mcfunction"
	TileSpawnEgg              = "template/tile/spawn_egg.mcfunction"
	TileSpawnEggLoot          = "template/tile/spawn_egg.json"
	TileTrySpawnCancel        = "template/tile/try_spawn/cancel.mcfunction"
	TileTrySpawnCheck         = "template/tile/try_spawn/check.mcfunction"
	TileTrySpawnLoad          = "template/tile/try_spawn/load.mcfunction"

	DroppedItem              = "template/tile_dropped_item/dropped_item.mcfunction"
	DroppedItemLoot          = "template/tile_dropped_item/dropped_item.json"
	DroppedItemTrySpawnCheck = "template/tile_dropped_item/try_spawn/check.mcfunction"
	DroppedItemTrySpawnLoad  = "template/tile_dropped_item/try_spawn/load.mcfunction"

	GameTick = "template/game/tick.mcfunction"
	GameLoad = "template/game/load.mcfunction"
)

// TileDestroy 返回刷怪蛋分支按 setblock 策略选择的 destroy 模板
func TileDestroy(setblock string) string {
	return "template/tile/destroy_" + setblock + ".mcfunction"
}

// DroppedItemDestroy 返回掉落物分支按 setblock 策略选择的 destroy 模板
func DroppedItemDestroy(setblock string) string {
	return "template/tile_dropped_item/destroy_" + setblock + ".mcfunction"
}

// Names 返回所有内置模板资源名
func Names() []string {
	names := []string{
		SlotLabelEntry, SlotLabelHandler,
		SlotNLeftEntry, SlotNLeftHandler,
		SlotDropEntryIf, SlotDropEntryUnless, SlotDropHandler,
		TileTick, TileSearchItemFrame, TileSearchAreaEffectCloud, TileSearchItem,
		TileSpawnEgg, TileSpawnEggLoot,
		TileTrySpawnCancel, TileTrySpawnCheck, TileTrySpawnLoad,
		DroppedItem, DroppedItemLoot, DroppedItemTrySpawnCheck, DroppedItemTrySpawnLoad,
		GameTick, GameLoad,
	}
	for _, policy := range []string{"destroy", "keep"} {
		names = append(names, TileDestroy(policy), DroppedItemDestroy(policy))
	}

	return names
}
