package tile

import "fmt"

// 全局输出路径 (相对数据包根目录)
const (
	LabelRegistry            = "data/eg/tags/items/label.json"
	SearchItemFrameRegistry  = "data/eg/tags/functions/search/item_frame.json"
	SearchAreaEffectRegistry = "data/eg/tags/functions/search/area_effect_cloud.json"
	SearchItemRegistry       = "data/eg/tags/functions/search/item.json"
	MinecraftTickRegistry    = "data/minecraft/tags/functions/tick.json"
	MinecraftLoadRegistry    = "data/minecraft/tags/functions/load.json"
	GameTickFunction         = "data/eg/functions/tick.mcfunction"
	GameLoadFunction         = "data/eg/functions/load.mcfunction"
	PackMeta                 = "pack.mcmeta"
	gameTickFunctionID       = "eg:tick"
	gameLoadFunctionID       = "eg:load"
	functionDirFormat        = "data/eg/functions/tile/%s"
	functionIDFormat         = "eg:tile/%s"
	lootTableFormat          = "data/eg/loot_tables/%s.json"
	slotHandlerFormat        = "slot/%s/eh.mcfunction"
)

// FunctionPath 返回 tile 函数文件路径，如 FunctionPath("chest1", "tick") →
// data/eg/functions/tile/chest1/tick.mcfunction
func FunctionPath(tileID, name string) string {
	return fmt.Sprintf(functionDirFormat, tileID) + "/" + name + ".mcfunction"
}

// FunctionID 返回 tile 函数的资源 ID，如 eg:tile/chest1/search/item
func FunctionID(tileID, name string) string {
	return fmt.Sprintf(functionIDFormat, tileID) + "/" + name
}

// SlotHandlerPath 返回槽位事件处理脚本路径
func SlotHandlerPath(tileID, slot string) string {
	return fmt.Sprintf(functionDirFormat, tileID) + "/" + fmt.Sprintf(slotHandlerFormat, slot)
}

// LootTablePath 返回 tile 战利品表路径
func LootTablePath(tileID string) string {
	return fmt.Sprintf(lootTableFormat, tileID)
}
