// Package model 定义 tile 配置文档的数据模型，并负责解析与校验。
package model

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	yaml "go.yaml.in/yaml/v3"
)

// setblock 策略
const (
	SetblockDestroy = "destroy"
	SetblockKeep    = "keep"
)

// Entity 容器方块与展示物品
type Entity struct {
	Block Item `yaml:"block"`
	Item  Item `yaml:"item"`
}

// Tile tile 配置文档
type Tile struct {
	ID          string  `yaml:"id" validate:"required"`
	Entity      Entity  `yaml:"entity"`
	SpawnEgg    *Item   `yaml:"spawn_egg"`
	DroppedItem *Item   `yaml:"dropped_item" validate:"required_without=SpawnEgg"`
	Slot        SlotMap `yaml:"slot" validate:"dive"`
	Tick        string  `yaml:"tick"`
	Setblock    string  `yaml:"setblock" validate:"oneof=destroy keep"`
	Load        *string `yaml:"load"`
	Destroy     *string `yaml:"destroy"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 错误信息中使用 yaml 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Parse 解析并校验 tile 配置文档
func Parse(data []byte) (*Tile, error) {
	var t Tile
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode tile config: %w", err)
	}

	if t.Setblock == "" {
		t.Setblock = SetblockDestroy
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// LoadFile 读取并解析 tile 配置文件
func LoadFile(path string) (*Tile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tile config: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Validate 校验必填字段与取值范围
func (t *Tile) Validate() error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate tile config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, t.describe(e))
	}

	return fmt.Errorf("invalid tile config: %s", strings.Join(msgs, "; "))
}

// describe 将校验错误转换为面向配置文件的描述，槽位字段以槽位键标注。
func (t *Tile) describe(e validator.FieldError) string {
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	field = t.slotField(field)

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_without":
		return field + " is required when spawn_egg is absent"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, e.Tag())
	}
}

// slotField 将 slot[0].Spec.item.id 改写为 slot "<key>": item.id
func (t *Tile) slotField(field string) string {
	rest, ok := strings.CutPrefix(field, "slot[")
	if !ok {
		return field
	}
	index, tail, ok := strings.Cut(rest, "]")
	if !ok {
		return field
	}
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(t.Slot) {
		return field
	}
	tail = strings.TrimPrefix(tail, ".")
	tail = strings.TrimPrefix(tail, "Spec.")

	return fmt.Sprintf("slot %q: %s", t.Slot[i].Key, tail)
}
