package slot

import (
	"errors"
	"fmt"
)

// 配置错误类别，可用 errors.Is 判断
var (
	ErrUnknownSlotType      = errors.New("unknown slot type")
	ErrUnknownDropCondition = errors.New("unknown drop condition")
	ErrInvalidSlotKey       = errors.New("invalid slot key")
	ErrMissingField         = errors.New("missing slot field")
)

// ConfigError 槽位配置错误。任何 ConfigError 都会中止整个 tile 的生成。
type ConfigError struct {
	Kind  error
	Slot  string
	Value string
}

func (e *ConfigError) Error() string {
	if e.Slot == "" {
		return fmt.Sprintf("%v %q", e.Kind, e.Value)
	}

	return fmt.Sprintf("slot %s: %v %q", e.Slot, e.Kind, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}
