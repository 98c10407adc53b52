package slot

import (
	"strconv"
	"strings"
)

// ExpandKey 展开槽位键。
//
// 键按逗号拆分，每一段是单个槽位或 a..b 闭区间：
//
//	"3"        → [3]
//	"3..5"     → [3 4 5]
//	"0,7..8"   → [0 7 8]
func ExpandKey(key string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(key, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, &ConfigError{Kind: ErrInvalidSlotKey, Value: key}
		}

		from, to, isRange := strings.Cut(part, "..")
		if !isRange {
			out = append(out, part)
			continue
		}

		lo, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, &ConfigError{Kind: ErrInvalidSlotKey, Value: key}
		}
		hi, err := strconv.Atoi(strings.TrimSpace(to))
		if err != nil || hi < lo {
			return nil, &ConfigError{Kind: ErrInvalidSlotKey, Value: key}
		}

		for i := lo; i <= hi; i++ {
			out = append(out, strconv.Itoa(i))
		}
	}

	return out, nil
}
