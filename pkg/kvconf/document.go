package kvconf

import (
	"slices"
	"strings"
)

// Document 由点分 key 构建出的嵌套配置文档。
//
// 值只有两种：string（叶子）或 Document（嵌套文档）。
// Document 不是并发安全的，加载期间与加载之后都由调用方独占。
type Document map[string]any

// ConflictPolicy 决定插入路径经过叶子值时的行为。
type ConflictPolicy int

const (
	// ConflictReject 返回 [KeyConflictError]，文档保持不变（默认）。
	ConflictReject ConflictPolicy = iota
	// ConflictOverwrite 用新的空文档替换该叶子值后继续插入。
	ConflictOverwrite
)

func (p ConflictPolicy) String() string {
	switch p {
	case ConflictReject:
		return "reject"
	case ConflictOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// New 返回一个空文档。
func New() Document {
	return Document{}
}

// SplitKey 按 "." 切分 key，空段原样保留（"a..b" → ["a", "", "b"]）。
func SplitKey(key string) []string {
	return strings.Split(key, ".")
}

// Set 以 [ConflictReject] 策略写入叶子值，等价于 Insert(key, value, ConflictReject)。
func (d Document) Set(key, value string) error {
	return d.Insert(key, value, ConflictReject)
}

// Insert 沿点分路径逐级查找或创建嵌套文档，并在末段写入字符串值。
//
// 重复的完整路径后写覆盖先写；末段若原本是嵌套文档，整棵子树被替换。
// 中间段若已是字符串，按 policy 处理，见 [ConflictPolicy]。
func (d Document) Insert(key, value string, policy ConflictPolicy) error {
	parts := SplitKey(key)
	last := len(parts) - 1

	current := d
	for i, part := range parts[:last] {
		existing, ok := current[part]
		if !ok {
			child := Document{}
			current[part] = child
			current = child

			continue
		}

		if child, isDoc := asDocument(existing); isDoc {
			current = child

			continue
		}

		if policy != ConflictOverwrite {
			return &KeyConflictError{Key: key, Segment: strings.Join(parts[:i+1], ".")}
		}
		child := Document{}
		current[part] = child
		current = child
	}

	current[parts[last]] = value

	return nil
}

// Get 返回路径上的值（string 或 Document）。
func (d Document) Get(key string) (any, bool) {
	parts := SplitKey(key)
	current := d
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		child, isDoc := asDocument(val)
		if !isDoc {
			return nil, false
		}
		current = child
	}

	return nil, false
}

// Lookup 返回路径上的叶子值；路径不存在或指向嵌套文档时 ok 为 false。
func (d Document) Lookup(key string) (string, bool) {
	val, ok := d.Get(key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)

	return s, ok
}

// Keys 返回所有叶子的完整路径，按字典序排列。
//
// 空的嵌套文档也作为一个 key 返回。
func (d Document) Keys() []string {
	var keys []string
	flattenKeys(d, nil, &keys)
	slices.Sort(keys)

	return keys
}

// Flatten 将文档还原为 "完整路径 → 叶子值" 的平铺映射。
func (d Document) Flatten() map[string]string {
	out := make(map[string]string)
	flattenValues(d, nil, out)

	return out
}

// Clone 深拷贝文档。
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for key, val := range d {
		if child, ok := asDocument(val); ok {
			out[key] = child.Clone()

			continue
		}
		out[key] = val
	}

	return out
}

// asDocument 兼容调用方手工构造的 map[string]any。
func asDocument(val any) (Document, bool) {
	switch typed := val.(type) {
	case Document:
		return typed, true
	case map[string]any:
		return Document(typed), true
	default:
		return nil, false
	}
}

func flattenKeys(data Document, path []string, keys *[]string) {
	for key, value := range data {
		fullPath := append(slices.Clip(path), key)
		if child, ok := asDocument(value); ok && len(child) > 0 {
			flattenKeys(child, fullPath, keys)

			continue
		}

		*keys = append(*keys, strings.Join(fullPath, "."))
	}
}

func flattenValues(data Document, path []string, out map[string]string) {
	for key, value := range data {
		fullPath := append(slices.Clip(path), key)
		switch typed := value.(type) {
		case string:
			out[strings.Join(fullPath, ".")] = typed
		default:
			if child, ok := asDocument(typed); ok {
				flattenValues(child, fullPath, out)
			}
		}
	}
}
