package kvconf

import (
	"errors"
	"fmt"
)

// 错误分类，配合 errors.Is 使用。
var (
	// ErrFile 文件无法打开或读取。
	ErrFile = errors.New("kvconf: file error")
	// ErrKeyConflict 路径经过的 key 已经是叶子值。
	ErrKeyConflict = errors.New("kvconf: key conflict")
	// ErrMalformedLine 非空、非注释的行缺少 "="。
	ErrMalformedLine = errors.New("kvconf: malformed line")
)

// FileError 打开或读取配置文件失败。
//
// Err 保留底层错误，因此 errors.Is(err, fs.ErrNotExist) 仍然可用。
type FileError struct {
	Op   string // "open" 或 "read"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) Is(target error) bool { return target == ErrFile }

// KeyConflictError 插入嵌套路径时，中间段已存有字符串值。
type KeyConflictError struct {
	Key     string // 完整 key，例如 a.b
	Segment string // 已存有叶子值的前缀，例如 a
	Line    int    // 所在行号（从 1 开始），0 表示未知
}

func (e *KeyConflictError) Error() string {
	msg := fmt.Sprintf("key %q: %q already holds a value", e.Key, e.Segment)
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}

	return msg
}

func (e *KeyConflictError) Is(target error) bool { return target == ErrKeyConflict }

// MalformedLineError 行中没有 "="，仅在 [WithStrict] 下返回。
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: missing '=' in %q", e.Line, e.Text)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }
