package kvconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 行内容不是合法的 UTF-8，作为 [FileError] 的底层错误返回。
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Load 读取 path 指定的文件并构建文档。
//
// 出错时返回已处理部分构成的文档以及错误，调用方可自行决定是否使用。
func Load(path string, opts ...Option) (Document, error) {
	doc := New()
	if err := doc.LoadFile(path, opts...); err != nil {
		return doc, err
	}

	return doc, nil
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad(path string, opts ...Option) Document {
	doc, err := Load(path, opts...)
	if err != nil {
		panic(fmt.Sprintf("kvconf: failed to load config: %v", err))
	}

	return doc
}

// Parse 从 r 逐行读取并构建文档，出错时同样返回部分文档。
func Parse(r io.Reader, opts ...Option) (Document, error) {
	doc := New()
	if err := doc.LoadReader(r, opts...); err != nil {
		return doc, err
	}

	return doc, nil
}

// LoadFile 将文件内容合并进 d。
//
// 文件无法打开或读取时返回 [FileError]；解析错误会附带文件路径。
// 文件句柄在所有返回路径上都会关闭。
func (d Document) LoadFile(path string, opts ...Option) error {
	o := newOptions(opts)

	f, err := os.Open(path) //nolint:gosec // path is supplied by the caller
	if err != nil {
		return &FileError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	entries, err := d.load(f, path, o)
	if err != nil {
		var fileErr *FileError
		if errors.As(err, &fileErr) {
			return err
		}

		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	o.logger.Debug("Loaded config from file", "path", path, "entries", entries)

	return nil
}

// LoadReader 从 r 逐行读取并合并进 d，行顺序即覆盖顺序。
func (d Document) LoadReader(r io.Reader, opts ...Option) error {
	_, err := d.load(r, "", newOptions(opts))

	return err
}

// load 逐行读取 r，不限制单行长度。行尾的 "\n" 与 "\r\n" 均被去除。
func (d Document) load(r io.Reader, source string, o *options) (int, error) {
	reader := bufio.NewReader(r)

	lineNo := 0
	entries := 0
	for {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return entries, &FileError{Op: "read", Path: source, Err: readErr}
		}
		if text == "" && readErr != nil {
			break
		}

		lineNo++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		if !utf8.ValidString(text) {
			return entries, &FileError{Op: "read", Path: source, Err: fmt.Errorf("line %d: %w", lineNo, ErrInvalidUTF8)}
		}

		added, err := d.loadLine(text, lineNo, source, o)
		if err != nil {
			return entries, err
		}
		if added {
			entries++
		}

		if readErr != nil {
			break
		}
	}

	return entries, nil
}

// loadLine 处理单行，返回是否写入了文档。
func (d Document) loadLine(text string, lineNo int, source string, o *options) (bool, error) {
	key, value, kind := classifyLine(text)
	switch kind {
	case lineSkip:
		return false, nil
	case lineMalformed:
		if o.strict {
			return false, &MalformedLineError{Line: lineNo, Text: text}
		}
		o.logger.Warn("Skipping line without '='", "source", source, "line", lineNo)

		return false, nil
	case lineEntry:
	}

	if err := d.Insert(key, value, o.policy); err != nil {
		var conflict *KeyConflictError
		if errors.As(err, &conflict) {
			conflict.Line = lineNo
		}

		return false, err
	}

	return true, nil
}
