package kvconf

import "strings"

const commentPrefix = "#"

type lineKind int

const (
	lineSkip lineKind = iota // 空行或注释
	lineMalformed
	lineEntry
)

// ParseLine 解析一行 key=value。
//
// 空行、以 "#" 开头的行以及不含 "=" 的行返回 ok=false。
// 仅按第一个 "=" 切分，key 与 value 两侧空白均被去除；value 原样保留，不处理引号或转义。
func ParseLine(line string) (key, value string, ok bool) {
	key, value, kind := classifyLine(line)

	return key, value, kind == lineEntry
}

func classifyLine(line string) (string, string, lineKind) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return "", "", lineSkip
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", lineMalformed
	}

	return strings.TrimSpace(key), strings.TrimSpace(value), lineEntry
}
