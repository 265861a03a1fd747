// Package config 提供命令行工具的运行配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 环境变量 - KVCONF_ 前缀，见 internal/command 中的 flag 定义
//  3. CLI flags
package config

import (
	"reflect"
	"strings"
)

// Config 命令行配置。
type Config struct {
	Input     string `json:"input" desc:"输入文件路径"`
	Format    string `json:"format" desc:"输出格式 (json|yaml)"`
	Strict    bool   `json:"strict" desc:"遇到缺少 '=' 的行时中止加载"`
	Overwrite bool   `json:"overwrite" desc:"路径经过已有值时以嵌套文档覆盖，而不是报错"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Input:  "example/config.conf",
		Format: "json",
	}
}

// Keys 返回全部配置 key（取 json tag），顺序与字段定义一致。
func Keys() []string {
	typ := reflect.TypeFor[Config]()
	keys := make([]string, 0, typ.NumField())
	for i := range typ.NumField() {
		if key := tagName(typ.Field(i)); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

// Usage 返回 key 对应字段的 desc 标签，用作 CLI flag 的说明。
func Usage(key string) string {
	typ := reflect.TypeFor[Config]()
	for i := range typ.NumField() {
		field := typ.Field(i)
		if tagName(field) == key {
			return field.Tag.Get("desc")
		}
	}

	return ""
}

func tagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}
