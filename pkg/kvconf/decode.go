package kvconf

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal 将文档解码到 out 指向的结构体，字段名取 json tag。
//
// 文档本身只保存字符串；"8080"、"true"、"30s" 之类的值在这里按目标字段类型转换，
// 转换失败返回错误。
func (d Document) Unmarshal(out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	if err := decoder.Decode(map[string]any(d)); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}
