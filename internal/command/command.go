// Package command 提供 kvconf 各子命令共享的 flag 与加载逻辑。
package command

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251018-go-pkg-kvconf/internal/config"
	"github.com/lwmacct/251018-go-pkg-kvconf/pkg/kvconf"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// Flags 返回根命令的全局 flags，子命令可直接读取。
//
// flag 名称即配置 key，说明取自 config.Config 的 desc 标签。
// 每次调用都返回新的实例，避免多个命令共享 flag 状态。
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Value:   Defaults.Input,
			Usage:   config.Usage("input"),
			Sources: cli.EnvVars("KVCONF_INPUT"),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   Defaults.Format,
			Usage:   config.Usage("format"),
			Sources: cli.EnvVars("KVCONF_FORMAT"),
		},
		&cli.BoolFlag{
			Name:    "strict",
			Value:   Defaults.Strict,
			Usage:   config.Usage("strict"),
			Sources: cli.EnvVars("KVCONF_STRICT"),
		},
		&cli.BoolFlag{
			Name:    "overwrite",
			Value:   Defaults.Overwrite,
			Usage:   config.Usage("overwrite"),
			Sources: cli.EnvVars("KVCONF_OVERWRITE"),
		},
	}
}

// Settings 从 flags 读取运行配置。
//
// flag 值先以字符串写入文档，再解码到 config.Config，与配置文件走同一条解码路径。
func Settings(cmd *cli.Command) (config.Config, error) {
	doc := kvconf.New()
	for _, key := range config.Keys() {
		if err := doc.Set(key, fmt.Sprint(cmd.Value(key))); err != nil {
			return config.Config{}, err
		}
	}

	var cfg config.Config
	if err := doc.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("read flags: %w", err)
	}

	return cfg, nil
}

// Format 解析 --format。
func Format(cmd *cli.Command) (kvconf.Format, error) {
	return kvconf.ParseFormat(cmd.String("format"))
}

// LoadDocument 按 flags 加载输入文件。
func LoadDocument(cmd *cli.Command) (kvconf.Document, error) {
	cfg, err := Settings(cmd)
	if err != nil {
		return nil, err
	}

	var opts []kvconf.Option
	if cfg.Strict {
		opts = append(opts, kvconf.WithStrict())
	}
	if cfg.Overwrite {
		opts = append(opts, kvconf.WithConflictPolicy(kvconf.ConflictOverwrite))
	}

	doc, err := kvconf.Load(cfg.Input, opts...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return doc, nil
}
