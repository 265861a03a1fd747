// Package app 组装 kvconf 根命令。
package app

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command"
	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command/get"
	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command/keys"
	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command/show"
)

// Name 应用名称。
const Name = "kvconf"

// Version 构建时通过 -ldflags "-X .../internal/command/app.Version=..." 注入。
var Version = "dev"

// New 返回根命令；不带子命令运行时等同于 show。
func New() *cli.Command {
	return &cli.Command{
		Name:    Name,
		Usage:   "将 key=value 配置文件加载为嵌套文档",
		Version: Version,
		Flags:   command.Flags(),
		Action:  show.Action,
		Commands: []*cli.Command{
			show.New(),
			get.New(),
			keys.New(),
		},
	}
}

// NewLogger 返回写入 w 的文本日志，入口通过 slog.SetDefault 安装。
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}
