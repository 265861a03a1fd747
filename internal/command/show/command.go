// Package show 提供加载并打印完整文档的命令。
package show

import "github.com/urfave/cli/v3"

// New 返回打印命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  "加载配置文件并打印嵌套文档",
		Action: Action,
	}
}
