// Package get 提供按点分路径读取单个值的命令。
package get

import "github.com/urfave/cli/v3"

// New 返回读取命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "打印指定路径的值，叶子值原样输出，嵌套文档按 --format 输出",
		ArgsUsage: "<key>",
		Action:    action,
	}
}
