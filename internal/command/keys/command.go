// Package keys 提供列出全部叶子路径的命令。
package keys

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command"
)

// New 返回列出 key 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "keys",
		Usage:  "按字典序列出所有叶子的完整路径",
		Action: action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	doc, err := command.LoadDocument(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	for _, key := range doc.Keys() {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return err
		}
	}

	return nil
}
