package show

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command"
	"github.com/lwmacct/251018-go-pkg-kvconf/pkg/kvconf"
)

// Action 加载 --input 并按 --format 输出；失败时不输出任何文档。
func Action(_ context.Context, cmd *cli.Command) error {
	format, err := command.Format(cmd)
	if err != nil {
		return err
	}

	doc, err := command.LoadDocument(cmd)
	if err != nil {
		return err
	}

	return kvconf.Encode(cmd.Root().Writer, doc, format)
}
