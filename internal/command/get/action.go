package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command"
	"github.com/lwmacct/251018-go-pkg-kvconf/pkg/kvconf"
)

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("get: exactly one key is required")
	}
	key := cmd.Args().First()

	format, err := command.Format(cmd)
	if err != nil {
		return err
	}

	doc, err := command.LoadDocument(cmd)
	if err != nil {
		return err
	}

	val, ok := doc.Get(key)
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}

	w := cmd.Root().Writer
	if leaf, isLeaf := val.(string); isLeaf {
		_, err = fmt.Fprintln(w, leaf)

		return err
	}

	return kvconf.Encode(w, val, format)
}
