package categories

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/printers"
)

type Categories struct {
	Service *app.Service
	Date    string
	// Category, when set, lists that category's options instead.
	Category category.Category
	Out      io.Writer
}

func (n *Categories) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Out: n.Out}
	if n.Category != "" {
		switch info := n.Category.Info(); {
		case n.Category == category.Supplements:
			pp.Title("Common supplements")
			for _, s := range category.CommonSupplements {
				pp.Line("  " + s)
			}
			pp.NewLine()
		case len(info.Options) > 0:
			pp.Options(n.Category)
		default:
			pp.Title(info.Label + " takes " + info.Kind.String() + " input")
		}
		return nil
	}

	if n.Service == nil {
		return errors.New("can not list categories, no journal")
	}
	counts, err := n.Service.Categories(n.Date)
	if err != nil {
		return err
	}
	pp.Categories(n.Date, counts)
	return nil
}
