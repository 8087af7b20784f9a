package add

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/format"
	"tableflip.dev/dietlog/pkg/logstore"
	"tableflip.dev/dietlog/pkg/printers"
)

// maxImageSize bounds inline meal photos.
const maxImageSize = 5 << 20

type Add struct {
	Service  *app.Service
	Category category.Category
	Fields   format.Fields
	Date     string
	// ImagePath is read and stored inline as a data URL.
	ImagePath string
	ShowID    bool
	Output    string
	Out       io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no journal")
	}
	if n.ImagePath != "" {
		url, err := DataURL(n.ImagePath)
		if err != nil {
			return err
		}
		n.Fields.ImageURL = url
	}

	res, err := n.Service.AddEntry(ctx, n.Category, n.Fields, n.Date)
	if err != nil && !errors.Is(err, logstore.ErrPersistence) {
		return err
	}
	persistErr := err

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Output != "" && n.Output != printers.OutputPretty {
		if err := printers.Structured(out, n.Output, printers.NewAddedView(res)); err != nil {
			return err
		}
		return persistErr
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out, Loc: n.Service.Resolver.Location()}
	pp.Added(res)
	pp.NewLine()
	day, err := n.Service.QueryByDate(n.Date)
	if err != nil {
		return err
	}
	pp.Day(n.Date, day)
	return persistErr
}

// DataURL reads an image file and encodes it as a base64 data URL.
func DataURL(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("image: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("image: %w", err)
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("image: %s is larger than %d bytes", path, maxImageSize)
	}
	mime := http.DetectContentType(data)
	if len(mime) < 6 || mime[:6] != "image/" {
		return "", fmt.Errorf("image: %s is %s, not an image", path, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
