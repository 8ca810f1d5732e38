package formats

import (
	"strings"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

func init() {
	core.Register(csvSerializer{})
}

// csvSerializer writes projected records as delimited text.
// Columns follow the field selection; the header row is optional.
type csvSerializer struct{}

func (csvSerializer) Format() core.Format { return core.FormatCSV }

func (csvSerializer) Serialize(in core.SerializeInput) ([]byte, error) {
	lines := make([]string, 0, len(in.Records)+1)
	if in.ShowHeaders {
		lines = append(lines, core.JoinCSVRow(in.Fields, in.Delimiter))
	}

	cells := make([]string, len(in.Fields))
	for _, rec := range in.Records {
		for i, f := range in.Fields {
			v, ok := rec.Get(f)
			if !ok {
				v = core.NotAvailable
			}
			cells[i] = core.StringifyForCSV(v)
		}
		lines = append(lines, core.JoinCSVRow(cells, in.Delimiter))
	}

	return []byte(strings.Join(lines, "\n")), nil
}
