package formats

import (
	"encoding/json"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

func init() {
	core.Register(jsonSerializer{})
}

// jsonSerializer writes an indented JSON array of ordered objects.
type jsonSerializer struct{}

func (jsonSerializer) Format() core.Format { return core.FormatJSON }

func (jsonSerializer) Serialize(in core.SerializeInput) ([]byte, error) {
	records := in.Records
	if records == nil {
		records = []core.Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}
