package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec: the most portable option for
// design files meant to be read by other tools.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used for newly written design files. Existing files
// are self-describing and are opened with the codec named in their header,
// so changing the default never breaks old files.
var Default Codec = GoJSON{}
