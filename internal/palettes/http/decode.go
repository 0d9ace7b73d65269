package http

import (
	"bytes"
	"encoding/json"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/domain"
)

// decodeNewPalette reads a create body one field at a time. A field whose
// JSON type does not fit is left zero and named in malformed. An empty body
// decodes as an empty palette; anything that is not a JSON object is an
// error.
func decodeNewPalette(body []byte) (in domain.NewPalette, malformed []string, err error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return in, nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return in, nil, err
	}

	fields := [...]struct {
		name   string
		target any
	}{
		{"project_id", &in.ProjectID},
		{"palette_name", &in.PaletteName},
		{"color_1", &in.Color1},
		{"color_2", &in.Color2},
		{"color_3", &in.Color3},
		{"color_4", &in.Color4},
		{"color_5", &in.Color5},
	}
	for _, f := range fields {
		v, ok := raw[f.name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		if json.Unmarshal(v, f.target) != nil {
			malformed = append(malformed, f.name)
		}
	}
	return in, malformed, nil
}
