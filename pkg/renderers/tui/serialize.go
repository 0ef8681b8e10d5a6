package tui

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formgate/pkg/model"
)

// Export converts field values into plain values for serialization: numbers
// become float64 when they parse to a finite value, files become
// {"name", "size"} objects and absent values become nil. NaN and infinities
// keep their text form.
func Export(values map[string]model.FieldValue) map[string]any {
	out := make(map[string]any, len(values))
	for id, value := range values {
		switch value.Kind() {
		case model.ValueAbsent:
			out[id] = nil
		case model.ValueNumber:
			if f, ok := value.Float(); ok && finite(f) {
				out[id] = f
			} else if f, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64); err == nil && finite(f) {
				out[id] = f
			} else {
				out[id] = value.String()
			}
		case model.ValueFile:
			ref, _ := value.FileRef()
			if !ref.Present() {
				out[id] = nil
				continue
			}
			out[id] = map[string]any{"name": ref.Name, "size": ref.Size}
		default:
			out[id] = value.String()
		}
	}
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func serialize(format OutputFormat, values map[string]any) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	flatten("", values, flattened)
	return flattened.Encode()
}

func flatten(prefix string, value any, out url.Values) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			flatten(next, val, out)
		}
	case []any:
		for _, val := range v {
			out.Add(prefix+"[]", fmt.Sprint(val))
		}
	case nil:
		out.Set(prefix, "")
	default:
		out.Set(prefix, fmt.Sprint(v))
	}
}

func prettyPrint(values map[string]any) string {
	var b strings.Builder
	writePretty(&b, "", values)
	return b.String()
}

func writePretty(b *strings.Builder, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			writePretty(b, next, v[key])
		}
	case []any:
		for idx, val := range v {
			writePretty(b, fmt.Sprintf("%s[%d]", prefix, idx), val)
		}
	case nil:
		if prefix != "" {
			fmt.Fprintf(b, "%s=\n", prefix)
		}
	default:
		if prefix != "" {
			fmt.Fprintf(b, "%s=%v\n", prefix, v)
		}
	}
}
