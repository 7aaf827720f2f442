// Package payload builds JSON request bodies for the CLI from inline
// documents, files, stdin and key=value assignments. YAML is accepted
// everywhere JSON is, since every JSON document is also valid YAML.
package payload

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/dhartisetu/setu/pkg/errors"
)

// Parse decodes one --data argument into an object.
//
//	"-"          reads the document from stdin
//	"@path"      reads the document from a file
//	anything else is the document itself
//
// An empty argument yields an empty object.
func Parse(arg string, stdin io.Reader) (map[string]any, error) {
	var (
		data   []byte
		source = "--data"
		err    error
	)

	switch {
	case strings.TrimSpace(arg) == "":
		return map[string]any{}, nil
	case arg == "-":
		source = "stdin"
		if stdin == nil {
			return nil, errors.NewValidationError("data", arg, "stdin is not available")
		}
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, errors.WrapIO("read", source, err)
		}
	case strings.HasPrefix(arg, "@"):
		source = arg[1:]
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, errors.WrapIO("read", source, err)
		}
	default:
		data = []byte(arg)
	}

	return Decode(data, source)
}

// Decode parses a JSON or YAML document that must be an object.
func Decode(data []byte, source string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, errors.WrapParse("yaml", source, err)
	}
	obj, ok := normalize(out).(map[string]any)
	if !ok {
		return nil, errors.NewValidationError("data", source, "payload must be an object")
	}
	return obj, nil
}

// Apply sets key=value assignments on obj. Values are parsed as YAML
// scalars, so "2.5" is a number and "true" a boolean; dotted keys address
// nested objects.
func Apply(obj map[string]any, assignments []string) error {
	for _, a := range assignments {
		key, raw, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return errors.NewValidationError("set", a, "expected key=value")
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
			value = raw
		}
		setPath(obj, strings.Split(key, "."), normalize(value))
	}
	return nil
}

func setPath(obj map[string]any, path []string, value any) {
	for _, p := range path[:len(path)-1] {
		next, ok := obj[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			obj[p] = next
		}
		obj = next
	}
	obj[path[len(path)-1]] = value
}

// normalize converts YAML decoder output into JSON-compatible values.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[toKey(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return val
	}
}

func toKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	b, err := yaml.Marshal(k)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
