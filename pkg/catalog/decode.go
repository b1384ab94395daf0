package catalog

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Decode parses a catalog document. The format is picked by the file
// extension of name: .json, .yaml, .yml or .toml.
func Decode(name string, data []byte) (map[string]string, error) {
	var doc map[string]any

	var err error
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrInvalidFile, name, err)
	}

	out := make(map[string]string)
	if err := flatten(out, doc, ""); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFile, name, err)
	}
	return out, nil
}

// IsSupported reports whether Decode understands the file extension.
func IsSupported(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// Flatten turns a nested document into dot separated ids.
func Flatten(doc map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	if err := flatten(out, doc, ""); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(out map[string]string, doc map[string]any, prefix string) error {
	for key, value := range doc {
		id := key
		if prefix != "" {
			id = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[id] = v
		case map[string]any:
			if err := flatten(out, v, id); err != nil {
				return err
			}
		case map[string]string:
			for k, s := range v {
				out[id+"."+k] = s
			}
		case bool:
			out[id] = strconv.FormatBool(v)
		case int, int64, float64:
			out[id] = fmt.Sprint(v)
		case nil:
			out[id] = ""
		default:
			return fmt.Errorf("unsupported value of type %T at %q", value, id)
		}
	}
	return nil
}

// prefixed returns msgs with every id prefixed by namespace.
func prefixed(namespace string, msgs map[string]string) map[string]string {
	if namespace == "" {
		return msgs
	}
	out := make(map[string]string, len(msgs))
	for id, msg := range msgs {
		out[namespace+"."+id] = msg
	}
	return out
}
