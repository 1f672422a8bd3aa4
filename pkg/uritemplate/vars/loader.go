package vars

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// FromFile loads bindings from a file, detecting the format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bindings file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// FromYAML parses a YAML mapping into a Set, keeping document order for
// both variables and associative array keys. An empty document yields an
// empty Set.
func FromYAML(data []byte) (*Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	s := New()
	if doc.Kind == 0 {
		return s, nil
	}
	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return s, nil
		}
		root = resolveAlias(root.Content[0])
	}
	if isYAMLNull(root) {
		return s, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse yaml: %w", ErrInvalidDocument)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		v, ok, err := yamlValue(name, resolveAlias(root.Content[i+1]))
		if err != nil {
			return nil, err
		}
		if ok {
			s.Set(name, v)
		}
	}
	return s, nil
}

func yamlValue(name string, node *yaml.Node) (uritemplate.Value, bool, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if isYAMLNull(node) {
			return uritemplate.Value{}, false, nil
		}
		return uritemplate.StringValue(node.Value), true, nil

	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for i, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode || isYAMLNull(item) {
				return uritemplate.Value{}, false, &ValueError{Name: name, Reason: fmt.Sprintf("list item %d is not a scalar", i)}
			}
			items = append(items, item.Value)
		}
		return uritemplate.ListValue(items...), true, nil

	case yaml.MappingNode:
		pairs := make([]uritemplate.Pair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			val := resolveAlias(node.Content[i+1])
			if val.Kind != yaml.ScalarNode || isYAMLNull(val) {
				return uritemplate.Value{}, false, &ValueError{Name: name, Reason: fmt.Sprintf("key %q is not a scalar", key)}
			}
			pairs = append(pairs, uritemplate.Pair{Key: key, Value: val.Value})
		}
		return uritemplate.AssocValue(pairs...), true, nil
	}

	return uritemplate.Value{}, false, &ValueError{Name: name, Reason: "unsupported yaml node"}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// FromJSON parses a JSON object into a Set, keeping document order for both
// variables and associative array keys. Numbers keep their source text.
// Empty or whitespace-only input yields an empty Set.
func FromJSON(data []byte) (*Set, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if tok == nil {
		return New(), nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse json: %w", ErrInvalidDocument)
	}

	s := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		name, _ := keyTok.(string)

		v, ok, err := jsonValue(dec, name)
		if err != nil {
			return nil, err
		}
		if ok {
			s.Set(name, v)
		}
	}

	// Closing brace, then nothing else.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse json: trailing data after object")
	}
	return s, nil
}

func jsonValue(dec *json.Decoder, name string) (uritemplate.Value, bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return uritemplate.Value{}, false, fmt.Errorf("parse json: %w", err)
	}

	switch t := tok.(type) {
	case nil:
		return uritemplate.Value{}, false, nil

	case json.Delim:
		if t == '[' {
			var items []string
			for dec.More() {
				item, err := jsonScalar(dec, name, fmt.Sprintf("list item %d", len(items)))
				if err != nil {
					return uritemplate.Value{}, false, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return uritemplate.Value{}, false, fmt.Errorf("parse json: %w", err)
			}
			return uritemplate.ListValue(items...), true, nil
		}

		var pairs []uritemplate.Pair
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return uritemplate.Value{}, false, fmt.Errorf("parse json: %w", err)
			}
			key, _ := keyTok.(string)
			val, err := jsonScalar(dec, name, fmt.Sprintf("key %q", key))
			if err != nil {
				return uritemplate.Value{}, false, err
			}
			pairs = append(pairs, uritemplate.Pair{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil {
			return uritemplate.Value{}, false, fmt.Errorf("parse json: %w", err)
		}
		return uritemplate.AssocValue(pairs...), true, nil
	}

	str, _ := scalarString(tok)
	return uritemplate.StringValue(str), true, nil
}

// jsonScalar reads one non-null scalar token. what names the position for
// error messages.
func jsonScalar(dec *json.Decoder, name, what string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("parse json: %w", err)
	}
	str, ok := scalarString(tok)
	if !ok {
		return "", &ValueError{Name: name, Reason: what + " is not a scalar"}
	}
	return str, nil
}
