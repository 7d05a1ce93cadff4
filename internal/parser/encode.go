package parser

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Native converts v into plain Go values: nil, bool, int64, float64,
// string, []any or map[string]any.
func (v Value) Native() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	case KindSequence:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = item.Native()
		}
		return items
	case KindSection:
		return v.Section.Native()
	default:
		return nil
	}
}

// Native converts the mapping into a map of plain Go values.
func (m *Map) Native() map[string]any {
	out := make(map[string]any, m.Len())
	if m == nil {
		return out
	}
	for _, key := range m.keys {
		out[key] = m.values[key].Native()
	}
	return out
}

// MarshalJSON encodes v, keeping section keys in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return strconv.AppendBool(nil, v.Bool), nil
	case KindInt:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case KindFloat:
		return []byte(formatFloat(v.Float)), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindSequence:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindSection:
		return v.Section.MarshalJSON()
	default:
		return []byte("null"), nil
	}
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, key := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			data, err := m.values[key].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes v as a yaml.Node so key order survives encoding.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(), nil
}

// MarshalYAML encodes the mapping as a yaml.Node in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	return m.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	switch v.Kind {
	case KindBool:
		return scalarNode("!!bool", strconv.FormatBool(v.Bool))
	case KindInt:
		return scalarNode("!!int", strconv.FormatInt(v.Int, 10))
	case KindFloat:
		return scalarNode("!!float", formatFloat(v.Float))
	case KindString:
		return scalarNode("!!str", v.Str)
	case KindSequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items {
			node.Content = append(node.Content, item.yamlNode())
		}
		return node
	case KindSection:
		return v.Section.yamlNode()
	default:
		return scalarNode("!!null", "null")
	}
}

func (m *Map) yamlNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node
	}
	for _, key := range m.keys {
		node.Content = append(node.Content,
			scalarNode("!!str", key),
			m.values[key].yamlNode(),
		)
	}
	return node
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// formatFloat renders f so that it always reads back as a float, in JSON
// and in YAML.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
