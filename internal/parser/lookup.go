package parser

import (
	"strconv"
	"strings"
)

// Lookup resolves a dotted path such as "par.input" or "par.files.0".
// A root key that itself contains dots is matched before the path is split.
func (d *Document) Lookup(path string) (Value, bool) {
	if v, ok := d.Get(path); ok {
		return v, true
	}

	parts := strings.Split(path, ".")
	current, ok := d.Get(parts[0])
	if !ok {
		return Value{}, false
	}

	for i := 1; i < len(parts); i++ {
		switch current.Kind {
		case KindSection:
			rest := strings.Join(parts[i:], ".")
			if v, ok := current.Section.Get(rest); ok {
				return v, true
			}
			current, ok = current.Section.Get(parts[i])
			if !ok {
				return Value{}, false
			}
		case KindSequence:
			idx, err := strconv.Atoi(parts[i])
			if err != nil || idx < 0 || idx >= len(current.Items) {
				return Value{}, false
			}
			current = current.Items[idx]
		default:
			return Value{}, false
		}
	}

	return current, true
}

// Walk calls fn for every scalar in document order. Sequence items are
// reported as "key.N"; an empty section is reported as itself.
func (d *Document) Walk(fn func(path string, v Value)) {
	walkMap(&d.Map, "", fn)
}

func walkMap(m *Map, prefix string, fn func(path string, v Value)) {
	for _, key := range m.keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		walkValue(path, m.values[key], fn)
	}
}

func walkValue(path string, v Value, fn func(path string, v Value)) {
	switch v.Kind {
	case KindSection:
		if v.Section.Len() == 0 {
			fn(path, v)
			return
		}
		walkMap(v.Section, path, fn)
	case KindSequence:
		if len(v.Items) == 0 {
			fn(path, v)
			return
		}
		for i, item := range v.Items {
			walkValue(path+"."+strconv.Itoa(i), item, fn)
		}
	default:
		fn(path, v)
	}
}
