package value

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// FromInterface converts a decoded interface{} tree (as produced by
// encoding/json with UseNumber, gopkg.in/yaml.v3, or pelletier/go-toml/v2)
// into a Value tree. Unsupported Go types are an error: the value model is
// closed over the six document kinds.
func FromInterface(raw interface{}) (*Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return fromNumber(t)
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return Float(float64(t)), nil
		}
		return Int(int64(t)), nil
	case float64:
		return Float(t), nil
	case time.Time:
		// TOML has a native datetime kind; the document model does not.
		return String(t.Format(time.RFC3339Nano)), nil
	case []interface{}:
		elems := make([]*Value, len(t))
		for i, e := range t {
			v, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return Sequence(elems...), nil
	case map[string]interface{}:
		members := make(map[string]*Value, len(t))
		for k, e := range t {
			v, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			members[k] = v
		}
		return Mapping(members), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", raw)
	}
}

// fromNumber keeps the int/float distinction json.Number preserves.
func fromNumber(n json.Number) (*Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q: %w", n.String(), err)
	}
	return Float(f), nil
}
