package execution

import (
	"github.com/wundergraph/astjson"

	"github.com/graphql-core/gqlcore/pkg/operationreport"
)

// OrderedMap preserves response-key insertion order, unlike a Go map (whose
// encoding/json output sorts keys alphabetically) — spec.md §4.8 step 5
// requires the result's `data` map to preserve selection order.
type OrderedMap struct {
	Keys   []string
	Values map[string]any
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{Values: map[string]any{}}
}

// Set appends key (if new) and stores value, overwriting an existing key
// in place without reordering it.
func (m *OrderedMap) Set(key string, value any) {
	if _, exists := m.Values[key]; !exists {
		m.Keys = append(m.Keys, key)
	}
	m.Values[key] = value
}

// MarshalJSON renders the map as an ordered JSON object via
// github.com/wundergraph/astjson's Arena, graphql-go-tools' own ordered-JSON
// value library.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	arena := &astjson.Arena{}
	return buildJSONValue(arena, m).MarshalTo(nil), nil
}

func buildJSONValue(arena *astjson.Arena, value any) *astjson.Value {
	switch v := value.(type) {
	case nil:
		return arena.NewNull()
	case *OrderedMap:
		if v == nil {
			return arena.NewNull()
		}
		obj := arena.NewObject()
		for _, k := range v.Keys {
			obj.Set(k, buildJSONValue(arena, v.Values[k]))
		}
		return obj
	case map[string]any:
		obj := arena.NewObject()
		for k, vv := range v {
			obj.Set(k, buildJSONValue(arena, vv))
		}
		return obj
	case []any:
		arr := arena.NewArray()
		for i, e := range v {
			arr.SetArrayItem(i, buildJSONValue(arena, e))
		}
		return arr
	case string:
		return arena.NewString(v)
	case bool:
		if v {
			return arena.NewTrue()
		}
		return arena.NewFalse()
	case int:
		return arena.NewNumberInt(v)
	case int64:
		return arena.NewNumberInt(int(v))
	case float64:
		return arena.NewNumberFloat64(v)
	case *string:
		if v == nil {
			return arena.NewNull()
		}
		return arena.NewString(*v)
	default:
		return arena.NewNull()
	}
}

// Result is the `{data, errors}` payload of spec.md §4.8 step 5.
type Result struct {
	Data   *OrderedMap                      `json:"data"`
	Errors []operationreport.ExternalError `json:"errors,omitempty"`
}
