/*
File    : vivjson/viv/bridge.go

The host value bridge (spec 6.1): the one place VivJson's core touches
host-language types. Grounded on the teacher's convertToGoMix/
convertFromGoMix pair (std/common.go, std/map.go) — a plain type switch,
not a generic encoding — generalized to the seven kinds spec 6.1 allows
(Null, Bool, 64-bit Int, 64-bit Float, String, ordered sequence, String-
keyed mapping) and to the width-widening rule for narrower ints/floats.
Host slice/map element types the concrete switch doesn't special-case
(say, []int or map[string]int) fall through to reflect, the way
Tangerg-lynx's pkg/maps helpers lean on reflect for generic container
traversal; every other package in this module avoids it.
*/
package viv

import (
	"fmt"
	"reflect"

	"github.com/vivjson/vivjson/value"
)

// ToValue classifies a host value into one of VivJson's eight runtime
// kinds, or reports an error for anything outside the seven host-facing
// kinds spec 6.1 allows (Callable has no host representation; it only
// ever appears as a VivJson-internal value).
func ToValue(host interface{}) (value.Value, error) {
	switch v := host.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.NewBool(v), nil
	case value.Value:
		return v, nil
	case string:
		return value.NewString(v), nil
	case int:
		return value.NewInt(int64(v)), nil
	case int8:
		return value.NewInt(int64(v)), nil
	case int16:
		return value.NewInt(int64(v)), nil
	case int32:
		return value.NewInt(int64(v)), nil
	case int64:
		return value.NewInt(v), nil
	case uint:
		return value.NewInt(int64(v)), nil
	case uint8:
		return value.NewInt(int64(v)), nil
	case uint16:
		return value.NewInt(int64(v)), nil
	case uint32:
		return value.NewInt(int64(v)), nil
	case float32:
		return value.NewFloat(float64(v)), nil
	case float64:
		return value.NewFloat(v), nil
	case []interface{}:
		elems := make([]value.Value, len(v))
		for i, e := range v {
			ev, err := ToValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return value.NewArray(elems...), nil
	case map[string]interface{}:
		return mapToBlock(v)
	}
	return reflectToValue(host)
}

func mapToBlock(m map[string]interface{}) (value.Value, error) {
	blk := value.NewBlock()
	for k, v := range m {
		ev, err := ToValue(v)
		if err != nil {
			return nil, err
		}
		blk.Set(k, ev)
	}
	return blk, nil
}

// reflectToValue handles ordered sequences and String-keyed mappings whose
// concrete Go type ToValue's switch does not name directly (a []int, a
// map[string]int, and so on).
func reflectToValue(host interface{}) (value.Value, error) {
	rv := reflect.ValueOf(host)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		elems := make([]value.Value, n)
		for i := 0; i < n; i++ {
			ev, err := ToValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return value.NewArray(elems...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("viv: host mapping has non-string keys (%s); only String-keyed mappings cross the boundary", rv.Type().Key())
		}
		blk := value.NewBlock()
		for _, k := range rv.MapKeys() {
			ev, err := ToValue(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, err
			}
			blk.Set(k.String(), ev)
		}
		return blk, nil
	default:
		return nil, fmt.Errorf("viv: host value of type %T has no VivJson representation", host)
	}
}

// FromValue is ToValue's inverse: it renders a VivJson runtime value back
// into the host's plain interface{} vocabulary (nil, bool, int64, float64,
// string, []interface{}, map[string]interface{}). A Callable has no host
// representation and is rendered as its display string, the same fallback
// the evaluator's own Stringify uses elsewhere.
func FromValue(v value.Value) interface{} {
	switch t := v.(type) {
	case *value.NullValue:
		return nil
	case *value.BoolValue:
		return t.Val
	case *value.IntValue:
		return t.Val
	case *value.FloatValue:
		return t.Val
	case *value.StringValue:
		return t.Val
	case *value.ArrayValue:
		out := make([]interface{}, len(t.Elems))
		for i, e := range t.Elems {
			out[i] = FromValue(e)
		}
		return out
	case *value.BlockValue:
		out := make(map[string]interface{}, t.Len())
		for _, k := range t.Keys() {
			ev, _ := t.Get(k)
			out[k] = FromValue(ev)
		}
		return out
	default:
		return v.String()
	}
}
