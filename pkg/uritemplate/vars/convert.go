package vars

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// FromMap converts decoded data into a Set. Names are added in sorted order
// since Go maps are unordered. A nil value leaves the name unbound.
func FromMap(data map[string]any) (*Set, error) {
	s := New()
	for _, name := range sortedKeys(data) {
		v, ok, err := convert(name, data[name])
		if err != nil {
			return nil, err
		}
		if ok {
			s.Set(name, v)
		}
	}
	return s, nil
}

// convert returns the template value for raw. ok is false when raw is nil.
func convert(name string, raw any) (v uritemplate.Value, ok bool, err error) {
	if raw == nil {
		return uritemplate.Value{}, false, nil
	}
	if str, isScalar := scalarString(raw); isScalar {
		return uritemplate.StringValue(str), true, nil
	}

	switch val := raw.(type) {
	case uritemplate.Value:
		return val, true, nil
	case []string:
		return uritemplate.ListValue(val...), true, nil
	case []any:
		items := make([]string, 0, len(val))
		for i, item := range val {
			str, isScalar := scalarString(item)
			if !isScalar {
				return v, false, &ValueError{Name: name, Reason: fmt.Sprintf("list item %d is %T, want scalar", i, item)}
			}
			items = append(items, str)
		}
		return uritemplate.ListValue(items...), true, nil
	case []uritemplate.Pair:
		return uritemplate.AssocValue(val...), true, nil
	case map[string]string:
		pairs := make([]uritemplate.Pair, 0, len(val))
		for _, k := range sortedKeys(val) {
			pairs = append(pairs, uritemplate.Pair{Key: k, Value: val[k]})
		}
		return uritemplate.AssocValue(pairs...), true, nil
	case map[string]any:
		pairs := make([]uritemplate.Pair, 0, len(val))
		for _, k := range sortedKeys(val) {
			str, isScalar := scalarString(val[k])
			if !isScalar {
				return v, false, &ValueError{Name: name, Reason: fmt.Sprintf("key %q is %T, want scalar", k, val[k])}
			}
			pairs = append(pairs, uritemplate.Pair{Key: k, Value: str})
		}
		return uritemplate.AssocValue(pairs...), true, nil
	}

	return v, false, &ValueError{Name: name, Reason: fmt.Sprintf("unsupported type %T", raw)}
}

// scalarString renders strings, booleans, and numbers as text.
func scalarString(raw any) (string, bool) {
	switch val := raw.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case json.Number:
		return val.String(), true
	case int:
		return strconv.Itoa(val), true
	case int8:
		return strconv.FormatInt(int64(val), 10), true
	case int16:
		return strconv.FormatInt(int64(val), 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint8:
		return strconv.FormatUint(uint64(val), 10), true
	case uint16:
		return strconv.FormatUint(uint64(val), 10), true
	case uint32:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	}
	return "", false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
