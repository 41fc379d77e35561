package formatting

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueString renders a decoded JSON value for a single table cell. Nested
// objects and arrays are printed as compact JSON, whole numbers without an
// exponent.
func ValueString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case map[string]interface{}, []interface{}:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", val)
	}
}
