package mise

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// decodeLoose decodes arbitrary JSON keeping numbers as text, so a version
// such as 3.10 is not rounded to 3.1
func decodeLoose(data string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// decodeStrict decodes into a typed value
func decodeStrict(data string, target interface{}) error {
	return json.NewDecoder(bytes.NewReader([]byte(data))).Decode(target)
}

// stringField returns obj[key] if it is a non-empty string
func stringField(obj map[string]interface{}, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

// firstString returns the first key holding a non-empty string
func firstString(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s := stringField(obj, key); s != "" {
			return s
		}
	}
	return ""
}

// sourcePath extracts obj.source.path
func sourcePath(obj map[string]interface{}) string {
	source, ok := obj["source"].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringField(source, "path")
}

// stringify renders a scalar the way it would print in a shell
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// truthy mirrors JSON truthiness: false, 0, "" and null are false
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// objects keeps only the object elements of a JSON array
func objects(items []interface{}) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			result = append(result, obj)
		}
	}
	return result
}
