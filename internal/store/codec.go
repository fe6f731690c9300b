package store

import "encoding/json"

// The backing store is not schema-versioned and may contain hand-edited or
// foreign values, so decoding never fails hard: a value that does not parse
// is treated as if the key were absent.

func encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decode unmarshals raw into v and reports whether the value was usable.
func decode(raw string, v any) bool {
	return json.Unmarshal([]byte(raw), v) == nil
}
