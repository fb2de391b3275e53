package content

import (
	"encoding/json"
	"strings"
)

// EncodeJsString returns s as a double-quoted JavaScript string literal.
// '<', '>', '&', U+2028 and U+2029 are emitted as \u escapes so the literal
// is safe inside HTML and cannot terminate a script block.
func EncodeJsString(s string) string {
	// Marshalling a string cannot fail.
	b, _ := json.Marshal(s)
	return string(b)
}

// DecodeJsString is the inverse of EncodeJsString.
func DecodeJsString(literal string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(literal), &s); err != nil {
		return "", err
	}
	return s, nil
}

// EncodeJsCall renders a call statement such as `mw.loader.load("...");`.
func EncodeJsCall(name string, args ...string) string {
	encoded := make([]string, len(args))
	for i, arg := range args {
		encoded[i] = EncodeJsString(arg)
	}
	return name + "(" + strings.Join(encoded, ",") + ");"
}
