package chi

import (
	"encoding/json"
	"strconv"
	"strings"
)

/* lenientInt accepts a JSON number or a numeric string
 * Anything else decodes without error and is reported as invalid, so the
 * handler can fall back to a default instead of rejecting the request
 */
type lenientInt struct {
	value int
	set   bool
	valid bool
}

func (n *lenientInt) UnmarshalJSON(data []byte) error {
	n.set = true
	n.valid = false

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if v == float64(int(v)) {
			n.value, n.valid = int(v), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			n.value, n.valid = i, true
		}
	}
	return nil
}

// Or returns the parsed value, or fallback when missing or unparseable.
func (n lenientInt) Or(fallback int) int {
	if n.set && n.valid {
		return n.value
	}
	return fallback
}

// Ptr returns nil unless a usable value was supplied.
func (n lenientInt) Ptr() *int {
	if !n.set || !n.valid {
		return nil
	}
	v := n.value
	return &v
}
