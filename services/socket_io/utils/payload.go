package socketio_utils

import (
	"encoding/json"
	"errors"
)

var (
	ErrMissingPayload = errors.New("missing event payload")
	ErrInvalidPayload = errors.New("invalid event payload")
)

// Decode maps the first socket.io event argument onto a typed payload.
// Events arrive as plain JSON objects, so this is where the schema check
// happens - a payload that does not fit the struct never reaches a handler.
func Decode[T any](args []interface{}) (T, error) {
	var payload T
	if len(args) < 1 {
		return payload, ErrMissingPayload
	}
	raw, err := json.Marshal(args[0])
	if err != nil {
		return payload, ErrInvalidPayload
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, ErrInvalidPayload
	}
	return payload, nil
}
