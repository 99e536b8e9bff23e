package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. Events published on the
// MemoryBus carry T (or *T) directly; events read back from the broker or
// the dead-letter file carry raw JSON or a generic map and are re-decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T

	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%s: nil %T", ErrMsgDecodePayload, v)
		}
		return *v, nil
	case json.RawMessage:
		return result, decodeJSON(v, &result)
	case []byte:
		return result, decodeJSON(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return result, decodeJSON(data, &result)
}

func decodeJSON(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return nil
}
