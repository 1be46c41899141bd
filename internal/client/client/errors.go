package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/ngoreports/internal/common"
	"github.com/samber/lo"
)

// TransportError describes a request that did not produce a 2xx answer.
type TransportError struct {
	// StatusCode is 0 when no HTTP response was received.
	StatusCode int
	// Message is the server's "error" field, if any.
	Message string
	// Fields holds per-field validation messages from the server.
	Fields map[string][]string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	case len(e.Fields) > 0:
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, strings.ReplaceAll(e.FlattenFields(), "\n", "; "))
	case e.Err != nil:
		return fmt.Sprintf("server returned %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{common.ErrTransport}
	}
	return []error{common.ErrTransport, e.Err}
}

// FlattenFields renders Fields as one "field: msg1, msg2" line per field,
// sorted by field name.
func (e *TransportError) FlattenFields() string {
	keys := lo.Keys(e.Fields)
	slices.Sort(keys)
	lines := lo.Map(keys, func(k string, _ int) string {
		return k + ": " + strings.Join(e.Fields[k], ", ")
	})
	return strings.Join(lines, "\n")
}

// newStatusError builds a TransportError from a non-2xx response body.
// The body is expected to be a JSON object; its "error" entry becomes
// Message and every other entry whose value is a string or a list of strings
// becomes a field message. Other shapes are kept as their raw JSON text.
func newStatusError(status int, body []byte) *TransportError {
	te := &TransportError{StatusCode: status}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		var s string
		if json.Unmarshal(body, &s) == nil {
			te.Message = s
		}
		return te
	}

	for key, raw := range obj {
		if key == "error" {
			var s string
			if json.Unmarshal(raw, &s) == nil {
				te.Message = s
				continue
			}
		}
		if te.Fields == nil {
			te.Fields = make(map[string][]string)
		}
		te.Fields[key] = fieldMessages(raw)
	}
	return te
}

func fieldMessages(raw json.RawMessage) []string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return []string{s}
	}
	var list []any
	if json.Unmarshal(raw, &list) == nil {
		return lo.Map(list, func(v any, _ int) string {
			if s, ok := v.(string); ok {
				return s
			}
			b, _ := json.Marshal(v)
			return string(b)
		})
	}
	return []string{string(raw)}
}

// UserMessage picks the human-readable text for err.
//
// Validation errors yield their own message. Transport errors yield the
// server's error field, else the flattened field errors, else serverFallback;
// when no response was received at all, networkFallback is used.
func UserMessage(err error, serverFallback, networkFallback string) string {
	if err == nil {
		return ""
	}

	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	var te *TransportError
	if errors.As(err, &te) {
		switch {
		case te.StatusCode == 0:
			return networkFallback
		case te.Message != "":
			return te.Message
		case len(te.Fields) > 0:
			return te.FlattenFields()
		default:
			return serverFallback
		}
	}

	return serverFallback
}
