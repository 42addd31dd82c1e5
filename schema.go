package etherscan

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Schema describes how a validated result of type T is produced from a raw
// response payload: decode raw JSON (or text) into the wire shape, then
// run post-decode validation. The two phases keep transformation logic
// testable independent of the transport.
type Schema[T any] struct {
	decode func([]byte) (T, error)
	// empty yields the value standing in for the remote "no records"
	// state and reports whether the schema accepts one at all.
	empty func() (T, bool)
	// text marks raw text payloads (CSV exports); no JSON parsing.
	text bool
}

// FieldError is one failed constraint inside a response payload.
type FieldError struct {
	Path   string
	Reason string
}

func (e FieldError) String() string {
	return e.Path + ": " + e.Reason
}

// Validator lets response types add constraints beyond JSON shape; decoded
// values implementing it are checked before the result is returned or
// cached.
type Validator interface {
	Validate() []FieldError
}

// JSONSchema decodes the payload into T directly.
func JSONSchema[T any]() Schema[T] {
	return Schema[T]{
		decode: func(raw []byte) (T, error) {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				var zero T
				return zero, decodeError(err)
			}
			if val, ok := any(v).(Validator); ok {
				if errs := val.Validate(); len(errs) > 0 {
					var zero T
					return zero, fieldValidationError(errs)
				}
			}
			return v, nil
		},
		empty: func() (T, bool) {
			var zero T
			return zero, false
		},
	}
}

// SliceSchema decodes the payload into []E and accepts the remote empty
// state as an empty slice. Element validators run with indexed paths.
func SliceSchema[E any]() Schema[[]E] {
	return Schema[[]E]{
		decode: func(raw []byte) ([]E, error) {
			var vs []E
			if err := json.Unmarshal(raw, &vs); err != nil {
				return nil, decodeError(err)
			}
			var all []FieldError
			for i := range vs {
				if val, ok := any(vs[i]).(Validator); ok {
					for _, fe := range val.Validate() {
						fe.Path = fmt.Sprintf("[%d].%s", i, fe.Path)
						all = append(all, fe)
					}
				}
			}
			if len(all) > 0 {
				return nil, fieldValidationError(all)
			}
			if vs == nil {
				vs = []E{}
			}
			return vs, nil
		},
		empty: func() ([]E, bool) {
			return []E{}, true
		},
	}
}

// StringSchema decodes a JSON string payload.
func StringSchema() Schema[string] {
	return JSONSchema[string]()
}

// BigIntSchema decodes a quoted decimal string into an arbitrary-precision
// integer. Monetary fields must never pass through floating point; a
// malformed numeric string is a validation failure, never a silent zero.
func BigIntSchema() Schema[*big.Int] {
	return Schema[*big.Int]{
		decode: func(raw []byte) (*big.Int, error) {
			var v BigInt
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, decodeError(err)
			}
			return v.Int(), nil
		},
		empty: func() (*big.Int, bool) {
			return nil, false
		},
	}
}

// HexUintSchema decodes a 0x-prefixed hex quantity (proxy endpoints).
func HexUintSchema() Schema[uint64] {
	return Schema[uint64]{
		decode: func(raw []byte) (uint64, error) {
			var v hexutil.Uint64
			if err := json.Unmarshal(raw, &v); err != nil {
				return 0, decodeError(err)
			}
			return uint64(v), nil
		},
		empty: func() (uint64, bool) {
			return 0, false
		},
	}
}

// HexBigSchema decodes a 0x-prefixed hex quantity of arbitrary size.
func HexBigSchema() Schema[*big.Int] {
	return Schema[*big.Int]{
		decode: func(raw []byte) (*big.Int, error) {
			var v hexutil.Big
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, decodeError(err)
			}
			return (*big.Int)(&v), nil
		},
		empty: func() (*big.Int, bool) {
			return nil, false
		},
	}
}

// TextSchema passes the raw body through unparsed (CSV exports).
func TextSchema() Schema[string] {
	return Schema[string]{
		text: true,
		decode: func(raw []byte) (string, error) {
			return string(raw), nil
		},
		empty: func() (string, bool) {
			return "", true
		},
	}
}

// BigInt is a big.Int that unmarshals from the API's quoted decimal
// strings and fails loudly on anything unparsable.
type BigInt big.Int

func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" || s == "null" {
		return fmt.Errorf("empty numeric string")
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("malformed numeric string %q", s)
	}
	*b = BigInt(*i)
	return nil
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	i := big.Int(b)
	return []byte(`"` + i.String() + `"`), nil
}

// Int returns the underlying big.Int.
func (b *BigInt) Int() *big.Int {
	return (*big.Int)(b)
}

func (b *BigInt) String() string {
	return (*big.Int)(b).String()
}

func decodeError(err error) *APIError {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		path := ute.Field
		if path == "" {
			path = "(root)"
		}
		return fieldValidationError([]FieldError{{
			Path:   path,
			Reason: fmt.Sprintf("cannot decode %s into %s", ute.Value, ute.Type),
		}})
	}
	return validationError("schema_validation", "response validation failed: "+sanitizeMessage(err.Error())).withCause(err)
}

func fieldValidationError(errs []FieldError) *APIError {
	parts := make([]string, len(errs))
	for i, fe := range errs {
		parts[i] = fe.String()
	}
	return validationError("schema_validation", "response validation failed: "+strings.Join(parts, "; "))
}
