package etherscan

import (
	"fmt"
	"io"
)

// credential holds the API key behind an unexported field so it never
// leaks through printing, formatting or serialization. The only way to
// read it back is reveal(), which the transport calls at URL-build time.
type credential struct {
	value string
}

func newCredential(apiKey string) credential {
	return credential{value: apiKey}
}

func (c credential) reveal() string { return c.value }

func (c credential) String() string { return "[redacted]" }

func (c credential) GoString() string { return "etherscan.credential{[redacted]}" }

// Format intercepts every fmt verb, %#v and %+v included.
func (c credential) Format(f fmt.State, verb rune) {
	io.WriteString(f, "[redacted]")
}

func (c credential) MarshalJSON() ([]byte, error) {
	return []byte(`"[redacted]"`), nil
}
