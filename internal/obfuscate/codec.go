// Package obfuscate hides locally cached secrets from casual inspection.
//
// The transform is a cyclic XOR with a shared, hard-coded key followed by
// standard base64. It is NOT encryption: anyone holding the key, or a few
// samples, can reverse it. It only keeps credentials from sitting in local
// storage as legible text. The key and the transform must stay as they are,
// otherwise blobs written by earlier versions (including the web client)
// stop decoding.
//
// None of the primary functions fail. On bad input they degrade: Encode and
// Decode hand back their input, DecodeCredentials returns the empty pair.
// The Try variants report what went wrong instead.
package obfuscate

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/dmitrijs2005/lechworld/internal/logging"
)

// DefaultKey is the key every stored blob was produced with.
const DefaultKey = "lech-world-secret-key-2024"

var (
	ErrMalformedBlob        = errors.New("malformed obfuscated blob")
	ErrMalformedCredentials = errors.New("malformed credentials record")
	ErrEmptyKey             = errors.New("obfuscation key is empty")
)

// Default is the codec used by the package-level helpers.
var Default = New(DefaultKey)

// Codec is a stateless XOR+base64 transform. It is safe for concurrent use.
type Codec struct {
	key    []byte
	logger logging.Logger
}

type Option func(*Codec)

// WithLogger makes the codec report degraded-mode fallbacks to l.
func WithLogger(l logging.Logger) Option {
	return func(c *Codec) {
		c.logger = l
	}
}

func New(key string, opts ...Option) *Codec {
	c := &Codec{key: []byte(key), logger: logging.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// xor applies the cyclic key to b in place.
func (c *Codec) xor(b []byte) {
	for i := range b {
		b[i] ^= c.key[i%len(c.key)]
	}
}

// TryEncode obfuscates plaintext. The only failure is a codec without a key.
func (c *Codec) TryEncode(plaintext string) (string, error) {
	if len(c.key) == 0 {
		return "", ErrEmptyKey
	}
	b := []byte(plaintext)
	c.xor(b)
	return base64.StdEncoding.EncodeToString(b), nil
}

// Encode obfuscates plaintext, returning it unchanged if that is impossible.
func (c *Codec) Encode(plaintext string) string {
	s, err := c.TryEncode(plaintext)
	if err != nil {
		c.logger.Warn(context.Background(), "encode failed, keeping plaintext", "error", err)
		return plaintext
	}
	return s
}

// TryDecode reverses TryEncode. ASCII whitespace is ignored and missing
// padding is accepted, like the browser's atob.
func (c *Codec) TryDecode(blob string) (string, error) {
	if len(c.key) == 0 {
		return "", ErrEmptyKey
	}
	s := stripSpace(blob)

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil && len(s)%4 != 0 {
		b, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return "", errors.Join(ErrMalformedBlob, err)
	}

	c.xor(b)
	return string(b), nil
}

// Decode reverses Encode, returning blob unchanged when it is not a valid
// encoding.
func (c *Codec) Decode(blob string) string {
	s, err := c.TryDecode(blob)
	if err != nil {
		c.logger.Warn(context.Background(), "decode failed, keeping input", "error", err)
		return blob
	}
	return s
}

func stripSpace(s string) string {
	if !strings.ContainsAny(s, " \t\n\f\r") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// Encode obfuscates plaintext with Default.
func Encode(plaintext string) string {
	return Default.Encode(plaintext)
}

// Decode reverses Encode with Default.
func Decode(blob string) string {
	return Default.Decode(blob)
}
