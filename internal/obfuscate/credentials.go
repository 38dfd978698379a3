package obfuscate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// Credentials is a remembered login.
//
// The zero value doubles as "nothing usable was stored": DecodeCredentials
// returns it for every failure, so an actually empty pair and a broken blob
// look the same. Use TryDecodeCredentials when the difference matters.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Available reports whether c carries anything.
func (c Credentials) Available() bool {
	return c.Username != "" || c.Password != ""
}

// EncodeCredentials serializes the pair as a JSON record and obfuscates it.
func (c *Codec) EncodeCredentials(username, password string) string {
	// HTML escaping off and no trailing newline, so the record matches
	// JSON.stringify output.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Credentials{Username: username, Password: password}); err != nil {
		// unreachable for two plain strings
		c.logger.Error(context.Background(), "credentials marshal failed", "error", err)
		return c.Encode("")
	}
	return c.Encode(string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
}

// TryDecodeCredentials reverses EncodeCredentials, distinguishing a blob that
// is not base64 (ErrMalformedBlob) from one whose content is not a
// credentials record (ErrMalformedCredentials).
func (c *Codec) TryDecodeCredentials(blob string) (Credentials, error) {
	plain, err := c.TryDecode(blob)
	if err != nil {
		return Credentials{}, err
	}

	var cr Credentials
	if err := json.Unmarshal([]byte(plain), &cr); err != nil {
		return Credentials{}, errors.Join(ErrMalformedCredentials, err)
	}
	return cr, nil
}

// DecodeCredentials reverses EncodeCredentials; on any failure it returns
// the empty pair.
func (c *Codec) DecodeCredentials(blob string) Credentials {
	cr, err := c.TryDecodeCredentials(blob)
	if err != nil {
		c.logger.Warn(context.Background(), "credentials decode failed", "error", err)
		return Credentials{}
	}
	return cr
}

// EncodeCredentials uses Default.
func EncodeCredentials(username, password string) string {
	return Default.EncodeCredentials(username, password)
}

// DecodeCredentials uses Default.
func DecodeCredentials(blob string) Credentials {
	return Default.DecodeCredentials(blob)
}
