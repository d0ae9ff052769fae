package baseline

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// Decode reads a baseline collection from JSON and validates it.
func Decode(r io.Reader) (Collection, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Collection{}, errors.Wrap(err, "read baseline payload")
	}
	return FromJSON(raw)
}

// FromJSON parses a baseline collection from raw JSON and validates it.
func FromJSON(raw []byte) (Collection, error) {
	var c Collection
	if err := sonic.Unmarshal(raw, &c); err != nil {
		return Collection{}, errors.Wrap(err, "decode baseline collection")
	}
	if err := c.Validate(); err != nil {
		return Collection{}, errors.Wrap(err, "validate baseline collection")
	}
	return c, nil
}

// ToJSON serializes a collection for storage.
func ToJSON(c Collection) ([]byte, error) {
	raw, err := sonic.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode baseline collection")
	}
	return raw, nil
}
