package salt

import "context"

// Record pairs an encoded value with the algorithm that produced it.
//
// Encoded values do not say which algorithm made them, and the salt boundary
// cannot be found without knowing it. Store a Record (or the same two columns)
// wherever the value is persisted.
type Record struct {
	Algorithm Algorithm `json:"algorithm" xml:"algorithm" yaml:"algorithm" msgpack:"algorithm" bson:"algorithm"`
	Value     string    `json:"value" xml:"value" yaml:"value" msgpack:"value" bson:"value"`
}

// Format provides content-type aware marshaling for records.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Seal encodes plaintext and records the canonical algorithm with it.
func (c *Codec) Seal(plaintext, algorithm string) (Record, error) {
	return c.SealContext(context.Background(), plaintext, algorithm)
}

// SealContext is Seal with ctx passed to emitted signals.
func (c *Codec) SealContext(ctx context.Context, plaintext, algorithm string) (Record, error) {
	encoded, err := c.EncodeContext(ctx, plaintext, algorithm)
	if err != nil {
		return Record{}, err
	}
	algo, _ := ParseAlgorithm(algorithm) // validated by encode
	return Record{Algorithm: algo, Value: encoded}, nil
}

// Open verifies plaintext against a sealed record.
func (c *Codec) Open(plaintext string, r Record) (bool, error) {
	return c.OpenContext(context.Background(), plaintext, r)
}

// OpenContext is Open with ctx passed to emitted signals.
func (c *Codec) OpenContext(ctx context.Context, plaintext string, r Record) (bool, error) {
	return c.VerifyContext(ctx, plaintext, r.Value, string(r.Algorithm))
}

// MarshalRecord encodes r with f.
func MarshalRecord(f Format, r Record) ([]byte, error) {
	data, err := f.Marshal(r)
	if err != nil {
		return nil, newRecordError(ErrMarshal, err)
	}
	return data, nil
}

// UnmarshalRecord decodes a record with f and normalizes its algorithm.
// A record naming an unsupported algorithm fails with ErrUnmarshal.
func UnmarshalRecord(f Format, data []byte) (Record, error) {
	var r Record
	if err := f.Unmarshal(data, &r); err != nil {
		return Record{}, newRecordError(ErrUnmarshal, err)
	}

	algo, err := parseAlgorithm(string(r.Algorithm), "unmarshal")
	if err != nil {
		return Record{}, newRecordError(ErrUnmarshal, err)
	}
	r.Algorithm = algo
	return r, nil
}
