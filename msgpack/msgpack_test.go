package msgpack

import (
	"testing"

	"github.com/zoobzio/salt"
)

func TestNew(t *testing.T) {
	f := New()
	if f == nil {
		t.Error("New() should return non-nil format")
	}
}

func TestContentType(t *testing.T) {
	f := New()
	if f.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", f.ContentType(), "application/msgpack")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	f := New()

	original, err := salt.Encode("Hello World.", "sha-256")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	rec := salt.Record{Algorithm: salt.SHA256, Value: original}

	data, err := salt.MarshalRecord(f, rec)
	if err != nil {
		t.Fatalf("MarshalRecord() error: %v", err)
	}

	restored, err := salt.UnmarshalRecord(f, data)
	if err != nil {
		t.Fatalf("UnmarshalRecord() error: %v", err)
	}

	if restored != rec {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, rec)
	}

	ok, err := salt.Verify("Hello World.", restored.Value, string(restored.Algorithm))
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !ok {
		t.Error("Verify() = false after round-trip, want true")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	f := New()

	var r salt.Record
	err := f.Unmarshal([]byte("not msgpack"), &r)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
