package salt

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
// Plaintexts, salts, and digests are never attached to events.
var (
	SignalCodecCreated   = capitan.NewSignal("salt.codec.created", "Codec instantiated")
	SignalEncodeStart    = capitan.NewSignal("salt.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("salt.encode.complete", "Encode operation finished")
	SignalVerifyStart    = capitan.NewSignal("salt.verify.start", "Verify operation beginning")
	SignalVerifyComplete = capitan.NewSignal("salt.verify.complete", "Verify operation finished")
	SignalFieldsComplete = capitan.NewSignal("salt.fields.complete", "Struct field encoding finished")
)

// Keys for typed event data.
var (
	KeyAlgorithm  = capitan.NewStringKey("algorithm")
	KeySaltMin    = capitan.NewIntKey("salt_min")
	KeySaltMax    = capitan.NewIntKey("salt_max")
	KeySaltLength = capitan.NewIntKey("salt_length")
	KeySize       = capitan.NewIntKey("size")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyResult     = capitan.NewStringKey("result")
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeyFieldCount = capitan.NewIntKey("field_count")
	KeyError      = capitan.NewErrorKey("error")
)

// Verification outcomes carried by KeyResult.
const (
	ResultMatch    = "match"
	ResultMismatch = "mismatch"
)

// emitCodecCreated emits an event when a codec is created.
func emitCodecCreated(ctx context.Context, cfg Config) {
	capitan.Emit(ctx, SignalCodecCreated,
		KeySaltMin.Field(cfg.SaltMinLength),
		KeySaltMax.Field(cfg.SaltMaxLength),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, algorithm string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyAlgorithm.Field(algorithm),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, algorithm string, saltLength, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyAlgorithm.Field(algorithm),
		KeySaltLength.Field(saltLength),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitVerifyStart emits an event when verify begins.
func emitVerifyStart(ctx context.Context, algorithm string) {
	capitan.Emit(ctx, SignalVerifyStart,
		KeyAlgorithm.Field(algorithm),
	)
}

// emitVerifyComplete emits an event when verify finishes.
// A mismatch is a successful verification and is not reported as an error.
func emitVerifyComplete(ctx context.Context, algorithm string, size int, duration time.Duration, matched bool, err error) {
	fields := []capitan.Field{
		KeyAlgorithm.Field(algorithm),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalVerifyComplete, fields...)
		return
	}

	result := ResultMismatch
	if matched {
		result = ResultMatch
	}
	fields = append(fields, KeyResult.Field(result))
	capitan.Emit(ctx, SignalVerifyComplete, fields...)
}

// emitFieldsComplete emits an event when struct field encoding finishes.
func emitFieldsComplete(ctx context.Context, typeName string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalFieldsComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalFieldsComplete, fields...)
	}
}
