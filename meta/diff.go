package meta

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/discantdb/discant/chash"
)

//go:generate go run github.com/discantdb/discant/gen/diffgen -types ArtistMetaData,Release,Song,Event,Tag -out diff_gen.go

// Every diff serializes to the same envelope: which field, what new value.
// The audit log stores these; Decode*Diff turns them back into the typed
// variant.
type diffEnvelope struct {
	Field string              `json:"field"`
	Value jsoniter.RawMessage `json:"value"`
}

func marshalDiff(field string, value any) ([]byte, error) {
	raw, err := jsoniter.Marshal(value)
	if err != nil {
		return nil, err
	}
	return jsoniter.Marshal(diffEnvelope{Field: field, Value: raw})
}

func splitDiff(data []byte) (field string, raw []byte, err error) {
	var env diffEnvelope
	if err = jsoniter.Unmarshal(data, &env); err != nil {
		return "", nil, fmt.Errorf("meta: bad diff envelope: %w", err)
	}
	return env.Field, env.Value, nil
}

// diffProbe is the digest input. Hashing the typed value (not its envelope
// bytes) through chash.Sum keeps the digest independent of encoder quirks;
// the record kind separates identical field/value pairs of different
// record types.
type diffProbe struct {
	Kind  string `json:"kind"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

func diffDigest(kind, field string, value any) chash.Hash128 {
	return chash.Sum(diffProbe{Kind: kind, Field: field, Value: value})
}

func badDiffValue(kind, field string, err error) error {
	return fmt.Errorf("meta: bad %s diff value for field %q: %w", kind, field, err)
}

func badDiffField(kind, field string) error {
	return fmt.Errorf("meta: unknown %s diff field %q", kind, field)
}
