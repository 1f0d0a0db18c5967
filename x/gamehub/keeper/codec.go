package keeper

import (
	"encoding/json"

	collcodec "cosmossdk.io/collections/codec"

	"playchain/x/gamehub/types"
)

// jsonValue stores collection values as JSON bytes. The gamehub record
// types are hand-written structs rather than protobuf messages, so the
// codec-backed collection values are not an option.
type jsonValue[T any] struct {
	name string
}

var (
	_ collcodec.ValueCodec[types.Params]        = jsonValue[types.Params]{}
	_ collcodec.ValueCodec[types.PlayerProfile] = jsonValue[types.PlayerProfile]{}
	_ collcodec.ValueCodec[types.GameProgress]  = jsonValue[types.GameProgress]{}
	_ collcodec.ValueCodec[types.Achievement]   = jsonValue[types.Achievement]{}
)

func (jsonValue[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }

func (jsonValue[T]) Decode(bz []byte) (T, error) {
	var value T
	return value, json.Unmarshal(bz, &value)
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }

func (c jsonValue[T]) DecodeJSON(bz []byte) (T, error) { return c.Decode(bz) }

func (jsonValue[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return "<invalid>"
	}
	return string(bz)
}

func (c jsonValue[T]) ValueType() string { return c.name }
