// Package nesteggv1 declares the nestegg.v1.NestEggService contract: its
// messages, the service descriptor, a client and the JSON codec the
// messages travel with.
//
// The service has no file descriptor in protoregistry, so server reflection
// lists it by name only and cannot describe its methods or messages. Callers
// use the client in this package.
package nesteggv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype NestEggService messages are sent with
// ("application/grpc+json")
const CodecName = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

// codec marshals plain structs with encoding/json and protobuf messages
// with protojson, so standard services keep working over the same subtype
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (codec) Name() string {
	return CodecName
}
