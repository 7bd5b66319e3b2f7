package serializer

import (
	"io"

	"github.com/ValentinKolb/vcc/rpc/common"
)

// IRPCSerializer is the interface for all envelope serializers.
// The client uses EncodeRequest/DecodeResponse, the mock server the other two
type IRPCSerializer interface {
	// Name returns the name of the format (e.g. "json")
	Name() string
	// EncodeRequest writes the serialized request to w.
	// It must not have any side effects besides writing to w
	EncodeRequest(w io.Writer, req common.RequestEnvelope) error
	// DecodeRequest parses a serialized request
	DecodeRequest(b []byte) (*common.RequestEnvelope, error)
	// EncodeResponse serializes a response, exactly one of error or result is written
	EncodeResponse(resp common.ResponseEnvelope) ([]byte, error)
	// DecodeResponse parses a serialized response. It returns an InvalidZMQResponse
	// error if b is not well-formed or does not hold exactly one of error or result
	DecodeResponse(b []byte) (*common.ResponseEnvelope, error)
}
