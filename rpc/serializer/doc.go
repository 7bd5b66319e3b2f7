// Package serializer provides the envelope codec of the vision controller client.
// It defines a common interface for turning request and response envelopes into
// bytes and back, independent of the transport that carries them.
//
// The package focuses on:
//   - A consistent interface for request/response serialization
//   - Lossless transport of opaque parameter and result values
//   - Strict validation of replies before they reach the engine
//
// Key Components:
//
//   - IRPCSerializer: Core interface that all serializer implementations must satisfy.
//     The client uses EncodeRequest/DecodeResponse, the mock server uses
//     DecodeRequest/EncodeResponse.
//
//   - jsonSerializerImpl: JSON implementation, the format spoken by the vision
//     controller. Numbers are decoded as json.Number so integers beyond 2^53 and
//     decimals survive a round trip unchanged. Strings are never escaped beyond
//     what JSON requires.
//
// Validation:
//
//	DecodeResponse accepts exactly one JSON object that holds either an "error"
//	member ({"code", "description"}) or a "result" member. Presence is what
//	counts, so {"result": null} is a valid empty result. Everything else is
//	reported as an InvalidZMQResponse error.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	s := serializer.NewJSONSerializer()
//	err := s.EncodeRequest(buf, common.NewRequest("Ping", "vcc-1", nil))
//	// ... send buf, receive data ...
//	resp, err := s.DecodeResponse(data)
package serializer
