package serializer

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/cockroachdb/errors"
)

// NewJSONSerializer creates a new serializer using json encoding.
// Numbers are decoded as json.Number so they round-trip without coercion
func NewJSONSerializer() IRPCSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IRPCSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Name() string {
	return "json"
}

func (j jsonSerializerImpl) EncodeRequest(w io.Writer, req common.RequestEnvelope) error {
	if req.Parameters == nil {
		req.Parameters = map[string]any{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return common.NewClientError(common.ErrCodeInvalidArgument, err, "failed to encode command %s", req.Command)
	}
	return nil
}

func (j jsonSerializerImpl) DecodeRequest(b []byte) (*common.RequestEnvelope, error) {
	req := &common.RequestEnvelope{}
	if err := decodeStrict(b, req); err != nil {
		return nil, common.NewClientError(common.ErrCodeInvalidArgument, err, "malformed request")
	}
	if req.Command == "" {
		return nil, common.NewClientError(common.ErrCodeInvalidArgument, nil, "request has no command")
	}
	return req, nil
}

func (j jsonSerializerImpl) EncodeResponse(resp common.ResponseEnvelope) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	var err error
	if resp.Error != nil {
		err = enc.Encode(struct {
			Error *common.RemoteError `json:"error"`
		}{resp.Error})
	} else {
		err = enc.Encode(struct {
			Result any `json:"result"`
		}{resp.Result})
	}
	if err != nil {
		return nil, common.NewClientError(common.ErrCodeFailed, err, "failed to encode response")
	}
	return buf.Bytes(), nil
}

func (j jsonSerializerImpl) DecodeResponse(b []byte) (*common.ResponseEnvelope, error) {
	invalid := func(cause error, format string, args ...interface{}) (*common.ResponseEnvelope, error) {
		return nil, common.NewClientError(common.ErrCodeInvalidZMQResponse, cause, format, args...)
	}

	// the top level must be an object, its members are decoded separately
	var top map[string]json.RawMessage
	if err := decodeStrict(b, &top); err != nil {
		return invalid(err, "response is not well-formed json")
	}
	if top == nil {
		return invalid(nil, "response is null")
	}

	rawErr, hasErr := top["error"]
	rawResult, hasResult := top["result"]
	switch {
	case hasErr && hasResult:
		return invalid(nil, "response holds both error and result")
	case !hasErr && !hasResult:
		return invalid(nil, "response holds neither error nor result")
	}

	resp := &common.ResponseEnvelope{}
	if hasErr {
		remote, err := decodeRemoteError(rawErr)
		if err != nil {
			return invalid(err, "malformed error in response")
		}
		resp.Error = remote
		return resp, nil
	}

	if err := decodeStrict(rawResult, &resp.Result); err != nil {
		return invalid(err, "malformed result in response")
	}
	return resp, nil
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// decodeStrict decodes exactly one json value from b into v, keeping numbers as json.Number
func decodeStrict(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// anything but whitespace after the value is an error
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return errors.Newf("unexpected data after json value")
	}
	return nil
}

// decodeRemoteError parses the error member of a response.
// The code may be sent as string or number, the description must be a string
func decodeRemoteError(raw json.RawMessage) (*common.RemoteError, error) {
	var fields struct {
		Code        json.RawMessage `json:"code"`
		Description *string         `json:"description"`
	}
	if err := decodeStrict(raw, &fields); err != nil {
		return nil, err
	}
	if fields.Description == nil {
		return nil, errors.Newf("error has no description: %s", raw)
	}

	remote := &common.RemoteError{Description: *fields.Description}
	if len(fields.Code) > 0 && string(fields.Code) != "null" {
		var code string
		if err := json.Unmarshal(fields.Code, &code); err != nil {
			// not a string, keep the literal (e.g. a number)
			code = string(fields.Code)
		}
		remote.Code = code
	}
	return remote, nil
}
