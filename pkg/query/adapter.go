package query

import (
	"encoding/json"
)

// Query type discriminators accepted on the wire.
const (
	TypeForward = "retrieve_fact"
	TypeReverse = "retrieve_fact_reverse"
)

// Error strings returned in error responses. These are part of the wire
// contract and match the original service byte for byte.
const (
	ErrInvalidJSON       = "Invalid JSON input."
	ErrForwardFieldsReqd = "For a forward query, 'subject' and 'relation' are required."
	ErrReverseFieldsReqd = "For a reverse query, 'object' and 'relation' are required."
	ErrUnsupportedType   = "Unsupported queryType provided."
)

// Request is a structured fact query. QueryType selects the direction;
// forward queries use Subject, reverse queries use Object.
type Request struct {
	QueryType string `json:"queryType"`
	Subject   string `json:"subject,omitempty"`
	Object    string `json:"object,omitempty"`
	Relation  string `json:"relation,omitempty"`
}

// Response carries the matched objects (forward) or subjects (reverse).
// A query with no matches is a success with an empty list.
type Response struct {
	Response []string `json:"response"`
}

// ErrorResponse reports a request-level failure. Details carries the
// decoder message for malformed input and is omitted otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// FactReader is the read side of the fact store consumed by the adapter.
type FactReader interface {
	QueryForward(subject, relation string) []string
	QueryReverse(object, relation string) []string
}

// Adapter translates structured query requests into store calls and
// store results into structured responses. Every failure mode becomes
// an ErrorResponse; nothing here is fatal to the process.
type Adapter struct {
	store FactReader
}

// NewAdapter creates an adapter over the given store.
func NewAdapter(store FactReader) *Adapter {
	return &Adapter{store: store}
}

// Forward runs a forward query. Returns an ErrorResponse when subject
// or relation is missing, a Response otherwise.
func (a *Adapter) Forward(subject, relation string) (*Response, *ErrorResponse) {
	if subject == "" || relation == "" {
		return nil, &ErrorResponse{Error: ErrForwardFieldsReqd}
	}
	return &Response{Response: a.store.QueryForward(subject, relation)}, nil
}

// Reverse runs a reverse query. Returns an ErrorResponse when object
// or relation is missing, a Response otherwise.
func (a *Adapter) Reverse(object, relation string) (*Response, *ErrorResponse) {
	if object == "" || relation == "" {
		return nil, &ErrorResponse{Error: ErrReverseFieldsReqd}
	}
	return &Response{Response: a.store.QueryReverse(object, relation)}, nil
}

// Process dispatches a decoded request to the store.
func (a *Adapter) Process(req Request) (*Response, *ErrorResponse) {
	switch req.QueryType {
	case TypeForward:
		return a.Forward(req.Subject, req.Relation)
	case TypeReverse:
		return a.Reverse(req.Object, req.Relation)
	default:
		return nil, &ErrorResponse{Error: ErrUnsupportedType}
	}
}

// ProcessJSON decodes a raw JSON query and returns the JSON-encoded
// result document. The output is always well-formed JSON: either a
// Response or an ErrorResponse.
func (a *Adapter) ProcessJSON(raw []byte) []byte {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return mustMarshal(ErrorResponse{Error: ErrInvalidJSON, Details: err.Error()})
	}

	resp, errResp := a.Process(req)
	if errResp != nil {
		return mustMarshal(errResp)
	}
	return mustMarshal(resp)
}

// mustMarshal encodes v, which is one of the response structs above and
// cannot fail to marshal.
func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
