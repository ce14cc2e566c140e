// Package jsonenc encodes values as JSON with camelCase object keys. It is
// a thin adapter: keys are rewritten by [keycase.CamelKeys] and the result
// is handed to the JSON serializer unchanged, so structs encode exactly as
// their json tags say and serializer errors surface verbatim.
//
//	body, err := jsonenc.Marshal(map[string]any{"user_id": 1})
//	// body == []byte(`{"userId":1}`)
//
// [Encoder] is the streaming variant with identical semantics.
package jsonenc
