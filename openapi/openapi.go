package openapi

import (
	"github.com/Gobd/keycase"
	"github.com/getkin/kin-openapi/openapi3"
)

// ConvertDoc rewrites property-name casing in place for every component
// schema of doc, including request bodies, responses, and parameters that
// carry inline schemas.
func ConvertDoc(doc *openapi3.T, fn keycase.KeyFunc) {
	if doc == nil {
		return
	}
	seen := map[*openapi3.Schema]bool{}
	if doc.Components != nil {
		for _, ref := range doc.Components.Schemas {
			convertRef(ref, fn, seen)
		}
		for _, body := range doc.Components.RequestBodies {
			convertRequestBody(body, fn, seen)
		}
		for _, resp := range doc.Components.Responses {
			convertResponse(resp, fn, seen)
		}
		for _, param := range doc.Components.Parameters {
			if param != nil && param.Value != nil {
				convertRef(param.Value.Schema, fn, seen)
			}
		}
	}
	if doc.Paths == nil {
		return
	}
	for _, item := range doc.Paths.Map() {
		for _, op := range item.Operations() {
			convertRequestBody(op.RequestBody, fn, seen)
			if op.Responses != nil {
				for _, resp := range op.Responses.Map() {
					convertResponse(resp, fn, seen)
				}
			}
			for _, param := range op.Parameters {
				if param != nil && param.Value != nil {
					convertRef(param.Value.Schema, fn, seen)
				}
			}
		}
	}
}

// ConvertSchema rewrites property-name casing in place for schema and
// everything reachable from it. Cycles between schemas are handled; each
// schema is converted once.
func ConvertSchema(schema *openapi3.Schema, fn keycase.KeyFunc) {
	convertSchema(schema, fn, map[*openapi3.Schema]bool{})
}

func convertRequestBody(body *openapi3.RequestBodyRef, fn keycase.KeyFunc, seen map[*openapi3.Schema]bool) {
	if body == nil || body.Value == nil {
		return
	}
	for _, mt := range body.Value.Content {
		convertRef(mt.Schema, fn, seen)
	}
}

func convertResponse(resp *openapi3.ResponseRef, fn keycase.KeyFunc, seen map[*openapi3.Schema]bool) {
	if resp == nil || resp.Value == nil {
		return
	}
	for _, mt := range resp.Value.Content {
		convertRef(mt.Schema, fn, seen)
	}
}

func convertRef(ref *openapi3.SchemaRef, fn keycase.KeyFunc, seen map[*openapi3.Schema]bool) {
	if ref == nil || ref.Value == nil {
		return
	}
	convertSchema(ref.Value, fn, seen)
}

func convertSchema(s *openapi3.Schema, fn keycase.KeyFunc, seen map[*openapi3.Schema]bool) {
	if s == nil || seen[s] {
		return
	}
	seen[s] = true

	if len(s.Properties) > 0 {
		props := make(openapi3.Schemas, len(s.Properties))
		for name, ref := range s.Properties {
			// Same key discipline as the core: a non-text result leaves
			// the property name alone.
			if conv, ok := fn(name).(string); ok {
				name = conv
			}
			props[name] = ref
			convertRef(ref, fn, seen)
		}
		s.Properties = props
	}
	for i, name := range s.Required {
		if conv, ok := fn(name).(string); ok {
			s.Required[i] = conv
		}
	}

	convertRef(s.Items, fn, seen)
	convertRef(s.Not, fn, seen)
	for _, ref := range s.AllOf {
		convertRef(ref, fn, seen)
	}
	for _, ref := range s.AnyOf {
		convertRef(ref, fn, seen)
	}
	for _, ref := range s.OneOf {
		convertRef(ref, fn, seen)
	}
	if s.AdditionalProperties.Schema != nil {
		convertRef(s.AdditionalProperties.Schema, fn, seen)
	}
}
