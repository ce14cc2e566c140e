// Package keycase converts map and list key naming conventions between
// camelCase and snake_case, recursively, at JSON serialization boundaries.
//
// [CamelKeys] and [SnakeKeys] rewrite every convertible key in a nested
// value while leaving the structure, the values, and any opaque record
// types (dates, upload descriptors, domain structs) untouched:
//
//	in := map[string]any{
//	    "user_id":   1,
//	    "addresses": []any{map[string]any{"street_name": "Main St"}},
//	}
//	out := keycase.CamelKeys(in)
//	// map[string]any{"userId": 1, "addresses": []any{map[string]any{"streetName": "Main St"}}}
//
// [ConvertKeys] accepts any key rewriting function for custom conventions.
//
// Sub-packages:
//   - jsonenc – JSON encoding with camelCase keys, for response bodies
//   - middleware – net/http middleware that snake_cases inbound request parameters
//   - openapi – key-case conversion for OpenAPI 3 schemas
package keycase
