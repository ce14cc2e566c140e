// Package openapi rewrites the property-name casing of OpenAPI 3 schemas.
// When an API adopts a wire convention (say camelCase responses via
// [jsonenc]) its published schema has to follow, and this package applies
// the same key conversion used on payloads to schema property names and
// required lists:
//
//	doc, _ := openapi3.NewLoader().LoadFromFile("api.yaml")
//	openapi.ConvertDoc(doc, keycase.ToCamelCase)
//
// Only property names change; types, formats, descriptions, and everything
// else in the document stay as they are.
package openapi
