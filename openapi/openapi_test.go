package openapi_test

import (
	"testing"

	"github.com/Gobd/keycase"
	"github.com/Gobd/keycase/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"street_name": openapi3.NewStringSchema().NewRef(),
			"zip_code":    openapi3.NewStringSchema().NewRef(),
		},
		Required: []string{"street_name"},
	}
}

func TestConvertSchema(t *testing.T) {
	s := &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"user_id": openapi3.NewIntegerSchema().NewRef(),
			"home_address": {
				Value: addressSchema(),
			},
			"addresses": {
				Value: &openapi3.Schema{
					Type:  &openapi3.Types{"array"},
					Items: &openapi3.SchemaRef{Value: addressSchema()},
				},
			},
		},
		Required: []string{"user_id", "home_address"},
	}

	openapi.ConvertSchema(s, keycase.ToCamelCase)

	require.Len(t, s.Properties, 3)
	assert.Contains(t, s.Properties, "userId")
	assert.Contains(t, s.Properties, "homeAddress")
	assert.Contains(t, s.Properties, "addresses")
	assert.Equal(t, []string{"userId", "homeAddress"}, s.Required)

	home := s.Properties["homeAddress"].Value
	assert.Contains(t, home.Properties, "streetName")
	assert.Contains(t, home.Properties, "zipCode")
	assert.Equal(t, []string{"streetName"}, home.Required)

	items := s.Properties["addresses"].Value.Items.Value
	assert.Contains(t, items.Properties, "streetName")
}

func TestConvertSchemaCompositions(t *testing.T) {
	s := &openapi3.Schema{
		AllOf: openapi3.SchemaRefs{{Value: addressSchema()}},
		AnyOf: openapi3.SchemaRefs{{Value: addressSchema()}},
		OneOf: openapi3.SchemaRefs{{Value: addressSchema()}},
		Not:   &openapi3.SchemaRef{Value: addressSchema()},
		AdditionalProperties: openapi3.AdditionalProperties{
			Schema: &openapi3.SchemaRef{Value: addressSchema()},
		},
	}

	openapi.ConvertSchema(s, keycase.ToCamelCase)

	for _, ref := range []*openapi3.SchemaRef{
		s.AllOf[0], s.AnyOf[0], s.OneOf[0], s.Not, s.AdditionalProperties.Schema,
	} {
		assert.Contains(t, ref.Value.Properties, "streetName")
	}
}

// Self-referential schemas must convert once and terminate.
func TestConvertSchemaCycle(t *testing.T) {
	node := &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Properties: openapi3.Schemas{},
	}
	node.Properties["node_value"] = openapi3.NewStringSchema().NewRef()
	node.Properties["child_node"] = &openapi3.SchemaRef{Value: node}

	openapi.ConvertSchema(node, keycase.ToCamelCase)

	assert.Contains(t, node.Properties, "nodeValue")
	assert.Contains(t, node.Properties, "childNode")
	assert.Same(t, node, node.Properties["childNode"].Value)
}

func TestConvertDoc(t *testing.T) {
	user := &openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"first_name": openapi3.NewStringSchema().NewRef(),
		},
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: "users", Version: "1.0"},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"User": &openapi3.SchemaRef{Value: user},
			},
		},
		Paths: openapi3.NewPaths(),
	}
	doc.Paths.Set("/users", &openapi3.PathItem{
		Post: &openapi3.Operation{
			RequestBody: &openapi3.RequestBodyRef{
				Value: &openapi3.RequestBody{
					Content: openapi3.Content{
						"application/json": &openapi3.MediaType{
							Schema: &openapi3.SchemaRef{Value: addressSchema()},
						},
					},
				},
			},
		},
	})

	openapi.ConvertDoc(doc, keycase.ToCamelCase)

	assert.Contains(t, user.Properties, "firstName")
	body := doc.Paths.Value("/users").Post.RequestBody.Value.Content["application/json"].Schema.Value
	assert.Contains(t, body.Properties, "streetName")
}

func TestConvertDocNil(t *testing.T) {
	assert.NotPanics(t, func() {
		openapi.ConvertDoc(nil, keycase.ToCamelCase)
		openapi.ConvertDoc(&openapi3.T{}, keycase.ToCamelCase)
		openapi.ConvertSchema(nil, keycase.ToCamelCase)
	})
}
