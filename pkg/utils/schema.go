package utils

import "github.com/invopop/jsonschema"

// GenerateSchema reflects T into a closed JSON schema: every property required,
// no additional properties, no $ref indirection.
func GenerateSchema[T any]() (interface{}, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema, nil
}
