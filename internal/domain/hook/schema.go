package hook

import "github.com/invopop/jsonschema"

// GenerateSchema reflects T into a self-contained JSON Schema. Used to
// document and validate the payloads exchanged with the agent runtime.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
