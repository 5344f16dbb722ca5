package session

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// storeSchema describes the persisted store document: a mapping from session
// id to its transcript and creation timestamp. A document that fails this
// check is treated like corrupt JSON and replaced by an empty store.
const storeSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["messages", "created"],
    "properties": {
      "messages": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["role", "content"],
          "properties": {
            "role": {"type": "string"},
            "content": {"type": "string"},
            "time": {"type": "string"}
          }
        }
      },
      "created": {"type": "string"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(storeSchema)

// validateDocument checks raw store bytes against the store schema.
func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var errMsg string
		for i, verr := range result.Errors() {
			if i > 0 {
				errMsg += "; "
			}
			errMsg += verr.String()
		}
		return fmt.Errorf("store document invalid: %s", errMsg)
	}

	return nil
}
