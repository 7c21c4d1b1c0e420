package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// submissionSchema constrains the shape of an assessment body. Value ranges
// are left to the scoring engine, which knows each question's domain.
const submissionSchema = `{
	"type": "object",
	"required": ["answers"],
	"properties": {
		"answers": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question_id", "value"],
				"properties": {
					"question_id": {"type": "string", "minLength": 1},
					"value": {"type": "integer"},
					"raw_answer": {"type": "string"}
				}
			}
		}
	}
}`

var submissionSchemaLoader = gojsonschema.NewStringLoader(submissionSchema)

func validateSubmission(body []byte) error {
	result, err := gojsonschema.Validate(submissionSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("invalid request body: %s", strings.Join(errs, "; "))
	}
	return nil
}
