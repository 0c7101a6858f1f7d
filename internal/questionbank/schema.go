package questionbank

// bankSchema is the JSON schema a bank file must satisfy before structural
// validation. It covers shape and ranges; cross-references such as duplicate
// IDs are checked by validateQuestions.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"text": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":     map[string]any{"type": "string", "minLength": 1},
								"text":   map[string]any{"type": "string"},
								"weight": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
								"gap_types": map[string]any{
									"type":        "array",
									"items":       map[string]any{"type": "string", "minLength": 1},
									"uniqueItems": true,
								},
							},
							"required":             []any{"id", "text", "weight"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "text", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}
