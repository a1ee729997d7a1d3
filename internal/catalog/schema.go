package catalog

// documentSchema is the JSON schema the embedded catalog file must satisfy.
// Validation runs once at package init; a catalog that fails it is a build
// defect, not a runtime condition.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subjects": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"name":  map[string]any{"type": "string", "minLength": 1},
					"track": map[string]any{"type": "string", "enum": []any{"PAES", "IB"}},
				},
				"required":             []any{"id", "name", "track"},
				"additionalProperties": false,
			},
		},
		"topics": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"subject": map[string]any{"type": "string", "minLength": 1},
					"title":   map[string]any{"type": "string", "minLength": 1},
					"axis":    map[string]any{"type": "string"},
					"level":   map[string]any{"type": "string", "enum": []any{"basico", "medio", "alto"}},
					"learn": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"miniClasses": resourceListSchema,
							"deepClasses": resourceListSchema,
							"altStyles":   resourceListSchema,
						},
						"required":             []any{"miniClasses", "deepClasses", "altStyles"},
						"additionalProperties": false,
					},
					"practice": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"questionIds": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string", "minLength": 1},
							},
						},
						"required":             []any{"questionIds"},
						"additionalProperties": false,
					},
				},
				"required":             []any{"id", "subject", "title", "axis", "level", "learn", "practice"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"subject": map[string]any{"type": "string", "minLength": 1},
					"stem":    map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"answerIndex": map[string]any{"type": "integer", "minimum": 0},
					"explanation": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"commonMistakes": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"id", "subject", "stem", "options", "answerIndex", "explanation"},
				"additionalProperties": false,
			},
		},
		"motivationalMessages": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"vocational": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"careers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string", "minLength": 1},
							"weight": map[string]any{
								"type": "object",
								"additionalProperties": map[string]any{
									"type":    "number",
									"minimum": 0,
									"maximum": 1,
								},
							},
						},
						"required":             []any{"name", "weight"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"careers"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"subjects", "topics", "questions", "motivationalMessages", "vocational"},
	"additionalProperties": false,
}

var resourceListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":   map[string]any{"type": "string", "minLength": 1},
			"minutes": map[string]any{"type": "integer", "minimum": 1},
			"url":     map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"title", "url"},
		"additionalProperties": false,
	},
}
