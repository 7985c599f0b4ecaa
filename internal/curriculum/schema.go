package curriculum

// contentSchema returns the JSON Schema a content document must satisfy
// before it is decoded. Enum membership for topics, grades and difficulties
// is enforced here so that a bad document fails with a path-annotated error.
func contentSchema() map[string]any {
	topics := make([]any, 0, len(allTopics))
	for _, t := range allTopics {
		topics = append(topics, string(t))
	}
	grades := make([]any, 0, 13)
	for _, g := range AllGrades() {
		grades = append(grades, string(g))
	}
	difficulties := make([]any, 0, 4)
	for _, d := range AllDifficulties() {
		difficulties = append(difficulties, string(d))
	}
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version": map[string]any{
				"type":        "string",
				"description": "Semantic version of the content document, e.g. v1.2.0",
			},
			"grades": map[string]any{
				"type": "object",
				"propertyNames": map[string]any{
					"enum": grades,
				},
				"additionalProperties": map[string]any{
					"type":  "array",
					"items": map[string]any{"enum": topics},
				},
			},
			"lessons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":                map[string]any{"type": "string", "minLength": 1},
						"title":             map[string]any{"type": "string", "minLength": 1},
						"topic":             map[string]any{"enum": topics},
						"grade_level":       map[string]any{"enum": grades},
						"duration_minutes":  map[string]any{"type": "integer", "minimum": 1},
						"objectives":        stringList,
						"content_blocks":    map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
						"practice_problems": stringList,
						"assessment":        map[string]any{"type": "string"},
					},
					"required": []any{"id", "title", "topic", "grade_level", "duration_minutes"},
				},
			},
			"problems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":             map[string]any{"type": "string", "minLength": 1},
						"topic":          map[string]any{"enum": topics},
						"grade_level":    map[string]any{"enum": grades},
						"difficulty":     map[string]any{"enum": difficulties},
						"question":       map[string]any{"type": "string", "minLength": 1},
						"answer":         map[string]any{"type": "string", "minLength": 1},
						"solution_steps": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
						"hints":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
						"explanation":    map[string]any{"type": "string"},
					},
					"required": []any{"id", "topic", "grade_level", "difficulty", "question", "answer", "solution_steps", "hints"},
				},
			},
		},
		"required": []any{"version"},
	}
}
