package hub

import (
	"encoding/json"
	"strconv"
)

// Mutation is the decoded form of one inbound client message. Either, both,
// or neither descriptor may be present; an empty mutation is valid.
type Mutation struct {
	Project *ProjectUpsert
	Note    *NoteCreate
}

// ProjectUpsert asks for a project to be created or recolored.
type ProjectUpsert struct {
	Name  string
	Color string
}

// NoteCreate asks for a new note, referencing its project by name.
type NoteCreate struct {
	Title        string
	Content      string
	ProjectName  string
	ProjectColor string
}

// DecodeMutation parses a raw client frame. Clients send
// {"new_project": {...}, "new_note": {...}} with both keys optional and any
// unrecognized keys ignored. Frames that are not JSON objects, and fields of
// unexpected shape, decode to an absent descriptor rather than an error: a
// malformed message must never take down the connection.
func DecodeMutation(raw []byte) Mutation {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Mutation{}
	}

	var m Mutation
	if obj, ok := payload["new_project"].(map[string]any); ok {
		m.Project = &ProjectUpsert{
			Name:  coerceString(obj["name"]),
			Color: coerceString(obj["color"]),
		}
	}
	if obj, ok := payload["new_note"].(map[string]any); ok {
		m.Note = &NoteCreate{
			Title:        coerceString(obj["title"]),
			Content:      coerceString(obj["content"]),
			ProjectName:  coerceString(obj["projectName"]),
			ProjectColor: coerceString(obj["projectColor"]),
		}
	}
	return m
}

// coerceString flattens JSON scalars to strings; objects, arrays and null are
// treated as absent.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
