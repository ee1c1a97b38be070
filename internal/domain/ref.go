package domain

import (
	"encoding/json"
	"fmt"
)

// Ref is a foreign-key reference in canonical string form.
//
// Records exported from the legacy store carry references in two shapes:
// a bare id ("u1") or an expanded object ({"_id":"u1"}), depending on
// whether the reference was populated at read time. Ref is the single
// adapter for both shapes; every decode boundary goes through it so the
// normalization is never repeated per call site.
type Ref string

func (r Ref) String() string { return string(r) }

// Matches reports whether the reference resolves to id. Empty references
// match nothing.
func (r Ref) Matches(id string) bool {
	return id != "" && string(r) == id
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Ref(s)
		return nil
	}

	var obj struct {
		MongoID *string `json:"_id"`
		ID      *string `json:"id"`
	}
	// Covers expanded objects, objects stripped of their id fields, and
	// JSON null; all three appear in exported data.
	if err := json.Unmarshal(data, &obj); err == nil {
		switch {
		case obj.MongoID != nil:
			*r = Ref(*obj.MongoID)
		case obj.ID != nil:
			*r = Ref(*obj.ID)
		default:
			*r = ""
		}
		return nil
	}

	return fmt.Errorf("reference must be a string id or an object with an id field, got %s", data)
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}
