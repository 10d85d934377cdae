package models

import "encoding/json"

// Reference is a category or brand link as the backend serializes it.
// Older endpoints return a bare id string, newer ones embed the referenced
// document; both normalize here, at the relay boundary, so controllers and
// the dashboard always see {id, name}.
type Reference struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}

	var obj struct {
		ID    string `json:"id"`
		MID   string `json:"_id"`
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	if r.ID == "" {
		r.ID = obj.MID
	}
	r.Name = obj.Name
	if r.Name == "" {
		r.Name = obj.Title
	}
	return nil
}

func (r Reference) MarshalJSON() ([]byte, error) {
	// Mutation payloads relay only the id, matching what the backend's
	// create/update endpoints accept.
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	type ref Reference
	return json.Marshal(ref(r))
}

// IsZero reports whether the reference points at nothing.
func (r Reference) IsZero() bool {
	return r.ID == "" && r.Name == ""
}
