package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceUnmarshalBareID(t *testing.T) {
	var r Reference
	require.NoError(t, json.Unmarshal([]byte(`"abc123"`), &r))

	assert.Equal(t, "abc123", r.ID)
	assert.Empty(t, r.Name)
}

func TestReferenceUnmarshalEmbeddedObject(t *testing.T) {
	var r Reference
	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc123","name":"Appliances"}`), &r))

	assert.Equal(t, "abc123", r.ID)
	assert.Equal(t, "Appliances", r.Name)
}

func TestReferenceUnmarshalMongoShape(t *testing.T) {
	// Some backend endpoints still serialize _id and title.
	var r Reference
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"abc123","title":"Weekly deals"}`), &r))

	assert.Equal(t, "abc123", r.ID)
	assert.Equal(t, "Weekly deals", r.Name)
}

func TestReferenceMarshal(t *testing.T) {
	bare, err := json.Marshal(Reference{ID: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, string(bare))

	full, err := json.Marshal(Reference{ID: "abc123", Name: "Appliances"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc123","name":"Appliances"}`, string(full))
}

func TestReferenceInsideFlyer(t *testing.T) {
	payload := []byte(`{"id":"f1","title":"Deals","category":"cat1","brand":{"id":"b1","name":"Gorenje"}}`)

	var f Flyer
	require.NoError(t, json.Unmarshal(payload, &f))

	assert.Equal(t, "cat1", f.Category.ID)
	assert.True(t, f.Category.Name == "")
	assert.Equal(t, "b1", f.Brand.ID)
	assert.Equal(t, "Gorenje", f.Brand.Name)
}

func TestReferenceIsZero(t *testing.T) {
	assert.True(t, Reference{}.IsZero())
	assert.False(t, Reference{ID: "x"}.IsZero())
}
