package itunes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlistRoundTrip(t *testing.T) {
	doc := Document{
		"appleId":       "user@example.com",
		"attempt":       4,
		"createSession": "true",
		"rmp":           0,
		"why":           "signIn",
		"nested":        map[string]any{"kind": "Buy"},
	}
	data, e := encodePlist(doc)
	require.Nil(t, e)
	assert.Contains(t, string(data), "<?xml")

	decoded, e := decodePlist(data)
	require.Nil(t, e)
	assert.Equal(t, "user@example.com", decoded["appleId"])
	// plist decodes integers as unsigned
	assert.EqualValues(t, 4, decoded["attempt"])
	assert.EqualValues(t, 0, decoded["rmp"])
	nested, ok := decoded["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Buy", nested["kind"])
}

func TestDecodePlistRejectsGarbage(t *testing.T) {
	_, e := decodePlist([]byte("not a plist at all"))
	require.NotNil(t, e)
}

func TestDecodeBodyPicksCodecFromShape(t *testing.T) {
	doc, e := decodeBody("application/json", []byte(`{"failureType":"5000"}`))
	require.Nil(t, e)
	assert.Equal(t, "5000", doc["failureType"])

	// no content type: a leading brace still means JSON
	doc, e = decodeBody("", []byte("  {\"customerMessage\":\"nope\"}"))
	require.Nil(t, e)
	assert.Equal(t, "nope", doc["customerMessage"])

	raw, e := encodePlist(Document{"dsPersonId": "12345"})
	require.Nil(t, e)
	doc, e = decodeBody(ContentTypeApplePlist, raw)
	require.Nil(t, e)
	assert.Equal(t, "12345", doc["dsPersonId"])
}

func TestStoreResponseClassification(t *testing.T) {
	settled := &StoreResponse{Doc: Document{"status": 0}}
	assert.False(t, settled.IsFailure())
	assert.True(t, settled.IsSettled())

	failed := &StoreResponse{Doc: Document{"failureType": "5000"}}
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsSettled())

	// numeric failure codes stringify
	numeric := &StoreResponse{Doc: Document{"failureType": uint64(2060)}}
	assert.Equal(t, "2060", numeric.FailureType())

	// a pending dialog is not failure, but not settled either
	pending := &StoreResponse{Doc: Document{"dialog": map[string]any{"message": "confirm"}}}
	assert.False(t, pending.IsFailure())
	assert.False(t, pending.IsSettled())
}
