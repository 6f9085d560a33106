package jsonld

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaxArrayEncode(t *testing.T) {
	raw, err := encodeStrings(nil)
	assert.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = encodeStrings([]string{"x"})
	assert.NoError(t, err)
	assert.Equal(t, `"x"`, string(raw))

	raw, err = encodeStrings([]string{"x", "y"})
	assert.NoError(t, err)
	assert.Equal(t, `["x","y"]`, string(raw))
}

func TestLaxArrayDecode(t *testing.T) {
	items, err := decodeStrings("tag", nil)
	assert.NoError(t, err)
	assert.Empty(t, items)

	items, err = decodeStrings("tag", json.RawMessage(`"x"`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"x"}, items)

	items, err = decodeStrings("tag", json.RawMessage(`["x","y"]`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, items)

	// an explicit null reads the same as an absent field
	items, err = decodeStrings("tag", json.RawMessage(`null`))
	assert.NoError(t, err)
	assert.Empty(t, items)

	// one bad element fails the whole property
	_, err = decodeStrings("tag", json.RawMessage(`["x",5]`))
	assert.Error(t, err)
}

func TestLaxArrayEncodeIsIdempotent(t *testing.T) {
	// a singleton array normalizes to a bare value and stays stable from
	// then on
	items, err := decodeStrings("tag", json.RawMessage(`["only"]`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"only"}, items)

	raw, err := encodeStrings(items)
	assert.NoError(t, err)
	assert.Equal(t, `"only"`, string(raw))

	again, err := decodeStrings("tag", raw)
	assert.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestDateFormat(t *testing.T) {
	// second precision, UTC designator
	tm, err := decodeTime("published", "2024-01-02T03:04:05Z")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05Z", encodeTime(tm))

	// numeric offsets are accepted on read and rendered back in UTC
	tm, err = decodeTime("published", "2024-01-02T12:04:05+09:00")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05Z", encodeTime(tm))
}
