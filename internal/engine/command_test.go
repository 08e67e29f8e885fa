package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommandRejectsUnknownType(t *testing.T) {
	_, err := decodeCommand([]byte(`{"type":"bogus","key":"k"}`))
	require.Error(t, err)
}

func TestDecodeCommandRejectsMalformedJSON(t *testing.T) {
	_, err := decodeCommand([]byte(`{not json`))
	require.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	set := newSetCommand("k", "v")
	payload, err := encodeCommand(set)
	require.NoError(t, err)

	decoded, err := decodeCommand(payload)
	require.NoError(t, err)
	assert.Equal(t, set, decoded)

	rm := newRemoveCommand("k")
	payload, err = encodeCommand(rm)
	require.NoError(t, err)

	decoded, err = decodeCommand(payload)
	require.NoError(t, err)
	assert.Equal(t, rm, decoded)
}
