package qrcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	reg := testRegistry()

	tree, err := Decode(vietqrPayload, reg)
	require.NoError(t, err)
	require.NoError(t, Validate(tree))

	tree, err = Decode(emvPayload, reg)
	require.NoError(t, err)
	require.NoError(t, Validate(tree))

	// single-character tamper in a non-checksum field
	tampered := "00020201" + vietqrPayload[8:]
	tree, err = Decode(tampered, reg)
	require.NoError(t, err)
	require.ErrorIs(t, Validate(tree), ErrChecksumMismatch)

	// no checksum record at the top level
	tree, err = Decode("000201", reg)
	require.NoError(t, err)
	require.ErrorIs(t, Validate(tree), ErrChecksumFieldMissing)
}

func TestRecompute(t *testing.T) {
	reg := testRegistry()

	// a placeholder checksum is repaired to the true value
	placeholder := vietqrPayload[:len(vietqrPayload)-4] + "0000"
	tree, err := Decode(placeholder, reg)
	require.NoError(t, err)
	require.ErrorIs(t, Validate(tree), ErrChecksumMismatch)

	fixed := Recompute(tree)
	require.NoError(t, Validate(fixed))
	require.Equal(t, vietqrPayload, Encode(fixed))

	// input tree is untouched
	require.Equal(t, placeholder, Encode(tree))

	// idempotence
	require.Equal(t, Encode(fixed), Encode(Recompute(fixed)))
}

func TestRecompute_NoChecksumRecord(t *testing.T) {
	tree, err := Decode("000201", testRegistry())
	require.NoError(t, err)

	out := Recompute(tree)
	require.Equal(t, Encode(tree), Encode(out))
}
