package qrcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"emvstash/internal/schema"
)

// well-formed payloads with correct trailing CRC values
const (
	vietqrPayload = "00020101021138570010A00000072701270006970436011300110123456780208QRIBFTTA53037045802VN620901051234563049ABE"
	emvPayload    = "00020101021226340016A000000677010111011000622100015204581253037045405250005802VN5912NGUYEN VAN A6005HANOI63043918"
	smallPayload  = "000201530370463048110"
)

func testRegistry() *schema.Registry {
	return schema.NewRegistry()
}

// find walks a tree by id path, first match per level.
func find(t *testing.T, tree []Record, path ...string) Record {
	t.Helper()
	level := tree
	var rec Record
	for _, id := range path {
		found := false
		for _, r := range level {
			if r.ID == id {
				rec, found = r, true
				break
			}
		}
		require.True(t, found, "path element %s not found", id)
		level = rec.Children
	}
	return rec
}

func TestDecode_SingleRecord(t *testing.T) {
	tree, err := Decode("000201", testRegistry())
	require.NoError(t, err)
	require.Len(t, tree, 1)

	require.Equal(t, "00", tree[0].ID)
	require.Equal(t, "02", tree[0].Length)
	require.Equal(t, "01", tree[0].Value)
	require.Equal(t, "Payload Format Indicator", tree[0].Name)
	require.Nil(t, tree[0].Children)
}

func TestDecode_NestedTemplates(t *testing.T) {
	tree, err := Decode(vietqrPayload, testRegistry())
	require.NoError(t, err)
	require.Len(t, tree, 7)

	national := find(t, tree, "38")
	require.Equal(t, "57", national.Length)
	require.Len(t, national.Children, 3)
	require.Equal(t, "A000000727", find(t, tree, "38", "00").Value)

	// the irregular third level under 38/01
	network := find(t, tree, "38", "01")
	require.Len(t, network.Children, 2)
	require.Equal(t, "970436", find(t, tree, "38", "01", "00").Value)
	require.Equal(t, "0011012345678", find(t, tree, "38", "01", "01").Value)

	// template value stays the exact concatenation of its children
	require.Equal(t, national.Value, Encode(national.Children))
	require.Equal(t, network.Value, Encode(network.Children))

	add := find(t, tree, "62")
	require.Len(t, add.Children, 1)
	require.Equal(t, "12345", find(t, tree, "62", "01").Value)
}

func TestDecode_EnumerationDescriptions(t *testing.T) {
	tree, err := Decode(vietqrPayload, testRegistry())
	require.NoError(t, err)

	require.Contains(t, find(t, tree, "01").Description, "\n11:Static QR")
	require.Contains(t, find(t, tree, "38", "01", "00").Description, "\n970436:Vietcombank")
	require.Contains(t, find(t, tree, "58").Description, "\nVN:Viet Nam")

	// unlisted value falls back to the literal
	tree, err = Decode("5303999", testRegistry())
	require.NoError(t, err)
	require.Contains(t, tree[0].Description, "\n999:999")
}

func TestDecode_UnknownIDTolerated(t *testing.T) {
	tree, err := Decode("990499AB", testRegistry())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Equal(t, "99", tree[0].ID)
	require.Equal(t, "99AB", tree[0].Value)
	require.Empty(t, tree[0].Name)
}

func TestDecode_Malformed(t *testing.T) {
	reg := testRegistry()

	_, err := Decode("000", reg)
	require.ErrorIs(t, err, ErrTruncatedInput)

	_, err = Decode("0002", reg)
	require.ErrorIs(t, err, ErrTruncatedInput)

	_, err = Decode("00020", reg)
	require.ErrorIs(t, err, ErrTruncatedInput)

	_, err = Decode("00A101", reg)
	require.ErrorIs(t, err, ErrInvalidLength)

	// malformed inside a template is fatal for the whole decode
	_, err = Decode("6206010399", reg)
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestDecode_EncodeRoundTrip(t *testing.T) {
	reg := testRegistry()
	for _, payload := range []string{vietqrPayload, emvPayload, smallPayload, "000201"} {
		tree, err := Decode(payload, reg)
		require.NoError(t, err)
		require.Equal(t, payload, Encode(tree))
	}
}
