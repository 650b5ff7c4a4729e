package qrcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireConsistent checks the structural invariants after an edit: every
// length matches its value and every template value is its children's
// encoding.
func requireConsistent(t *testing.T, tree []Record) {
	t.Helper()
	for _, r := range tree {
		require.Equal(t, pad2(len(r.Value)), r.Length, "tag %s", r.ID)
		if r.Children != nil {
			require.Equal(t, Encode(r.Children), r.Value, "tag %s", r.ID)
			requireConsistent(t, r.Children)
		}
	}
}

func TestSetValue_Leaf(t *testing.T) {
	tree, err := Decode(emvPayload, testRegistry())
	require.NoError(t, err)

	edited := SetValue(tree, []string{"54"}, "99000")
	edited = Recompute(edited)

	requireConsistent(t, edited)
	require.Equal(t, "99000", find(t, edited, "54").Value)
	require.Equal(t, "A0CB", find(t, edited, ChecksumID).Value)
	require.NoError(t, Validate(edited))

	// the input tree is an untouched snapshot
	require.Equal(t, emvPayload, Encode(tree))
}

func TestSetValue_NestedPropagation(t *testing.T) {
	tree, err := Decode(vietqrPayload, testRegistry())
	require.NoError(t, err)

	edited := Recompute(SetValue(tree, []string{"38", "01", "01"}, "0999999999"))
	requireConsistent(t, edited)
	require.NoError(t, Validate(edited))

	// shorter merchant id shrinks 38/01 and 38, and moves the CRC
	const want = "00020101021138540010A00000072701240006970436011009999999990208QRIBFTTA53037045802VN6209010512345630444BF"
	require.Equal(t, want, Encode(edited))
	require.Equal(t, "54", find(t, edited, "38").Length)
	require.Equal(t, "24", find(t, edited, "38", "01").Length)
}

func TestSetValue_PathMissIsNoop(t *testing.T) {
	tree, err := Decode(vietqrPayload, testRegistry())
	require.NoError(t, err)

	require.Equal(t, vietqrPayload, Encode(SetValue(tree, []string{"55"}, "01")))
	require.Equal(t, vietqrPayload, Encode(SetValue(tree, []string{"38", "09"}, "x")))
	require.Equal(t, vietqrPayload, Encode(SetValue(tree, nil, "x")))

	// templates derive their value; setting one directly is a miss
	require.Equal(t, vietqrPayload, Encode(SetValue(tree, []string{"38"}, "x")))
}

func TestInsertField_Root(t *testing.T) {
	reg := testRegistry()
	tree, err := Decode(smallPayload, reg)
	require.NoError(t, err)

	node, ok := reg.Lookup("58", nil)
	require.True(t, ok)

	edited, err := InsertField(tree, nil, "58", node)
	require.NoError(t, err)
	edited = Recompute(edited)

	requireConsistent(t, edited)
	require.NoError(t, Validate(edited))

	// inserted empty and sorted between 53 and 63
	require.Equal(t, "0002015303704580063040674", Encode(edited))
}

func TestInsertField_Errors(t *testing.T) {
	reg := testRegistry()
	tree, err := Decode(smallPayload, reg)
	require.NoError(t, err)

	_, err = InsertField(tree, nil, "58", nil)
	require.ErrorIs(t, err, ErrSchemaNotFound)

	node, _ := reg.Lookup("58", nil)
	_, err = InsertField(tree, []string{"00"}, "58", node)
	require.ErrorIs(t, err, ErrParentNotStructured)

	_, err = InsertField(tree, []string{"62"}, "01", node)
	require.ErrorIs(t, err, ErrParentNotStructured)
}

func TestDeleteField(t *testing.T) {
	tree, err := Decode(vietqrPayload, testRegistry())
	require.NoError(t, err)

	edited := Recompute(DeleteField(tree, []string{"62"}))
	requireConsistent(t, edited)
	require.NoError(t, Validate(edited))
	require.Equal(t, "7B64", find(t, edited, ChecksumID).Value)

	// miss is a no-op
	require.Equal(t, vietqrPayload, Encode(DeleteField(tree, []string{"55"})))
	require.Equal(t, vietqrPayload, Encode(DeleteField(tree, []string{"62", "02"})))
}

func TestDeleteThenReAddRestoresEncoding(t *testing.T) {
	reg := testRegistry()
	tree, err := Decode(vietqrPayload, reg)
	require.NoError(t, err)

	edited := Recompute(DeleteField(tree, []string{"62"}))

	addNode, ok := reg.Lookup("62", nil)
	require.True(t, ok)
	edited, err = InsertField(edited, nil, "62", addNode)
	require.NoError(t, err)

	billNode, ok := reg.Lookup("01", []string{"62"})
	require.True(t, ok)
	edited, err = InsertField(edited, []string{"62"}, "01", billNode)
	require.NoError(t, err)

	edited = Recompute(SetValue(edited, []string{"62", "01"}, "12345"))
	requireConsistent(t, edited)
	require.Equal(t, vietqrPayload, Encode(edited))
}
