package crc16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	// standard CCITT-FALSE check value
	require.EqualValues(t, 0x29B1, Checksum([]byte("123456789")))

	// empty input leaves the initial value untouched
	require.EqualValues(t, 0xFFFF, Checksum(nil))
	require.EqualValues(t, 0xFFFF, Checksum([]byte{}))
}

func TestHex(t *testing.T) {
	require.Equal(t, "29B1", Hex([]byte("123456789")))
	require.Equal(t, "FFFF", Hex(nil))

	// a payload body up to and including the checksum id+length
	body := "00020101021138570010A00000072701270006970436011300110123456780208QRIBFTTA53037045802VN62090105123456304"
	require.Equal(t, "9ABE", Hex([]byte(body)))
}
