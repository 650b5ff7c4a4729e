package crc16

import "fmt"

// CRC-16/IBM-3740 (CCITT-FALSE): polynomial 0x1021, initial value 0xFFFF,
// no final xor, MSB-first. This is the variant the merchant-presented QR
// payload carries in its trailing checksum field.

var table [256]uint16

func init() {
	for i := range table {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
}

// Checksum computes the CRC over data.
func Checksum(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = crc<<8 ^ table[byte(crc>>8)^b]
	}
	return crc
}

// Hex renders the checksum of data as four uppercase hex digits,
// the wire form of the payload checksum field.
func Hex(data []byte) string {
	return fmt.Sprintf("%04X", Checksum(data))
}
