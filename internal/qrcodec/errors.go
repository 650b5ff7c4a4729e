package qrcodec

import "errors"

var (
	ErrTruncatedInput       = errors.New("truncated input")
	ErrInvalidLength        = errors.New("invalid length")
	ErrChecksumFieldMissing = errors.New("checksum field missing")
	ErrChecksumMismatch     = errors.New("checksum mismatch")
	ErrSchemaNotFound       = errors.New("no schema for field")
	ErrParentNotStructured  = errors.New("parent field is not structured")
)
