package minitable

func marshalUint32(buf []byte, value uint32, offset uint64) {
	buf[offset+0] = byte(value >> 0)
	buf[offset+1] = byte(value >> 8)
	buf[offset+2] = byte(value >> 16)
	buf[offset+3] = byte(value >> 24)
}

func unmarshalUint32(buf []byte, offset uint64) uint32 {
	return 0 |
		(uint32(buf[offset+0]) << 0) |
		(uint32(buf[offset+1]) << 8) |
		(uint32(buf[offset+2]) << 16) |
		(uint32(buf[offset+3]) << 24)
}
