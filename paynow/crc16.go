package paynow

import "fmt"

// Checksum computes the CRC16-CCITT (CCITT-FALSE) checksum of data, the
// variant EMVCo mandates for the payload trailer: register seeded with
// 0xFFFF, polynomial 0x1021, no reflection, no final XOR. The result is
// returned as four uppercase hex digits.
func Checksum(data string) string {
	crc := 0xffff
	for i := 0; i < len(data); i++ {
		crc ^= int(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
		crc &= 0xffff
	}
	return fmt.Sprintf("%04X", crc)
}
