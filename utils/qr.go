package utils

import "github.com/skip2/go-qrcode"

// GenerateQRCode renders content to a PNG of the given pixel size. Used for
// GCash payment references the customer scans at checkout.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
