package auth

import (
	"crypto/sha256"
	"fmt"
)

// CreateGUID derives a stable UUID-shaped identifier from the seed. It builds
// secondary lookup keys only; primary identifiers come from NewID.
func CreateGUID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x-%x-%x-%x-%x",
		sum[0:4], sum[4:6], sum[6:8], sum[8:10], sum[10:16])
}
