package common

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateTrxNo() string {
	const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	result := make([]byte, 7)
	for i := range result {
		result[i] = characters[r.Intn(len(characters))]
	}
	return string(result)
}

// GenerateReceiptNo builds the receipt reference passed to the payment
// gateway when an order is created.
func GenerateReceiptNo() string {
	return fmt.Sprintf("receipt_booking_%s", uuid.NewString())
}
