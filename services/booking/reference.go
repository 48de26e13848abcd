package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// ReferencePrefix marks customer bookings.
	ReferencePrefix = "BK"
	// PublicReferencePrefix marks quick public booking requests.
	PublicReferencePrefix = "PB"
)

// NewReference returns a reference such as BK-20261018-3F9A0C41D2.
func NewReference() string {
	return NewPrefixedReference(ReferencePrefix, time.Now())
}

// NewPrefixedReference builds prefix-YYYYMMDD-XXXXXXXXXX from 40 random bits.
func NewPrefixedReference(prefix string, at time.Time) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "-" + at.UTC().Format("20060102") + "-" + strings.ToUpper(id[:10])
}
