package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")

	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// GenerateInvoiceNo generates a unique sales invoice number
func GenerateInvoiceNo(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateReceiptNo generates a unique import receipt number
func GenerateReceiptNo(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateReferenceCode generates a unique reference code for expense,
// tax payment and salary vouchers
func GenerateReferenceCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
