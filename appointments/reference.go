package appointments

import (
	"math/rand"
	"strings"
)

const (
	bookingCodeGroupLength = 4
	bookingCodeGroupCount  = 3
	separator              = "-"
	characters             = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// BookingCodeGenerator produces human-readable references patients can
// quote when calling about an appointment.
type BookingCodeGenerator interface {
	Generate() string
}

func NewBookingCodeGenerator() (BookingCodeGenerator, error) {
	return &bookingCodeGenerator{
		groupCount:  bookingCodeGroupCount,
		groupLength: bookingCodeGroupLength,
		separator:   separator,
		chars:       characters,
	}, nil
}

type bookingCodeGenerator struct {
	groupCount  int
	groupLength int
	separator   string
	chars       string
}

func (s *bookingCodeGenerator) Generate() string {
	groups := make([]string, s.groupCount)
	for i := range groups {
		groups[i] = generateRandomStringFromAlphabet(s.chars, s.groupLength)
	}
	return strings.Join(groups, s.separator)
}

func generateRandomStringFromAlphabet(chars string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = chars[rand.Intn(len(chars))]
	}
	return string(b)
}
