package utils

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseBool accepts "true"/"1"/"yes" (any case), everything else is false
func ParseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	if err == nil {
		return b
	}
	return strings.EqualFold(value, "yes")
}

// GenerateBookingReference creates a human-readable booking reference
func GenerateBookingReference(now time.Time) string {
	// Format: BOOK-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.IntN(10000))

	return fmt.Sprintf("BOOK-%s-%s-%s", datePart, timePart, randomPart)
}
