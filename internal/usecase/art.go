package usecase

import (
	"strings"

	"gestao_integrada/internal/domain/entities"
)

// BuildARTCode normalises the ART reference of a work order.
//
// A pending ART yields "PENDING" whatever number was typed. Otherwise every
// non-digit is stripped, at least five digits must remain, and the code is
// "{region}-{digits}".
func BuildARTCode(region, number string, pending bool) (string, error) {
	if pending {
		return entities.ARTCodePending, nil
	}

	region = strings.ToUpper(strings.TrimSpace(region))
	if !validARTRegion(region) {
		return "", ErrInvalidARTRegion
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) < entities.ARTMinDigits {
		return "", ErrInvalidART
	}
	return region + "-" + digits, nil
}

func validARTRegion(region string) bool {
	for _, r := range entities.ARTRegions {
		if r == region {
			return true
		}
	}
	return false
}
