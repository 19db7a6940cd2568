package app

import (
	"strings"

	"sigreg/internal/domain"
)

// ResolvePhone picks the phone number: the first positional argument wins
// over PHONE_NUMBER. The result is empty when neither is set.
func ResolvePhone(args []string, cfg Config) domain.PhoneNumber {
	if len(args) > 0 {
		if p := strings.TrimSpace(args[0]); p != "" {
			return domain.PhoneNumber(p)
		}
	}
	return domain.PhoneNumber(strings.TrimSpace(cfg.PhoneNumber))
}
