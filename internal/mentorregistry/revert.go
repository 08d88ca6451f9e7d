package mentorregistry

import "strings"

// DefaultRegisterError is returned when a registration failure carries no message
const DefaultRegisterError = "Failed to register mentor"

// legacyAddressExistsSelector is matched in addition to the ABI selector of AddressAlreadyExists
const legacyAddressExistsSelector = "0x8baa579f"

type revertRule struct {
	patterns []string
	message  string
}

var revertRules = []revertRule{
	{
		patterns: []string{ErrorAddressAlreadyExists, legacyAddressExistsSelector, ErrorSelector(ErrorAddressAlreadyExists)},
		message:  "This mentor address is already registered",
	},
	{
		patterns: []string{ErrorUsernameAlreadyExists, ErrorSelector(ErrorUsernameAlreadyExists)},
		message:  "This username is already taken",
	},
	{
		patterns: []string{ErrorDeadlineExceeded, ErrorSelector(ErrorDeadlineExceeded)},
		message:  "Transaction deadline exceeded. Please try again",
	},
	{
		patterns: []string{ErrorInvalidSignature},
		message:  "Invalid signature. Please try again",
	},
}

// TranslateRevert maps a relayer or contract error message to a user facing message.
// The first matching rule wins; unmatched messages are returned unchanged.
func TranslateRevert(msg string) string {
	lower := strings.ToLower(msg)
	for _, rule := range revertRules {
		for _, p := range rule.patterns {
			if p == "" {
				continue
			}
			// selectors are matched case-insensitively, names exactly
			if strings.HasPrefix(p, "0x") {
				if strings.Contains(lower, strings.ToLower(p)) {
					return rule.message
				}
			} else if strings.Contains(msg, p) {
				return rule.message
			}
		}
	}

	if strings.TrimSpace(msg) == "" {
		return DefaultRegisterError
	}
	return msg
}

// TranslateError is TranslateRevert applied to an error, nil yields the default message
func TranslateError(err error) string {
	if err == nil {
		return DefaultRegisterError
	}
	return TranslateRevert(err.Error())
}
