package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const referralCodeLen = 10

// NewReferralCode returns a random numeric code whose last digit is a Luhn check digit.
func NewReferralCode() string {
	return goluhn.Generate(referralCodeLen)
}

// IsReferralCode reports whether s is well-formed. It says nothing about whether the code is assigned.
func IsReferralCode(s string) bool {
	if len(s) != referralCodeLen {
		return false
	}
	return goluhn.Validate(s) == nil
}
