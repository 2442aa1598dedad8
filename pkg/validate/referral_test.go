package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReferralCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "Valid code", code: "7992739875", want: true},
		{name: "Bad check digit", code: "7992739876", want: false},
		{name: "Too short", code: "79927398713"[:9], want: false},
		{name: "Letters", code: "79927A9871", want: false},
		{name: "Empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReferralCode(tt.code))
		})
	}
}

func TestNewReferralCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := NewReferralCode()
		assert.Len(t, code, referralCodeLen)
		assert.True(t, IsReferralCode(code), code)
	}
}
