package enums

import "fmt"

// ContactReason categorizes incoming contact-form messages.
type ContactReason string

const (
	ContactReasonOrder       ContactReason = "commande"
	ContactReasonProgram     ContactReason = "programme"
	ContactReasonPartnership ContactReason = "partenariat"
	ContactReasonOther       ContactReason = "autre"
)

var validContactReasons = []ContactReason{
	ContactReasonOrder,
	ContactReasonProgram,
	ContactReasonPartnership,
	ContactReasonOther,
}

// String implements fmt.Stringer.
func (c ContactReason) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ContactReason.
func (c ContactReason) IsValid() bool {
	for _, candidate := range validContactReasons {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContactReason converts raw input into a ContactReason.
func ParseContactReason(value string) (ContactReason, error) {
	for _, candidate := range validContactReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contact reason %q", value)
}
