package form

import (
	"regexp"
	"unicode"

	"github.com/xy-planning-network/frontdesk/http/req"
)

var (
	phonePattern = regexp.MustCompile(`^\+\d{2} \(\d{3}\) \d{3}-\d{2}-\d{2}$`)
	emailPattern = regexp.MustCompile(`^[-\w.+]+@([A-Za-z0-9][-A-Za-z0-9]*\.)+[A-Za-z]{2,}$`)
	tagPattern   = regexp.MustCompile(`<[^<>]+>`)
)

// Rules lists the custom "validate" tags a Payload uses.
var Rules = []req.Rule{
	{Tag: "nodigits", Check: noDigits},
	{Tag: "intlphone", Check: phonePattern.MatchString},
	{Tag: "mailbox", Check: emailPattern.MatchString},
	{Tag: "notags", Check: noTags},
}

func noDigits(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func noTags(s string) bool { return !tagPattern.MatchString(s) }
