package form

import (
	"errors"
	"strings"

	"github.com/xy-planning-network/frontdesk/http/req"
	"golang.org/x/text/unicode/norm"
)

// A Payload is the contact form as submitted.
type Payload struct {
	Name    string `json:"name" validate:"required,max=64,nodigits"`
	Phone   string `json:"phone" validate:"required,intlphone"`
	Email   string `json:"email" validate:"omitempty,mailbox"`
	Comment string `json:"comment" validate:"max=1024,notags"`
}

// Canonical returns a copy of p with every field NFC-normalized and trimmed of surrounding whitespace.
func (p Payload) Canonical() Payload {
	return Payload{
		Name:    canonical(p.Name),
		Phone:   canonical(p.Phone),
		Email:   canonical(p.Email),
		Comment: canonical(p.Comment),
	}
}

func canonical(s string) string { return strings.TrimSpace(norm.NFC.String(s)) }

// Accepted echoes the fields of a Payload sent back to the client.
type Accepted struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// A Result reports whether a Payload passed validation.
// Error maps each failing field to its message and always encodes as an object.
type Result struct {
	Result bool              `json:"result"`
	Error  map[string]string `json:"error"`
	Array  Accepted          `json:"array"`
}

// Messages holds the message reported for each failing field.
var Messages = map[string]string{
	"name":    "name must not be a digit and no more than 64 characters",
	"phone":   "phone does not match the standard +DD (DDD) DDD-DD-DD",
	"email":   "email is not valid",
	"comment": "comment must not contain tags and be no more than 1024 characters",
}

var parser = req.NewParser(Rules...)

// Validate checks every field of the canonical form of p,
// never stopping at the first failure.
func Validate(p Payload) Result {
	p = p.Canonical()
	res := Result{
		Error: make(map[string]string),
		Array: Accepted{Name: p.Name, Phone: p.Phone},
	}

	var errs req.ValidationErrors
	if err := parser.Validate(&p); errors.As(err, &errs) {
		for _, field := range errs.Fields() {
			res.Error[field] = Messages[field]
		}
	}

	res.Result = len(res.Error) == 0
	return res
}
