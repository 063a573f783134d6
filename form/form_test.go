package form_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/frontdesk/form"
)

const goodPhone = "+38 (067) 123-45-67"

func TestValidate(t *testing.T) {
	tcs := []struct {
		name     string
		payload  form.Payload
		expected []string
	}{
		{"Valid", form.Payload{Name: "John Smith", Phone: goodPhone}, nil},
		{"Valid-All", form.Payload{Name: "Jane", Phone: goodPhone, Email: "jane.doe+form@mail.example.com", Comment: "call after 5 > 4"}, nil},
		{"Zero-Value", form.Payload{}, []string{"name", "phone"}},
		{"Name-Digit", form.Payload{Name: "John5", Phone: goodPhone}, []string{"name"}},
		{"Name-Unicode-Digit", form.Payload{Name: "John٣", Phone: goodPhone}, []string{"name"}},
		{"Name-Whitespace", form.Payload{Name: "   ", Phone: goodPhone}, []string{"name"}},
		{"Name-64", form.Payload{Name: strings.Repeat("я", 64), Phone: goodPhone}, nil},
		{"Name-65", form.Payload{Name: strings.Repeat("a", 65), Phone: goodPhone}, []string{"name"}},
		{"Phone-Short", form.Payload{Name: "Jane", Phone: "123-456"}, []string{"phone"}},
		{"Phone-Unanchored", form.Payload{Name: "Jane", Phone: "call " + goodPhone + " now"}, []string{"phone"}},
		{"Phone-Punctuation", form.Payload{Name: "Jane", Phone: "+38 067 123-45-67"}, []string{"phone"}},
		{"Email-Bad", form.Payload{Name: "Jane", Phone: goodPhone, Email: "jane@"}, []string{"email"}},
		{"Email-No-TLD", form.Payload{Name: "Jane", Phone: goodPhone, Email: "jane@localhost"}, []string{"email"}},
		{"Comment-Tag", form.Payload{Name: "Jane", Phone: goodPhone, Comment: "<b>hi</b>"}, []string{"comment"}},
		{"Comment-1024", form.Payload{Name: "Jane", Phone: goodPhone, Comment: strings.Repeat("c", 1024)}, nil},
		{"Comment-1025", form.Payload{Name: "Jane", Phone: goodPhone, Comment: strings.Repeat("c", 1025)}, []string{"comment"}},
		{"Everything", form.Payload{Name: "R2D2", Phone: "nope", Email: "@", Comment: "<script>"}, []string{"name", "phone", "email", "comment"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual := form.Validate(tc.payload)

			// Assert
			require.Equal(t, len(tc.expected) == 0, actual.Result)
			require.NotNil(t, actual.Error)
			require.Len(t, actual.Error, len(tc.expected))
			for _, field := range tc.expected {
				require.Equal(t, form.Messages[field], actual.Error[field])
			}
		})
	}
}

func TestValidateAccepted(t *testing.T) {
	// Arrange
	p := form.Payload{Name: "  José ", Phone: " " + goodPhone + "\n", Email: "", Comment: ""}

	// Act
	actual := form.Validate(p)

	// Assert
	require.True(t, actual.Result)
	require.Equal(t, form.Accepted{Name: "José", Phone: goodPhone}, actual.Array)

	// Act
	actual = form.Validate(form.Payload{Name: "John5", Phone: goodPhone})

	// Assert
	require.False(t, actual.Result)
	require.Equal(t, form.Accepted{Name: "John5", Phone: goodPhone}, actual.Array)
}

func TestValidateIdempotent(t *testing.T) {
	// Arrange
	p := form.Payload{Name: "John5", Phone: "123", Comment: "<i>"}

	// Act
	first := form.Validate(p)
	second := form.Validate(p)

	// Assert
	require.Equal(t, first, second)
}

func TestResultMarshalJSON(t *testing.T) {
	// Arrange
	res := form.Validate(form.Payload{Name: "John Smith", Phone: goodPhone})

	// Act
	b, err := json.Marshal(res)

	// Assert
	require.Nil(t, err)
	require.JSONEq(t, `{"result":true,"error":{},"array":{"name":"John Smith","phone":"+38 (067) 123-45-67"}}`, string(b))

	// Arrange
	res = form.Validate(form.Payload{Name: "Jane", Phone: "123-456"})

	// Act
	b, err = json.Marshal(res)

	// Assert
	require.Nil(t, err)
	require.JSONEq(t, `{"result":false,"error":{"phone":"phone does not match the standard +DD (DDD) DDD-DD-DD"},"array":{"name":"Jane","phone":"123-456"}}`, string(b))
}
