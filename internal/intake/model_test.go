package intake

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasunakalanka/Forma.Ai/internal/preview"
)

func TestPayload_DecodesFormStrings(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`{"name":"Ada","email":"ada@example.com","goal":"fat_loss","days":"5","experience":"advanced","equipment":"home_gym","injuries":"none"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, preview.Days(5), p.Days)
	assert.Equal(t, preview.Input{Goal: "fat_loss", Days: 5, Experience: "advanced", Equipment: "home_gym"}, p.PreviewInput())
}

func TestPayload_Validate(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
		want error
	}{
		{"valid", Payload{Email: "ada@example.com"}, nil},
		{"name optional", Payload{Email: "a@b.co"}, nil},
		{"missing email", Payload{Name: "Ada"}, ErrMissingEmail},
		{"no tld", Payload{Email: "ada@example"}, ErrInvalidEmail},
		{"double at", Payload{Email: "a@@b.com"}, ErrInvalidEmail},
		{"long name", Payload{Email: "ada@example.com", Name: strings.Repeat("a", maxNameLength+1)}, ErrNameTooLong},
		{"long injuries", Payload{Email: "ada@example.com", Injuries: strings.Repeat("é", maxInjuriesLength+1)}, ErrInjuriesTooLong},
		{"injuries at limit", Payload{Email: "ada@example.com", Injuries: strings.Repeat("é", maxInjuriesLength)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFieldFor(t *testing.T) {
	assert.Equal(t, "email", FieldFor(ErrMissingEmail))
	assert.Equal(t, "name", FieldFor(ErrNameTooLong))
	assert.Equal(t, "injuries", FieldFor(ErrInjuriesTooLong))
	assert.Equal(t, "", FieldFor(assert.AnError))
}
