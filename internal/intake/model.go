package intake

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hasunakalanka/Forma.Ai/internal/preview"
)

const (
	maxNameLength     = 200
	maxInjuriesLength = 2000
)

// emailPattern is the same loose check the form runs on step 1.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Payload is one intake form submission.
type Payload struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Goal       string       `json:"goal"`
	Days       preview.Days `json:"days"`
	Experience string       `json:"experience"`
	Equipment  string       `json:"equipment"`
	Injuries   string       `json:"injuries"`
}

// Normalize trims the free-text fields the way the form does before
// submitting.
func (p *Payload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Goal = strings.TrimSpace(p.Goal)
	p.Experience = strings.TrimSpace(p.Experience)
	p.Equipment = strings.TrimSpace(p.Equipment)
	p.Injuries = strings.TrimSpace(p.Injuries)
}

// Validate checks the fields the form gates on. Profile fields are never
// rejected; the resolver defaults them.
func (p *Payload) Validate() error {
	if p.Email == "" {
		return ErrMissingEmail
	}
	if !emailPattern.MatchString(p.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(p.Name) > maxNameLength {
		return ErrNameTooLong
	}
	if utf8.RuneCountInString(p.Injuries) > maxInjuriesLength {
		return ErrInjuriesTooLong
	}
	return nil
}

// PreviewInput returns the profile fields the resolver reads.
func (p Payload) PreviewInput() preview.Input {
	return preview.Input{
		Goal:       p.Goal,
		Days:       p.Days,
		Experience: p.Experience,
		Equipment:  p.Equipment,
	}
}
