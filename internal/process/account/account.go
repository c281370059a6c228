// Package account validates sign-up fields: usernames, e-mail addresses,
// passwords and display names. Each validator returns user-facing messages;
// an empty slice means the field is acceptable.
package account

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"

	"github.com/lueurxax/inkguard/internal/process/filters"
	"github.com/lueurxax/inkguard/internal/process/lexicon"
	"github.com/lueurxax/inkguard/internal/process/sanitize"
)

const (
	usernameMinLength    = 3
	usernameMaxLength    = 20
	passwordMinLength    = 8
	passwordStrongLength = 12
	displayNameMaxLength = 50
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Strength grades a password.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// PasswordReport is the result of ValidatePassword.
type PasswordReport struct {
	Errors   []string `json:"errors"`
	Strength Strength `json:"strength"`
}

// Registration is a sign-up form. Empty fields are skipped by Validate.
type Registration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Report holds per-field errors for a Registration.
type Report struct {
	Valid            bool                `json:"valid"`
	Fields           map[string][]string `json:"fields"`
	PasswordStrength Strength            `json:"password_strength,omitempty"`
}

// Validator is read-only after New and safe for concurrent use.
type Validator struct {
	lex      *lexicon.Lexicon
	matchers *filters.Matchers
}

// New returns a Validator. A nil lex uses the embedded lexicon; nil matchers
// are compiled from lex.
func New(lex *lexicon.Lexicon, matchers *filters.Matchers) (*Validator, error) {
	if lex == nil {
		lex = lexicon.Default()
	}

	if matchers == nil {
		m, err := filters.New(lex)
		if err != nil {
			return nil, err
		}

		matchers = m
	}

	return &Validator{lex: lex, matchers: matchers}, nil
}

// Validate checks every non-empty field of r.
func (v *Validator) Validate(r Registration) Report {
	report := Report{Valid: true, Fields: map[string][]string{}}

	add := func(field string, errs []string) {
		if len(errs) == 0 {
			return
		}

		report.Fields[field] = errs
		report.Valid = false
	}

	if r.Username != "" {
		add("username", v.ValidateUsername(r.Username))
	}

	if r.Email != "" {
		add("email", ValidateEmail(r.Email))
	}

	if r.Password != "" {
		pw := ValidatePassword(r.Password)
		add("password", pw.Errors)
		report.PasswordStrength = pw.Strength
	}

	if r.DisplayName != "" {
		add("display_name", v.ValidateDisplayName(r.DisplayName))
	}

	return report
}

// ValidateUsername checks format, reserved and taken names, and profanity.
func (v *Validator) ValidateUsername(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return []string{"Username is required"}
	}

	errs := []string{}

	if n := utf8.RuneCountInString(name); n < usernameMinLength || n > usernameMaxLength {
		errs = append(errs, "Username must be between 3 and 20 characters")
	}

	if !usernameRegex.MatchString(name) {
		errs = append(errs, "Username can only contain letters, numbers and underscores")
	}

	if name[0] >= '0' && name[0] <= '9' {
		errs = append(errs, "Username cannot start with a number")
	}

	switch {
	case v.lex.IsReservedUsername(name):
		errs = append(errs, "This username is reserved")
	case v.lex.IsTakenUsername(name):
		errs = append(errs, "This username is already taken")
	}

	// "bad_word_here" is read as separate words.
	if v.matchers.ContainsProfanity(sanitize.Sanitize(strings.ReplaceAll(name, "_", " "))) {
		errs = append(errs, "Username contains inappropriate language")
	}

	return errs
}

// ValidateEmail checks that email is a bare address on a registrable domain.
func ValidateEmail(email string) []string {
	email = strings.TrimSpace(email)
	if email == "" {
		return []string{"Email is required"}
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return []string{"Enter a valid email address"}
	}

	at := strings.LastIndexByte(email, '@')
	if !hasRegistrableDomain(strings.ToLower(email[at+1:])) {
		return []string{"Enter a valid email address"}
	}

	return []string{}
}

func hasRegistrableDomain(domain string) bool {
	suffix, icann := publicsuffix.PublicSuffix(domain)
	if !icann || suffix == domain {
		return false
	}

	_, err := publicsuffix.EffectiveTLDPlusOne(domain)

	return err == nil
}

// ValidatePassword checks the minimum length and grades the password.
func ValidatePassword(password string) PasswordReport {
	if password == "" {
		return PasswordReport{Errors: []string{"Password is required"}, Strength: StrengthWeak}
	}

	errs := []string{}

	length := utf8.RuneCountInString(password)
	if length < passwordMinLength {
		errs = append(errs, "Password must be at least 8 characters")
	}

	return PasswordReport{Errors: errs, Strength: passwordStrength(password, length)}
}

func passwordStrength(password string, length int) Strength {
	if length < passwordMinLength {
		return StrengthWeak
	}

	var lower, upper, digit, symbol bool

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{lower, upper, digit, symbol, length >= passwordStrongLength} {
		if ok {
			score++
		}
	}

	switch {
	case score >= 4:
		return StrengthStrong
	case score == 3:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// ValidateDisplayName checks length and rejects profanity or hate speech.
func (v *Validator) ValidateDisplayName(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return []string{"Display name is required"}
	}

	errs := []string{}

	if utf8.RuneCountInString(name) > displayNameMaxLength {
		errs = append(errs, "Display name must be at most 50 characters")
	}

	clean := sanitize.Sanitize(name)
	if v.matchers.ContainsProfanity(clean) || v.matchers.ContainsHateSpeech(clean) {
		errs = append(errs, "Display name contains inappropriate language")
	}

	return errs
}
