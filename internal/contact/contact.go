// Package contact defines contact records and the builder that validates them.
package contact

import (
	"strings"

	"github.com/google/uuid"
)

// Category groups a contact. Unrecognised input maps to CategoryOther.
type Category string

const (
	CategoryFamily   Category = "family"
	CategoryFriends  Category = "friends"
	CategoryBusiness Category = "business"
	CategoryOther    Category = "other"
)

// ParseCategory matches text case-insensitively against the known categories.
// It never fails: anything unrecognised is CategoryOther.
func ParseCategory(text string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(text))) {
	case CategoryFamily:
		return CategoryFamily
	case CategoryFriends:
		return CategoryFriends
	case CategoryBusiness:
		return CategoryBusiness
	default:
		return CategoryOther
	}
}

// Sentinels returned by Record getters when a field is absent.
const (
	InvalidEmail            = "Invalid Email"
	InvalidPhoneNumber      = "Invalid Phone Number"
	InvalidPrimaryAddress   = "Invalid Primary Address"
	InvalidSecondaryAddress = "Invalid Secondary Address"
	InvalidDOB              = "Invalid DOB"
	InvalidJob              = "Invalid Job"
)

// Record is an immutable contact. Only Builder.Build creates one, and never
// with an empty display name.
type Record struct {
	id               string
	displayName      string
	email            *string
	phoneNumber      *string
	primaryAddress   *string
	secondaryAddress *string
	dateOfBirth      *string
	jobDescription   *string
	category         Category
}

// ID returns the identifier minted when the record was built.
func (r Record) ID() string { return r.id }

// DisplayName returns the contact's name.
func (r Record) DisplayName() string { return r.displayName }

// Category returns the contact's category.
func (r Record) Category() Category { return r.category }

// Email returns the email address, or InvalidEmail if none was accepted.
func (r Record) Email() string { return orSentinel(r.email, InvalidEmail) }

// LookupEmail returns the email address and whether one was accepted.
func (r Record) LookupEmail() (string, bool) { return lookup(r.email) }

// PhoneNumber returns the phone number, or InvalidPhoneNumber if none was accepted.
func (r Record) PhoneNumber() string { return orSentinel(r.phoneNumber, InvalidPhoneNumber) }

// LookupPhoneNumber returns the phone number and whether one was accepted.
func (r Record) LookupPhoneNumber() (string, bool) { return lookup(r.phoneNumber) }

func (r Record) PrimaryAddress() string {
	return orSentinel(r.primaryAddress, InvalidPrimaryAddress)
}

func (r Record) LookupPrimaryAddress() (string, bool) { return lookup(r.primaryAddress) }

func (r Record) SecondaryAddress() string {
	return orSentinel(r.secondaryAddress, InvalidSecondaryAddress)
}

func (r Record) LookupSecondaryAddress() (string, bool) { return lookup(r.secondaryAddress) }

func (r Record) DateOfBirth() string { return orSentinel(r.dateOfBirth, InvalidDOB) }

func (r Record) LookupDateOfBirth() (string, bool) { return lookup(r.dateOfBirth) }

func (r Record) JobDescription() string { return orSentinel(r.jobDescription, InvalidJob) }

func (r Record) LookupJobDescription() (string, bool) { return lookup(r.jobDescription) }

// String implements fmt.Stringer.
func (r Record) String() string {
	return "Contact(" + r.displayName + ")"
}

func orSentinel(p *string, sentinel string) string {
	if p == nil {
		return sentinel
	}
	return *p
}

func lookup(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

// Builder accumulates contact fields. Email and phone are validated when set;
// a value that fails validation leaves the field absent rather than erroring.
// A Builder is meant to be local to one construction and is not safe for
// concurrent use.
type Builder struct {
	displayName      string
	email            *string
	phoneNumber      *string
	primaryAddress   *string
	secondaryAddress *string
	dateOfBirth      *string
	jobDescription   *string
	category         Category
}

// NewBuilder returns an empty Builder with category CategoryOther.
func NewBuilder() *Builder {
	return &Builder{category: CategoryOther}
}

// SetDisplayName stores the contact's name. Emptiness is checked by Build.
func (b *Builder) SetDisplayName(name string) *Builder {
	b.displayName = name
	return b
}

// SetUserName stores the joined first and last name as the display name.
func (b *Builder) SetUserName(u UserName) *Builder {
	return b.SetDisplayName(u.String())
}

// SetEmail stores raw if it matches EmailPattern, otherwise clears the email.
func (b *Builder) SetEmail(raw string) *Builder {
	b.email = validated(raw, ValidEmail)
	return b
}

// SetPhoneNumber concatenates countryCode and number and stores the result
// if it matches PhonePattern, otherwise clears the phone number.
func (b *Builder) SetPhoneNumber(countryCode, number string) *Builder {
	b.phoneNumber = validated(PhoneNumber{CountryCode: countryCode, Number: number}.String(), ValidPhone)
	return b
}

// SetContactCategory maps text through ParseCategory.
func (b *Builder) SetContactCategory(text string) *Builder {
	b.category = ParseCategory(text)
	return b
}

func (b *Builder) SetPrimaryAddress(a Address) *Builder {
	b.primaryAddress = ptr(a.String())
	return b
}

func (b *Builder) SetSecondaryAddress(a Address) *Builder {
	b.secondaryAddress = ptr(a.String())
	return b
}

func (b *Builder) SetDateOfBirth(d DOB) *Builder {
	b.dateOfBirth = ptr(d.String())
	return b
}

func (b *Builder) SetJob(j JobDescription) *Builder {
	b.jobDescription = ptr(j.String())
	return b
}

// Build returns the accumulated record and true, or the zero Record and false
// when no display name was set. The builder is left unchanged either way.
func (b *Builder) Build() (Record, bool) {
	if b.displayName == "" {
		return Record{}, false
	}
	return Record{
		id:               uuid.NewString(),
		displayName:      b.displayName,
		email:            b.email,
		phoneNumber:      b.phoneNumber,
		primaryAddress:   b.primaryAddress,
		secondaryAddress: b.secondaryAddress,
		dateOfBirth:      b.dateOfBirth,
		jobDescription:   b.jobDescription,
		category:         b.category,
	}, true
}

// validated returns a pointer to raw when ok accepts it, nil otherwise.
func validated(raw string, ok func(string) bool) *string {
	if !ok(raw) {
		return nil
	}
	return ptr(raw)
}

func ptr(s string) *string { return &s }
