package contact

import (
	"fmt"
	"strings"
)

// UserName is a first name with an optional last name.
type UserName struct {
	First string
	Last  string
}

// String joins the first and last name with no separator.
func (u UserName) String() string {
	return u.First + u.Last
}

// PhoneNumber is a country code and subscriber number kept apart until validation.
type PhoneNumber struct {
	CountryCode string
	Number      string
}

// String concatenates the country code and number.
func (p PhoneNumber) String() string {
	return p.CountryCode + p.Number
}

// Address is a postal address.
type Address struct {
	DoorNo      string `yaml:"door_no"`
	StreetLane1 string `yaml:"street_lane_1"`
	StreetLane2 string `yaml:"street_lane_2"`
	District    string `yaml:"district"`
	State       string `yaml:"state"`
	Country     string `yaml:"country"`
	Pincode     int    `yaml:"pincode"`
}

// String renders the address as a single comma-separated line.
func (a Address) String() string {
	parts := []string{
		a.DoorNo,
		a.StreetLane1,
		a.StreetLane2,
		a.District,
		a.State,
		a.Country,
		fmt.Sprint(a.Pincode),
	}
	return strings.Join(parts, " ,")
}

// DOB is a calendar date of birth. Values are not range-checked.
type DOB struct {
	Date  int `yaml:"date"`
	Month int `yaml:"month"`
	Year  int `yaml:"year"`
}

// String renders the date as d/m/y without zero padding.
func (d DOB) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Date, d.Month, d.Year)
}

// JobDescription describes a contact's job and where it is located.
type JobDescription struct {
	Name       string  `yaml:"name"`
	Experience string  `yaml:"experience"`
	Location   Address `yaml:"location"`
}

// String renders the job as "name, experience, address".
func (j JobDescription) String() string {
	return j.Name + ", " + j.Experience + ", " + j.Location.String()
}
