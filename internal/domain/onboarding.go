package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Step is one of the three independently staged onboarding steps.
type Step string

const (
	StepPersonal   Step = "personal"
	StepEducation  Step = "education"
	StepExperience Step = "experience"
)

// Steps lists every onboarding step in submission order.
var Steps = []Step{StepPersonal, StepEducation, StepExperience}

// Date is a calendar date without a time component. It marshals as
// "2006-01-02" so it round-trips through the staging store unchanged.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected format %s", s, dateLayout)
	}
	d.Time = t
	return nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

type PersonalInfo struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,phone10"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth Date   `json:"date_of_birth" validate:"required,pastdate"`
}

type EducationInfo struct {
	TenthPercentage   decimal.Decimal `json:"tenth_percentage" validate:"gte=0,lte=100"`
	TwelfthPercentage decimal.Decimal `json:"twelfth_percentage" validate:"gte=0,lte=100"`
	GraduationMarks   decimal.Decimal `json:"graduation_marks" validate:"gte=0,lte=100"`
}

type ExperienceInfo struct {
	CompanyName       string          `json:"company_name" validate:"required"`
	Domain            string          `json:"domain" validate:"required"`
	YearsOfExperience decimal.Decimal `json:"years_of_experience" validate:"gte=0"`
	LastSalary        decimal.Decimal `json:"last_salary" validate:"gte=0"`
}

// StagedSession is whatever subset of steps currently exists in the staging
// store for one session. A nil slot means the step has not been saved yet or
// its entry has expired.
type StagedSession struct {
	SessionID  string          `json:"session_id"`
	Personal   *PersonalInfo   `json:"personal,omitempty"`
	Education  *EducationInfo  `json:"education,omitempty"`
	Experience *ExperienceInfo `json:"experience,omitempty"`
}

// MissingSteps returns the steps that have no staged payload.
func (s *StagedSession) MissingSteps() []Step {
	missing := []Step{}
	if s.Personal == nil {
		missing = append(missing, StepPersonal)
	}
	if s.Education == nil {
		missing = append(missing, StepEducation)
	}
	if s.Experience == nil {
		missing = append(missing, StepExperience)
	}
	return missing
}

// UserRecord is the durable union of all three staged steps. It is created
// exactly once per successful final submission and never mutated by the
// staging flow afterwards.
type UserRecord struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	PhoneNumber       string          `json:"phone_number"`
	Email             string          `json:"email"`
	DateOfBirth       Date            `json:"date_of_birth"`
	TenthPercentage   decimal.Decimal `json:"tenth_percentage"`
	TwelfthPercentage decimal.Decimal `json:"twelfth_percentage"`
	GraduationMarks   decimal.Decimal `json:"graduation_marks"`
	CompanyName       string          `json:"company_name"`
	Domain            string          `json:"domain"`
	YearsOfExperience decimal.Decimal `json:"years_of_experience"`
	LastSalary        decimal.Decimal `json:"last_salary"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

// NewUserRecord merges the three staged payloads into one record.
func NewUserRecord(p *PersonalInfo, ed *EducationInfo, ex *ExperienceInfo) *UserRecord {
	return &UserRecord{
		Name:              p.Name,
		PhoneNumber:       p.PhoneNumber,
		Email:             p.Email,
		DateOfBirth:       p.DateOfBirth,
		TenthPercentage:   ed.TenthPercentage,
		TwelfthPercentage: ed.TwelfthPercentage,
		GraduationMarks:   ed.GraduationMarks,
		CompanyName:       ex.CompanyName,
		Domain:            ex.Domain,
		YearsOfExperience: ex.YearsOfExperience,
		LastSalary:        ex.LastSalary,
	}
}
