package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := Date{}
	require.NoError(t, json.Unmarshal([]byte(`"1998-05-17"`), &d))
	assert.Equal(t, time.Date(1998, 5, 17, 0, 0, 0, 0, time.UTC), d.Time)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1998-05-17"`, string(data))
}

func TestDateUnmarshalRejectsOtherLayouts(t *testing.T) {
	d := Date{}
	assert.Error(t, json.Unmarshal([]byte(`"17/05/1998"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"1998-05-17T00:00:00Z"`), &d))
}

func TestStagedSessionMissingSteps(t *testing.T) {
	s := &StagedSession{SessionID: "sess-1"}
	assert.Equal(t, []Step{StepPersonal, StepEducation, StepExperience}, s.MissingSteps())

	s.Personal = &PersonalInfo{}
	s.Experience = &ExperienceInfo{}
	assert.Equal(t, []Step{StepEducation}, s.MissingSteps())

	s.Education = &EducationInfo{}
	assert.Empty(t, s.MissingSteps())
}

func TestValidationFailedErrorListsEveryField(t *testing.T) {
	err := &ValidationFailedError{
		Step: StepPersonal,
		Fields: []FieldError{
			{Field: "phone_number", Message: "phone_number must be exactly 10 digits"},
			{Field: "email", Message: "email must be a valid email address"},
		},
	}
	msg := err.Error()
	assert.Contains(t, msg, "phone_number")
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "personal")
}

func TestIncompleteSubmissionErrorNamesMissingSteps(t *testing.T) {
	err := &IncompleteSubmissionError{Missing: []Step{StepEducation, StepExperience}}
	assert.Equal(t, "incomplete submission: missing steps: education, experience", err.Error())
}
