package models

// UserType defines the account role
type UserType string

const (
	UserTypeAlumni  UserType = "alumni"
	UserTypeStudent UserType = "student"
	UserTypeAdmin   UserType = "admin"
)

// IsValid reports whether the value is one of the known user types
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeAlumni, UserTypeStudent, UserTypeAdmin:
		return true
	}
	return false
}

// JobType defines the employment type of a job posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
	JobTypeRemote     JobType = "remote"
)

// IsValid reports whether the value is one of the known job types
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance, JobTypeRemote:
		return true
	}
	return false
}

// UnknownUserName is substituted whenever a referenced user no longer resolves
const UnknownUserName = "Unknown"
