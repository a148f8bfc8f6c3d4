// Package models contains data structures for the application's domain models.
package models

// Role is the closed set of platform roles.
type Role string

const (
	// RoleMember is an entrepreneur who owns ventures and requests mentorship.
	RoleMember Role = "Member"
	// RoleMentor receives and responds to mentorship requests.
	RoleMentor Role = "Mentor"
	// RoleAdmin is a platform operator with cross-entity visibility.
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// ApplicationStatus represents the review status of a program application.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// MatchStatus represents the lifecycle state of a mentor match.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusDeclined MatchStatus = "declined"
)

// Valid reports whether s is one of the known match statuses.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusDeclined:
		return true
	}
	return false
}

// MilestoneStatus represents the progress state of a venture milestone.
type MilestoneStatus string

const (
	MilestoneStatusNotStarted MilestoneStatus = "not_started"
	MilestoneStatusInProgress MilestoneStatus = "in_progress"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
)

// Valid reports whether s is one of the known milestone statuses.
func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestoneStatusNotStarted, MilestoneStatusInProgress, MilestoneStatusCompleted:
		return true
	}
	return false
}
