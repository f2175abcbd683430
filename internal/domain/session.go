package domain

// Session category of use (meeting, interview, ...)
type Session struct {
	ID          int64
	SessionCode string
	SessionType string
	// PreferredHallIDs ordered by preference rank, at most three
	PreferredHallIDs []int64
	IsDeleted        bool
}

// MaxPreferredHalls number of preferred halls a session may list
const MaxPreferredHalls = 3
