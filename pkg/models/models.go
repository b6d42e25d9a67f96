package models

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Timestamps are Unix milliseconds (UTC).

// Visibility values for an interview.
const (
	VisibilityPrivate = "Private"
	VisibilityPublic  = "Public"
)

// Recommendation values accepted for an AI result.
var Recommendations = []string{"Hire", "Do Not Hire", "Further Interview", "Strong Hire", "Weak Hire", "N/A"}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Created      int64  `json:"createdAt" db:"created"`
	Updated      int64  `json:"updatedAt" db:"updated"`

	// Populated result set, filled by the user endpoint only.
	Results []Result `json:"aiGeneratedResults"`
}

type Interview struct {
	ID              int64  `json:"id" db:"id"`
	OwnerID         int64  `json:"ownerId" db:"owner_id"`
	Title           string `json:"title" db:"title"`
	Type            string `json:"type" db:"type"`
	JobRole         string `json:"jobRole,omitempty" db:"job_role"`
	Difficulty      string `json:"difficulty" db:"difficulty"`
	KeySkills       string `json:"keySkills,omitempty" db:"key_skills"` // comma-separated
	DurationMinutes int    `json:"durationMinutes" db:"duration_minutes"`
	Description     string `json:"description,omitempty" db:"description"`
	Visibility      string `json:"visibility" db:"visibility"`
	Created         int64  `json:"createdAt" db:"created"`
	Updated         int64  `json:"updatedAt" db:"updated"`
}

// InterviewDetails carries the mutable fields of an interview. Nil pointers
// mean "leave unchanged" on update.
type InterviewDetails struct {
	Title           *string `json:"title,omitempty"`
	Type            *string `json:"type,omitempty"`
	JobRole         *string `json:"jobRole,omitempty"`
	Difficulty      *string `json:"difficulty,omitempty"`
	KeySkills       *string `json:"keySkills,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Description     *string `json:"description,omitempty"`
}

type Result struct {
	ID             int64  `json:"id" db:"id"`
	UserID         int64  `json:"userId" db:"user_id"`
	Score          *int64 `json:"score" db:"score"` // 0..100, nil when the AI gave none
	Feedback       string `json:"feedback,omitempty" db:"feedback"`
	Recommendation string `json:"recommendation" db:"recommendation"`
	RequestID      string `json:"requestId,omitempty" db:"request_id"`
	Created        int64  `json:"createdAt" db:"created"`
	Updated        int64  `json:"updatedAt" db:"updated"`
}
