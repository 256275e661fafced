package model

// Role is the closed set of account categories. It governs which views
// and actions an account may reach.
type Role string

const (
	RoleFarmer  Role = "farmer"
	RoleAEO     Role = "aeo"
	RoleNGO     Role = "ngo"
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleAEO, RoleNGO, RoleAdmin, RoleStudent:
		return true
	}
	return false
}

// CanReview reports whether the role may review quest submissions.
func (r Role) CanReview() bool {
	return r == RoleAEO || r == RoleAdmin
}

// CanManageQuests reports whether the role may create quests.
func (r Role) CanManageQuests() bool {
	return r == RoleAdmin || r == RoleAEO || r == RoleNGO
}

type User struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Email               string       `json:"email"`
	Role                Role         `json:"role"`
	Location            string       `json:"location"`
	SustainabilityScore int          `json:"sustainabilityScore"`
	Level               string       `json:"level"`
	Badges              []Badge      `json:"badges"`
	CompletedQuests     int          `json:"completedQuests"`
	ActiveQuests        int          `json:"activeQuests"`
	JoinedDate          string       `json:"joinedDate"`
	FarmProfile         *FarmProfile `json:"farmProfile,omitempty"`
}

// Coordinates is a GPS point attached to farm locations and submission
// evidence.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type FarmLocation struct {
	State       string       `json:"state"`
	District    string       `json:"district"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// FarmProfile is owned by exactly one user and is replaced wholesale on
// each save.
type FarmProfile struct {
	FarmSize          float64      `json:"farmSize"`
	CropType          []string     `json:"cropType"`
	Fertilizers       []string     `json:"fertilizers"`
	IrrigationType    string       `json:"irrigationType"`
	Budget            float64      `json:"budget"`
	Location          FarmLocation `json:"location"`
	SoilType          string       `json:"soilType"`
	FarmingExperience int          `json:"farmingExperience"`
}

type Badge struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Icon        string        `json:"icon"`
	EarnedAt    string        `json:"earnedAt"`
	Category    string        `json:"category"`
}

// UserPatch is a partial update: only non-nil fields are applied.
type UserPatch struct {
	Name                *string
	Email               *string
	Role                *Role
	Location            *string
	SustainabilityScore *int
	Level               *string
	Badges              *[]Badge
	CompletedQuests     *int
	ActiveQuests        *int
	FarmProfile         *FarmProfile
}

// Apply shallow-merges the patch onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.SustainabilityScore != nil {
		u.SustainabilityScore = *p.SustainabilityScore
	}
	if p.Level != nil {
		u.Level = *p.Level
	}
	if p.Badges != nil {
		u.Badges = *p.Badges
	}
	if p.CompletedQuests != nil {
		u.CompletedQuests = *p.CompletedQuests
	}
	if p.ActiveQuests != nil {
		u.ActiveQuests = *p.ActiveQuests
	}
	if p.FarmProfile != nil {
		u.FarmProfile = p.FarmProfile
	}
}

type LeaderboardEntry struct {
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	Score           int    `json:"score"`
	Rank            int    `json:"rank"`
	Badge           string `json:"badge"`
	CompletedQuests int    `json:"completedQuests"`
}
