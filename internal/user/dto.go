package user

type CreateUserDTO struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginDTO struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// GoalSummary is the slice of a goal the profile response exposes.
type GoalSummary struct {
	GoalID   string             `json:"goalId"`
	Type     string             `json:"type"`
	Title    string             `json:"title"`
	Activity string             `json:"activity"`
	Metric   string             `json:"metric"`
	Target   float64            `json:"target"`
	Progress map[string]float64 `json:"progress"`
}

type ProfileResponse struct {
	UserID string        `json:"userId"`
	Name   string        `json:"name"`
	Groups []string      `json:"groups"`
	Goals  []GoalSummary `json:"goals"`
}
