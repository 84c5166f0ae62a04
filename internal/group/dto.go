package group

// GoalView is the goal shape embedded in group responses. The goal package
// fills it in so this package never has to import goal entities.
type GoalView struct {
	GoalID   string             `json:"goalId"`
	Type     string             `json:"type"`
	Title    string             `json:"title"`
	Activity string             `json:"activity"`
	Metric   string             `json:"metric"`
	Target   float64            `json:"target"`
	Progress map[string]float64 `json:"progress"`
}

type CreateGroupDTO struct {
	GroupName string   `json:"groupName"`
	Interval  Interval `json:"interval"`
}

type CreateGroupResponse struct {
	GroupID string `json:"groupId"`
}

type RemoveMemberDTO struct {
	GroupID string `json:"groupId"`
	UserID  string `json:"userId"`
}

type GroupResponse struct {
	GroupID   string            `json:"groupId"`
	GroupName string            `json:"groupName"`
	Users     map[string]string `json:"users"`
	Interval  Interval          `json:"interval"`
	Goals     []GoalView        `json:"goals"`
	Streak    int               `json:"streak"`
}
