package goal

type CreateGoalDTO struct {
	Type     GoalType `json:"type"`
	Title    string   `json:"title"`
	Activity string   `json:"activity"`
	Metric   string   `json:"metric"`
	Target   float64  `json:"target"`
}

type CreateGoalResponse struct {
	GoalID string `json:"goalId"`
}

type DeleteGoalDTO struct {
	GoalID string `json:"goalId"`
}

// ProgressPatch sets the requester's cumulative progress on one goal.
type ProgressPatch struct {
	GoalID   string  `json:"goalId"`
	Progress float64 `json:"progress"`
}
