package goal

// GoalType is a closed discriminant: a goal is either owned by a single
// user or shared by the whole group.
type GoalType string

const (
	GoalTypeIndividual GoalType = "individual"
	GoalTypeGroup      GoalType = "group"
)

var AllGoalTypes = []GoalType{
	GoalTypeIndividual,
	GoalTypeGroup,
}

func (t GoalType) IsValid() bool {
	for _, v := range AllGoalTypes {
		if t == v {
			return true
		}
	}
	return false
}
