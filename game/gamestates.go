package game

// PlayState is the lifecycle of a match
type PlayState int

const (
	NotStarted PlayState = iota
	InProgress
	Finished
)

var playStateNames = []string{"NotStarted", "InProgress", "Finished"}

func (s PlayState) String() string {
	return playStateNames[s]
}
