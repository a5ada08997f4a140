package component

import "fmt"

// InputPolicy selects how a press of the opposite of the current direction
// is resolved.
type InputPolicy string

const (
	// PolicyLastPressed moves in the most recently pressed held direction.
	PolicyLastPressed InputPolicy = "last_pressed"
	// PolicyCancelOpposite stops the entity while opposing keys are both held.
	PolicyCancelOpposite InputPolicy = "cancel_opposite"
)

func ParseInputPolicy(s string) (InputPolicy, error) {
	switch InputPolicy(s) {
	case "", PolicyLastPressed:
		return PolicyLastPressed, nil
	case PolicyCancelOpposite:
		return PolicyCancelOpposite, nil
	}
	return "", fmt.Errorf("unknown input policy %q", s)
}

type Player struct {
	// MoveSpeed is the per-tick distance applied while any direction is held.
	MoveSpeed int
	Policy    InputPolicy
}

var PlayerComponent = NewComponent[Player]()

// DefaultMoveSpeed is the per-tick distance used when no Player component
// or prefab overrides it.
const DefaultMoveSpeed = 20

func DefaultPlayer() Player {
	return Player{MoveSpeed: DefaultMoveSpeed, Policy: PolicyLastPressed}
}
