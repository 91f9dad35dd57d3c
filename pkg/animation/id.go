package animation

import "github.com/google/uuid"

// AnimationId uniquely identifies an Animation within a manager.
type AnimationId = string

// TimelineId uniquely identifies an AnimationTimeline within a manager.
type TimelineId = string

// NewID generates an opaque, manager-unique identifier for an animation or
// timeline that was not given an explicit id by the caller.
//
// Grounded on Conceptual-Machines-magda-api's pervasive use of
// github.com/google/uuid for entity identifiers.
func NewID() string {
	return uuid.NewString()
}
