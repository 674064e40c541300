package engine

import "time"

// System is one step of the fixed tick pipeline
// Systems run in ascending Priority and mutate the session in place
type System interface {
	Name() string
	Priority() int
	Update(s *Session, now time.Time)
}
