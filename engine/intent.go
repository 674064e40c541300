package engine

// Intent is the per-tick control input of one human car
type Intent struct {
	Left       bool
	Right      bool
	Accelerate bool
	Brake      bool
	Fire       bool
}

// Intents holds player 1 and player 2 input for one tick
type Intents [2]Intent

// IntentSource supplies the intents read before each tick
type IntentSource interface {
	Intents() Intents
}

// IntentFunc adapts a function to IntentSource
type IntentFunc func() Intents

func (f IntentFunc) Intents() Intents { return f() }
