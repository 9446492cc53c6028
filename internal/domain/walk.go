package domain

import "fmt"

const DefaultMaxWalkParticipants = 100

type Walk struct {
	Event
	Route             string `json:"route"`
	RegistrationPrice Cents  `json:"registration_price"`
	MaxParticipants   int    `json:"max_participants"`
	// Registered is derived from the number of issued bibs, it is not stored.
	Registered int `json:"registered"`
}

func (w Walk) SlotsAvailable() int {
	return w.MaxParticipants - w.Registered
}

// Register admits one participant on top of the Registered count.
func (w *Walk) Register() error {
	if w.Registered >= w.MaxParticipants {
		return fmt.Errorf("%w: walk %d is full", ErrCapacityExceeded, w.ID)
	}
	w.Registered++
	w.credit(w.RegistrationPrice)
	return nil
}
