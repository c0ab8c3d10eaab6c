package core

import erand "golang.org/x/exp/rand"

type Policy interface {
	// SelectArm returns the next arm to pull. It must not mutate the
	// policy's statistics.
	SelectArm() int
	// Update incorporates the observed reward for the pulled arm.
	Update(arm int, reward int)
	Reset()
}

type PolicyConstructor interface {
	// NewPolicy creates a policy for a bandit with k arms, drawing its
	// exploration randomness from the given source.
	NewPolicy(k int, rng *erand.Rand) Policy
}
