package chemgine

import "errors"

// Sentinel errors for the fatal cases in spec §7's error table. A
// missing-collaborator or domain violation is fatal and must not be
// silently swallowed; a precondition violation (negative amount) is
// logged and ignored instead, so it has no sentinel here.
var (
	ErrUnknownMolecule  = errors.New("chemgine: unknown molecule id")
	ErrUnknownReaction  = errors.New("chemgine: unknown reaction id")
	ErrUnknownTemp      = errors.New("chemgine: reactor has an Unknown temperature")
	ErrNoOverflowTarget = errors.New("chemgine: bounded container has no overflow target")
	ErrDuplicateReaction = errors.New("chemgine: equivalent reaction rule already present in network")
)
