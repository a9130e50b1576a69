// Package staticstore is an in-memory chemgine.DataStore backed by
// plain maps, for tests and the demo command. It never parses a file:
// data-file loading is out of scope (spec.md §1), so every molecule
// and reaction here is built from Go literals by the caller.
package staticstore

import "github.com/chemgine/chemgine"

// Store is a chemgine.DataStore populated entirely in memory.
type Store struct {
	molecules map[chemgine.MoleculeID]*chemgine.Molecule
	reactions map[chemgine.ReactionID]*chemgine.ReactionData
	network   *chemgine.ReactionNetwork
}

func New() *Store {
	return &Store{
		molecules: make(map[chemgine.MoleculeID]*chemgine.Molecule),
		reactions: make(map[chemgine.ReactionID]*chemgine.ReactionData),
		network:   chemgine.NewReactionNetwork(),
	}
}

// AddMolecule registers m under its own ID, overwriting any prior
// entry with the same ID.
func (s *Store) AddMolecule(m *chemgine.Molecule) {
	s.molecules[m.ID] = m
}

// AddReaction registers rule with the network, logging (via
// chemgine's own logger) and skipping it if it is an equivalent
// duplicate of an already-inserted rule.
func (s *Store) AddReaction(rule *chemgine.ReactionData) error {
	if err := s.network.Insert(rule); err != nil {
		return err
	}
	s.reactions[rule.ID] = rule
	return nil
}

func (s *Store) Molecule(id chemgine.MoleculeID) (*chemgine.Molecule, bool) {
	m, ok := s.molecules[id]
	return m, ok
}

func (s *Store) Reaction(id chemgine.ReactionID) (*chemgine.ReactionData, bool) {
	r, ok := s.reactions[id]
	return r, ok
}

func (s *Store) Network() *chemgine.ReactionNetwork { return s.network }
