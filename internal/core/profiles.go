package core

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// presetProfiles are the built-in, immutable field selections.
var presetProfiles = []ExportProfile{
	{
		ID:     "std",
		Name:   "Sync Standard",
		Fields: []string{"Id", "EANs", "Description", "Price", "Stock", "BrandName", "Image"},
		Preset: true,
	},
	{
		ID:     "market",
		Name:   "Marketing Full",
		Fields: []string{"Id", "EANs", "Description", "CompleteDescription", "BrandName", "Ingredientes", "Image", "Tags"},
		Preset: true,
	},
	{
		ID:     "full",
		Name:   "All 33 Fields",
		Fields: FieldIDs(),
		Preset: true,
	},
}

// PresetProfiles returns copies of the built-in profiles.
func PresetProfiles() []ExportProfile {
	out := make([]ExportProfile, len(presetProfiles))
	for i, p := range presetProfiles {
		out[i] = cloneProfile(p)
	}
	return out
}

// ProfileStore holds the preset profiles plus user-saved ones.
// It is safe for concurrent use. Saved profiles live in memory only.
type ProfileStore struct {
	mu     sync.RWMutex
	custom []ExportProfile
}

// NewProfileStore creates a store containing only the presets.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// List returns presets first, then saved profiles in creation order.
func (s *ProfileStore) List() []ExportProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := PresetProfiles()
	for _, p := range s.custom {
		out = append(out, cloneProfile(p))
	}
	return out
}

// Get returns the profile with the given id.
func (s *ProfileStore) Get(id string) (ExportProfile, error) {
	for _, p := range presetProfiles {
		if p.ID == id {
			return cloneProfile(p), nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.custom {
		if p.ID == id {
			return cloneProfile(p), nil
		}
	}
	return ExportProfile{}, ErrProfileNotFound
}

// Save creates a profile from the currently selected fields.
// The field list is copied, so later changes to the selection do not affect it.
func (s *ProfileStore) Save(name string, selected []string) (ExportProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ExportProfile{}, ErrProfileNameRequired
	}

	p := ExportProfile{
		ID:     uuid.New().String(),
		Name:   name,
		Fields: append([]string{}, selected...),
	}

	s.mu.Lock()
	s.custom = append(s.custom, p)
	s.mu.Unlock()

	return cloneProfile(p), nil
}

// Delete removes a saved profile. Presets cannot be deleted.
func (s *ProfileStore) Delete(id string) error {
	for _, p := range presetProfiles {
		if p.ID == id {
			return ErrPresetImmutable
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.custom {
		if p.ID == id {
			s.custom = append(s.custom[:i:i], s.custom[i+1:]...)
			return nil
		}
	}
	return ErrProfileNotFound
}

func cloneProfile(p ExportProfile) ExportProfile {
	p.Fields = append([]string{}, p.Fields...)
	return p
}
