// Package storage persists the registry of centers and adopters as TOML.
package storage

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/adoptaverse/pawmatch/internal/adopter"
	"github.com/adoptaverse/pawmatch/internal/geo"
	"github.com/adoptaverse/pawmatch/internal/shelter"
)

const (
	// RegistryDir is the dot-directory the registry lives in.
	RegistryDir = ".pawmatch"
	// RegistryFile is the registry file name inside RegistryDir.
	RegistryFile = "pawmatch.toml"
	// LedgerFile is the adoption ledger database, next to the registry.
	LedgerFile = "ledger.db"

	registryVersion = "1.0"
)

// Adopter kinds as stored in the registry.
const (
	KindBasic     = "basic"
	KindFlexible  = "flexible"
	KindFearful   = "fearful"
	KindAllergic  = "allergic"
	KindMedicated = "medicated"
	KindSluggish  = "sluggish"
)

// CenterRecord is one adoption center as stored on disk.
type CenterRecord struct {
	ID        string         `toml:"id"`
	Name      string         `toml:"name"`
	Inventory map[string]int `toml:"inventory"`
	Location  geo.Point      `toml:"location"`
}

// AdopterRecord is one adopter as stored on disk: a union over the
// adopter kinds, discriminated by Kind. Only the fields a kind uses are
// written.
type AdopterRecord struct {
	ID            string             `toml:"id"`
	Kind          string             `toml:"kind"`
	Name          string             `toml:"name"`
	Desired       string             `toml:"desired"`
	Considered    []string           `toml:"considered,omitempty"`
	Feared        []string           `toml:"feared,omitempty"`
	Allergic      []string           `toml:"allergic,omitempty"`
	Effectiveness map[string]float64 `toml:"effectiveness,omitempty"`
	Location      *geo.Point         `toml:"location,omitempty"`
}

// Registry is the full on-disk state: every known center and adopter.
type Registry struct {
	Version  string          `toml:"version"`
	Centers  []CenterRecord  `toml:"centers"`
	Adopters []AdopterRecord `toml:"adopters"`
}

// Load reads and parses a registry file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var reg Registry
	if err := toml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	return &reg, nil
}

// Save writes the registry, creating the parent directory if needed.
func Save(path string, reg *Registry) error {
	data, err := toml.Marshal(reg)
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	return nil
}

// Init creates a starter registry under baseDir and returns its path.
// Fails if one already exists there.
func Init(baseDir string) (string, error) {
	dir := filepath.Join(baseDir, RegistryDir)
	path := filepath.Join(dir, RegistryFile)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("registry already exists at %s", path)
	}

	if err := Save(path, starterRegistry()); err != nil {
		return "", err
	}
	return path, nil
}

// starterRegistry seeds a small demo world: three centers and the six
// adopter kinds.
func starterRegistry() *Registry {
	return &Registry{
		Version: registryVersion,
		Centers: []CenterRecord{
			{
				ID:        uuid.NewString(),
				Name:      "Place1",
				Inventory: map[string]int{"Cat": 12, "Dog": 2},
				Location:  geo.Point{X: 1, Y: 1},
			},
			{
				ID:        uuid.NewString(),
				Name:      "Place2",
				Inventory: map[string]int{"Cat": 12, "Lizard": 2},
				Location:  geo.Point{X: 3, Y: 5},
			},
			{
				ID:        uuid.NewString(),
				Name:      "Place3",
				Inventory: map[string]int{"Horse": 25, "Dog": 9},
				Location:  geo.Point{X: -2, Y: 10},
			},
		},
		Adopters: []AdopterRecord{
			{
				ID:            uuid.NewString(),
				Kind:          KindMedicated,
				Name:          "One",
				Desired:       "Cat",
				Allergic:      []string{"Dog", "Horse"},
				Effectiveness: map[string]float64{"Dog": 0.5, "Horse": 0.2},
			},
			{ID: uuid.NewString(), Kind: KindBasic, Name: "Two", Desired: "Cat"},
			{
				ID:         uuid.NewString(),
				Kind:       KindFlexible,
				Name:       "Three",
				Desired:    "Horse",
				Considered: []string{"Lizard", "Cat"},
			},
			{
				ID:      uuid.NewString(),
				Kind:    KindFearful,
				Name:    "Four",
				Desired: "Cat",
				Feared:  []string{"Dog"},
			},
			{
				ID:       uuid.NewString(),
				Kind:     KindSluggish,
				Name:     "Five",
				Desired:  "Cat",
				Location: &geo.Point{X: 1, Y: 2},
			},
			{
				ID:       uuid.NewString(),
				Kind:     KindAllergic,
				Name:     "Six",
				Desired:  "Cat",
				Allergic: []string{"Dog"},
			},
		},
	}
}

// Build turns the record into a live Center, restoring its persisted ID.
func (rec CenterRecord) Build() (*shelter.Center, error) {
	c, err := shelter.NewCenter(rec.Name, rec.Inventory, rec.Location)
	if err != nil {
		return nil, err
	}
	if rec.ID != "" {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("center %q has a malformed id: %w", rec.Name, err)
		}
		c.ID = id
	}
	return c, nil
}

// Build turns the record into a live adopter of the recorded kind. The
// random source only matters for sluggish adopters; nil means
// time-seeded.
func (rec AdopterRecord) Build(rng *rand.Rand) (adopter.Scorer, error) {
	set := func(s interface {
		adopter.Scorer
		SetID(uuid.UUID)
	}) (adopter.Scorer, error) {
		if rec.ID == "" {
			return s, nil
		}
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("adopter %q has a malformed id: %w", rec.Name, err)
		}
		s.SetID(id)
		return s, nil
	}

	switch rec.Kind {
	case KindBasic:
		a, err := adopter.New(rec.Name, rec.Desired)
		if err != nil {
			return nil, err
		}
		return set(a)
	case KindFlexible:
		a, err := adopter.NewFlexible(rec.Name, rec.Desired, rec.Considered...)
		if err != nil {
			return nil, err
		}
		return set(a)
	case KindFearful:
		a, err := adopter.NewFearful(rec.Name, rec.Desired, rec.Feared...)
		if err != nil {
			return nil, err
		}
		return set(a)
	case KindAllergic:
		a, err := adopter.NewAllergic(rec.Name, rec.Desired, rec.Allergic...)
		if err != nil {
			return nil, err
		}
		return set(a)
	case KindMedicated:
		a, err := adopter.NewMedicatedAllergic(rec.Name, rec.Desired, rec.Effectiveness, rec.Allergic...)
		if err != nil {
			return nil, err
		}
		return set(a)
	case KindSluggish:
		if rec.Location == nil {
			return nil, fmt.Errorf("sluggish adopter %q has no location", rec.Name)
		}
		a, err := adopter.NewSluggish(rec.Name, rec.Desired, *rec.Location, rng)
		if err != nil {
			return nil, err
		}
		return set(a)
	default:
		return nil, fmt.Errorf("unknown adopter kind %q for %q", rec.Kind, rec.Name)
	}
}

// BuildCenters builds every center in the registry.
func (r *Registry) BuildCenters() ([]*shelter.Center, error) {
	centers := make([]*shelter.Center, 0, len(r.Centers))
	for _, rec := range r.Centers {
		c, err := rec.Build()
		if err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}
	return centers, nil
}

// BuildAdopters builds every adopter in the registry.
func (r *Registry) BuildAdopters(rng *rand.Rand) ([]adopter.Scorer, error) {
	adopters := make([]adopter.Scorer, 0, len(r.Adopters))
	for _, rec := range r.Adopters {
		a, err := rec.Build(rng)
		if err != nil {
			return nil, err
		}
		adopters = append(adopters, a)
	}
	return adopters, nil
}

// FindCenter returns the first center record with the given name.
func (r *Registry) FindCenter(name string) (*CenterRecord, bool) {
	for i := range r.Centers {
		if r.Centers[i].Name == name {
			return &r.Centers[i], true
		}
	}
	return nil, false
}

// FindAdopter returns the first adopter record with the given name.
func (r *Registry) FindAdopter(name string) (*AdopterRecord, bool) {
	for i := range r.Adopters {
		if r.Adopters[i].Name == name {
			return &r.Adopters[i], true
		}
	}
	return nil, false
}
