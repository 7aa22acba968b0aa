package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	cloudengerrors "cloudeng.io/errors"
	"github.com/peterbourgon/diskv/v3"
)

const presetsDir = "presets"

var ErrPresetNotFound = errors.New("store: preset not found")

// Preset is a named field configuration.
type Preset struct {
	Name                string    `json:"name"`
	Format              string    `json:"format"`
	Locale              string    `json:"locale,omitempty"`
	Timezone            string    `json:"timezone,omitempty"`
	Density             string    `json:"density,omitempty"`
	RTL                 bool      `json:"rtl,omitempty"`
	RespectLeadingZeros bool      `json:"respectLeadingZeros,omitempty"`
	MinutesStep         int       `json:"minutesStep,omitempty"`
	ValueType           string    `json:"valueType,omitempty"`
	// Value is the last edited date in RFC 3339, empty for none.
	Value               string    `json:"value,omitempty"`
	Saved               time.Time `json:"saved"`
}

// Presets persists presets by name.
type Presets interface {
	Save(p *Preset) error
	Get(name string) (*Preset, error)
	List(ctx context.Context) ([]*Preset, error)
	Delete(name string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Presets store backed by diskv using the provided config.
func Load(cfg Config) (Presets, error) {
	if cfg == nil {
		fc, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = fc
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &presets{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
	}), basePath: basePath}, nil
}

type presets struct {
	d        *diskv.Diskv
	basePath string
}

func (p *presets) read(key string) (*Preset, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	var preset Preset
	if err := json.Unmarshal(val, &preset); err != nil {
		return nil, err
	}
	if preset.Name == "" {
		preset.Name = fromKey(key)
	}
	return &preset, nil
}

func (p *presets) Save(preset *Preset) error {
	name := strings.TrimSpace(preset.Name)
	if name == "" {
		return errors.New("store: preset name required")
	}
	if preset.Format == "" {
		return fmt.Errorf("store: preset %q: format required", name)
	}
	preset.Name = name
	if preset.Saved.IsZero() {
		preset.Saved = time.Now().UTC()
	}
	data, err := json.Marshal(preset)
	if err != nil {
		return err
	}
	if err := p.d.Write(toKey(name), data); err != nil {
		return fmt.Errorf("store: write preset %q: %w", name, err)
	}
	return nil
}

func (p *presets) Get(name string) (*Preset, error) {
	key := toKey(strings.TrimSpace(name))
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	preset, err := p.read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read preset %q: %w", name, err)
	}
	return preset, nil
}

// List returns every readable preset sorted by name. Presets that cannot
// be read are reported together in the error.
func (p *presets) List(ctx context.Context) ([]*Preset, error) {
	var errs cloudengerrors.M
	all := make([]*Preset, 0)
	for key := range p.d.Keys(ctx.Done()) {
		preset, err := p.read(key)
		if err != nil {
			errs.Append(fmt.Errorf("store: preset %q: %w", fromKey(key), err))
			continue
		}
		all = append(all, preset)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all, errs.Err()
}

func (p *presets) Delete(name string) error {
	key := toKey(strings.TrimSpace(name))
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return p.d.Erase(key)
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{presetsDir},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// toKey encodes a preset name into a file name safe key.
func toKey(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(name))
}

func fromKey(key string) string {
	name, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return fmt.Sprintf("fromKey: %s", err)
	}
	return string(name)
}
