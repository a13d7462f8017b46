// Package settings manages the single editable record behind the public
// site's cosmetic and contact options.
package settings

import (
	"sync"

	"loadup-backend/internal/store"
)

// Settings is the admin-editable singleton record. An empty social URL means
// the icon is not shown.
type Settings struct {
	LogoSize        int    `json:"logoSize"`
	DatenschutzText string `json:"datenschutzText"`
	InstagramURL    string `json:"instagramUrl"`
	TikTokURL       string `json:"tiktokUrl"`
	FacebookURL     string `json:"facebookUrl"`
}

// Patch carries a partial update. Nil fields keep their stored value.
type Patch struct {
	LogoSize        *int    `json:"logoSize"`
	DatenschutzText *string `json:"datenschutzText"`
	InstagramURL    *string `json:"instagramUrl"`
	TikTokURL       *string `json:"tiktokUrl"`
	FacebookURL     *string `json:"facebookUrl"`
}

const defaultDatenschutz = `Datenschutzerklärung

Wir nehmen den Schutz Ihrer persönlichen Daten sehr ernst.

1. Datenerhebung
Wir erheben nur die Daten, die für die Bearbeitung Ihrer Anfrage notwendig sind.

2. Datenspeicherung
Ihre Daten werden sicher gespeichert und nicht an Dritte weitergegeben.

3. Ihre Rechte
Sie haben das Recht auf Auskunft, Berichtigung und Löschung Ihrer Daten.

Bei Fragen zum Datenschutz kontaktieren Sie uns unter loadup313@gmail.com`

// Default returns the settings used before an admin ever saves anything.
func Default() Settings {
	return Settings{
		LogoSize:        48,
		DatenschutzText: defaultDatenschutz,
	}
}

// Repository reads and merges the settings record. No range or URL validation
// happens here; the editing surface owns that.
type Repository struct {
	mu    sync.Mutex
	store store.Store
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// Get returns the stored settings, or the defaults when the record is absent
// or unreadable.
func (r *Repository) Get() Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Read(r.store, store.KeySettings, Default())
}

// Update merges the patch into the stored settings field by field and returns
// the result.
func (r *Repository) Update(p Patch) (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := store.Read(r.store, store.KeySettings, Default())
	if p.LogoSize != nil {
		s.LogoSize = *p.LogoSize
	}
	if p.DatenschutzText != nil {
		s.DatenschutzText = *p.DatenschutzText
	}
	if p.InstagramURL != nil {
		s.InstagramURL = *p.InstagramURL
	}
	if p.TikTokURL != nil {
		s.TikTokURL = *p.TikTokURL
	}
	if p.FacebookURL != nil {
		s.FacebookURL = *p.FacebookURL
	}
	if err := store.Write(r.store, store.KeySettings, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
