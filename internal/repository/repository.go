package repository

import (
	"sync"

	"agriquest/pkg/kvstore"
	"agriquest/pkg/logger"

	"github.com/pkg/errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrDuplicateSubmission = errors.New("active submission already exists for this quest")
	ErrInvalidLanguage     = errors.New("unsupported language")
)

// Store keys. They mirror the persisted layout of the original client
// one-to-one, so an exported store file keeps the same shape.
const (
	keyCurrentUser = "current_user"
	keyUsers       = "users"
	keyQuests      = "quests"
	keySubmissions = "submissions"
	keyLanguage    = "selected_language"
)

// Repository bundles the per-entity collections persisted in one
// key-value store. The mutex serializes every read-modify-write cycle:
// each mutation reads a whole collection, splices it and writes it back,
// so two interleaved mutators would lose one update otherwise.
type Repository struct {
	store *kvstore.Store
	sync.Mutex
}

type Config struct {
	Path string `json:"path"`
}

func New(cfg Config) (*Repository, error) {
	store, err := kvstore.Open(cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open key-value store")
	}

	logger.Logger().Info("opened key-value store")

	return &Repository{store: store}, nil
}

// Clear wipes every key in the backing store.
func (r *Repository) Clear() error {
	r.Lock()
	defer r.Unlock()
	return r.store.Clear()
}
