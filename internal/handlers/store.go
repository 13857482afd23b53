package handlers

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/Payback159/x0go/internal/models"
	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	errNamespaceExists   = errors.New("namespace already exists")
	errNamespaceNotFound = errors.New("namespace not found")
	errInvalidInvite     = errors.New("invite code is invalid")
)

type namespaceRecord struct {
	id      string
	token   string
	active  bool
	created int64
}

// namespaceStore keeps namespaces and their tokens in memory.
type namespaceStore struct {
	mu          sync.RWMutex
	namespaces  map[string]*namespaceRecord
	invites     sets.Set[string]
	tokenLength int
	now         func() time.Time
}

func newNamespaceStore(cfg *models.Config) *namespaceStore {
	s := &namespaceStore{
		namespaces:  make(map[string]*namespaceRecord, len(cfg.Namespaces)),
		invites:     sets.New(cfg.InviteCodes...),
		tokenLength: cfg.TokenLength,
		now:         time.Now,
	}
	for _, seed := range cfg.Namespaces {
		s.namespaces[seed.ID] = &namespaceRecord{
			id:      seed.ID,
			token:   seed.Token,
			active:  seed.Active,
			created: s.now().Unix(),
		}
	}
	return s
}

// create registers id and returns it with a fresh token. When requireInvite is
// set the invite is consumed on success.
func (s *namespaceStore) create(id, invite string, requireInvite bool) (namespaceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.namespaces[id]; ok {
		return namespaceRecord{}, errNamespaceExists
	}
	if requireInvite {
		if !s.invites.Has(invite) {
			return namespaceRecord{}, errInvalidInvite
		}
		s.invites.Delete(invite)
	}

	rec := &namespaceRecord{
		id:      id,
		token:   rand.String(s.tokenLength),
		active:  true,
		created: s.now().Unix(),
	}
	s.namespaces[id] = rec
	return *rec, nil
}

func (s *namespaceStore) get(id string) (namespaceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.namespaces[id]
	if !ok {
		return namespaceRecord{}, errNamespaceNotFound
	}
	return *rec, nil
}

// authenticate reports whether token is the current token of id.
func (s *namespaceStore) authenticate(id, token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.namespaces[id]
	if !ok {
		return false
	}
	// Be careful to use constant time comparison to prevent timing attacks
	return subtle.ConstantTimeCompare([]byte(token), []byte(rec.token)) == 1
}

// resetToken replaces the token of id and returns the new one.
func (s *namespaceStore) resetToken(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.namespaces[id]
	if !ok {
		return "", errNamespaceNotFound
	}
	rec.token = rand.String(s.tokenLength)
	return rec.token, nil
}

func (s *namespaceStore) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.namespaces)
}
