package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-web/internal/backend"
)

// The customer site and the "/appoint" business side log in independently
// and must never see each other's tokens, so every session key is
// namespaced by actor side.

const (
	NamespaceCustomer = "customer"
	NamespaceAppoint  = "appoint"

	appointPathPrefix = "/appoint"
)

var ErrNoSession = errors.New("session: not found")

const (
	sessionTTL = 24 * time.Hour
	visitorTTL = 365 * 24 * time.Hour
)

type Session struct {
	Token   string          `json:"token"`
	Actor   string          `json:"actor"` // customer | business | worker
	Profile backend.Profile `json:"profile"`
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// NamespaceFromPath resolves the session namespace for a request path.
func NamespaceFromPath(path string) string {
	if path == appointPathPrefix || strings.HasPrefix(path, appointPathPrefix+"/") {
		return NamespaceAppoint
	}
	return NamespaceCustomer
}

func (s *Store) Get(ctx context.Context, ns, sid string) (*Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(ns, sid)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Put(ctx context.Context, ns, sid string, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(ns, sid), data, sessionTTL).Err()
}

// Clear removes the session of one namespace only; a 401 on the business
// side must not log the customer side out.
func (s *Store) Clear(ctx context.Context, ns, sid string) error {
	return s.rdb.Del(ctx, sessionKey(ns, sid)).Err()
}

// Visitor returns the anonymous analytics identifier for a browser,
// generating and persisting one on first sight.
func (s *Store) Visitor(ctx context.Context, sid string) (string, error) {
	key := visitorKey(sid)

	id, err := s.rdb.Get(ctx, key).Result()
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && err != redis.Nil {
		return "", err
	}

	id = uuid.NewString()
	if err := s.rdb.Set(ctx, key, id, visitorTTL).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func sessionKey(ns, sid string) string {
	return fmt.Sprintf("session:%s:%s", ns, sid)
}

func visitorKey(sid string) string {
	return fmt.Sprintf("visitor:%s", sid)
}
