package studio

import (
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrSessionNotFound は存在しない、または期限切れのセッション ID を示します。
var ErrSessionNotFound = errors.New("session not found")

// Factory は新しいセッションを作成します。
type Factory func() (*Session, error)

// Store はメモリ上のセッション一覧です。永続化はしません。
// 最後のアクセスから ttl を過ぎたセッションは破棄されます。ttl が 0 以下なら期限なし。
type Store struct {
	sessions *cache.Cache
	factory  Factory
}

func NewStore(factory Factory, ttl time.Duration) *Store {
	if ttl <= 0 {
		return &Store{sessions: cache.New(cache.NoExpiration, 0), factory: factory}
	}
	return &Store{sessions: cache.New(ttl, ttl/2), factory: factory}
}

func (st *Store) Create() (*Session, error) {
	s, err := st.factory()
	if err != nil {
		return nil, err
	}
	st.sessions.SetDefault(s.ID(), s)
	return s, nil
}

// Get はセッションを返し、期限を延長します。
func (st *Store) Get(id string) (*Session, error) {
	v, ok := st.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s := v.(*Session)
	st.sessions.SetDefault(id, s)
	return s, nil
}

func (st *Store) Delete(id string) error {
	if _, ok := st.sessions.Get(id); !ok {
		return ErrSessionNotFound
	}
	st.sessions.Delete(id)
	return nil
}

// Len は保持中のセッション数です。掃除前の期限切れを含むことがあります。
func (st *Store) Len() int {
	return st.sessions.ItemCount()
}
