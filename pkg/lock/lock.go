package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrNotObtained is returned when another runner holds the key.
var ErrNotObtained = errors.New("lock is held by another runner")

//go:generate mockgen -source=lock.go -destination=mock_lock.go -package=lock

type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lease, error)
}

// Lease is a held lock. Refresh pushes its expiry ttl into the future and
// fails with ErrNotObtained once the lock has expired or been released.
type Lease interface {
	Refresh(ctx context.Context, ttl time.Duration) error
	Release(ctx context.Context) error
}

// Redis shares the lock between every process pointed at the same server.
type Redis struct {
	client *redislock.Client
}

func NewRedis(rdb redis.UniversalClient) *Redis {
	return &Redis{client: redislock.New(rdb)}
}

func (l *Redis) Obtain(ctx context.Context, key string, ttl time.Duration) (Lease, error) {
	lk, err := l.client.Obtain(ctx, "lock:"+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrNotObtained
	}
	if err != nil {
		return nil, err
	}
	return &redisLease{lk: lk}, nil
}

type redisLease struct {
	lk *redislock.Lock
}

func (rl *redisLease) Refresh(ctx context.Context, ttl time.Duration) error {
	err := rl.lk.Refresh(ctx, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return ErrNotObtained
	}
	return err
}

func (rl *redisLease) Release(ctx context.Context) error {
	return rl.lk.Release(ctx)
}

// Local only excludes runners inside the current process. It is used when no
// redis address is configured.
type Local struct {
	mu   sync.Mutex
	held map[string]time.Time
}

func NewLocal() *Local {
	return &Local{held: make(map[string]time.Time)}
}

func (l *Local) Obtain(_ context.Context, key string, ttl time.Duration) (Lease, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.held[key]; ok && time.Now().Before(until) {
		return nil, ErrNotObtained
	}
	until := time.Now().Add(ttl)
	l.held[key] = until
	return &localLease{l: l, key: key, until: until}, nil
}

type localLease struct {
	l     *Local
	key   string
	until time.Time
}

func (ll *localLease) Refresh(_ context.Context, ttl time.Duration) error {
	ll.l.mu.Lock()
	defer ll.l.mu.Unlock()
	until, ok := ll.l.held[ll.key]
	if !ok || !until.Equal(ll.until) || time.Now().After(until) {
		return ErrNotObtained
	}
	ll.until = time.Now().Add(ttl)
	ll.l.held[ll.key] = ll.until
	return nil
}

func (ll *localLease) Release(context.Context) error {
	ll.l.mu.Lock()
	defer ll.l.mu.Unlock()
	if until, ok := ll.l.held[ll.key]; ok && until.Equal(ll.until) {
		delete(ll.l.held, ll.key)
	}
	return nil
}
