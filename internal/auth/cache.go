package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/remetra/backend/internal/models"
)

// ProfileTTL bounds how stale a cached profile may get.
const ProfileTTL = 5 * time.Minute

// AccountCache is a read-through Redis cache for public account profiles,
// used on the bearer-token resolution path to keep repeated /me and
// middleware lookups off Postgres. Cached entries go through the User JSON
// encoding, so the password hash is never stored.
type AccountCache struct {
	rdb *redis.Client
}

func NewAccountCache(rdb *redis.Client) *AccountCache {
	return &AccountCache{rdb: rdb}
}

// Get returns the cached profile, or nil on a miss.
func (c *AccountCache) Get(ctx context.Context, username string) (*models.User, error) {
	val, err := c.rdb.Get(ctx, "account:"+username).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(val, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Set stores a profile under its username.
func (c *AccountCache) Set(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, "account:"+u.Username, data, ProfileTTL).Err()
}
