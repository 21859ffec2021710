package cache

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"go.uber.org/zap"

	"dhaqaaleeye/finance-bot/internal/logger"
	"dhaqaaleeye/finance-bot/internal/model/session"

	"github.com/bradfitz/gomemcache/memcache"
)

const (
	defaultBase   = 10
	sessionOption = "session"
)

// MemcacheClient backs the session store and the rendered-view cache when a
// memcached cluster is configured. Sessions survive bot restarts this way;
// the view cache saves re-fetching the whole record collection for a
// dashboard nobody changed.
type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID int64, option string) string {
	return strconv.FormatInt(userID, defaultBase) + ":" + option
}

func (mc *MemcacheClient) GetByID(_ context.Context, userID int64) (session.Session, error) {
	item, err := mc.client.Get(formatKey(userID, sessionOption))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return session.Session{}, nil
	}
	if err != nil {
		return session.Session{}, errors.Wrap(err, "get session")
	}

	var s session.Session
	if err = json.Unmarshal(item.Value, &s); err != nil {
		return session.Session{}, errors.Wrap(err, "unmarshalling session")
	}
	return s, nil
}

func (mc *MemcacheClient) SaveByID(_ context.Context, userID int64, s session.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshalling session")
	}
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, sessionOption),
		Value: raw,
	})
}

func (mc *MemcacheClient) DeleteByID(_ context.Context, userID int64) error {
	err := mc.client.Delete(formatKey(userID, sessionOption))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Wrap(err, "delete session")
	}
	return nil
}

func (mc *MemcacheClient) CacheView(userID int64, view, text string) error {
	logger.Info("cache view", zap.Int64("userID", userID), zap.String("view", view))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, view),
		Value: []byte(text),
	})
}

func (mc *MemcacheClient) GetView(userID int64, view string) (string, error) {
	item, err := mc.client.Get(formatKey(userID, view))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateViews(userID int64, views []string) error {
	logger.Info("invalidate views", zap.Int64("userID", userID))

	for _, view := range views {
		err := mc.client.Delete(formatKey(userID, view))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
