package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

const (
	schemaVersion  = 1
	persistTimeout = 3 * time.Second
)

const (
	keySession  = "session"
	keyCart     = "cart"
	keyProducts = "products"
)

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// persister writes one store's state under a single key. Anything it
// cannot read back (bad JSON, unknown fields, another schema version) is
// reported as absent so the store starts empty instead of failing.
type persister struct {
	store domain.StateStore
	key   string
	log   *logrus.Logger
}

func (p persister) load(v any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	raw, err := p.store.Load(ctx, p.key)
	if err != nil {
		if !errors.Is(err, domain.ErrStateNotFound) {
			p.log.Warnf("State: failed to load '%s', starting empty: %v", p.key, err)
		}
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		p.log.Warnf("State: unreadable '%s' record, treating as absent: %v", p.key, err)
		return false
	}
	if env.Version != schemaVersion {
		p.log.Warnf("State: '%s' record has schema version %d (want %d), treating as absent", p.key, env.Version, schemaVersion)
		return false
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(env.Data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		p.log.Warnf("State: '%s' record has an unexpected shape, treating as absent: %v", p.key, err)
		return false
	}
	return true
}

func (p persister) save(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		p.log.Errorf("State: failed to encode '%s': %v", p.key, err)
		return
	}
	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		p.log.Errorf("State: failed to encode '%s' envelope: %v", p.key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := p.store.Save(ctx, p.key, raw); err != nil {
		p.log.Errorf("State: failed to persist '%s': %v", p.key, err)
	}
}

func (p persister) clear() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := p.store.Delete(ctx, p.key); err != nil {
		p.log.Errorf("State: failed to delete '%s': %v", p.key, err)
	}
}
