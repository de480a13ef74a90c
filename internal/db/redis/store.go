package redis

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/rueidis"

	"github.com/kailas-cloud/padex/internal/db"
	"github.com/kailas-cloud/padex/internal/domain"
	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
)

// Find scans the collection's keys and evaluates the filter client-side.
func (s *Store) Find(ctx context.Context, collection string, f filter.Expression) ([]db.Document, error) {
	keys, err := s.scan(ctx, s.pattern(collection))
	if err != nil {
		return nil, opErr(db.OpFind, err)
	}

	docs := []db.Document{}
	for _, key := range keys {
		fields, err := s.jsonGet(ctx, key)
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue // deleted between SCAN and GET
			}
			return nil, opErr(db.OpFind, err)
		}
		if f.Matches(fields) {
			docs = append(docs, db.Document{ID: s.idFromKey(collection, key), Fields: fields})
		}
	}
	return docs, nil
}

// FindByID loads a single document. Only the empty string is a malformed
// identifier for this backend.
func (s *Store) FindByID(ctx context.Context, collection, id string) (db.Document, error) {
	if id == "" {
		return db.Document{}, domain.ErrInvalidID
	}

	fields, err := s.jsonGet(ctx, s.key(collection, id))
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return db.Document{}, domain.ErrNotFound
		}
		return db.Document{}, opErr(db.OpFindByID, err)
	}
	return db.Document{ID: id, Fields: fields}, nil
}

// Insert stores the fields under a fresh UUID key and returns the id.
func (s *Store) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", &db.Error{Op: db.OpInsert, Err: err}
	}

	id := uuid.NewString()
	cmd := s.client.B().Arbitrary("JSON.SET").Keys(s.key(collection, id)).Args("$", string(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return "", opErr(db.OpInsert, err)
	}
	return id, nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	keys, err := s.scan(ctx, s.pattern(collection))
	if err != nil {
		return 0, opErr(db.OpCount, err)
	}
	return int64(len(keys)), nil
}

// ListCollections derives collection names from the key namespace.
func (s *Store) ListCollections(ctx context.Context, limit int) ([]string, error) {
	keys, err := s.scan(ctx, s.prefix+"*")
	if err != nil {
		return nil, opErr(db.OpListCollections, err)
	}

	seen := map[string]bool{}
	for _, key := range keys {
		rest := strings.TrimPrefix(key, s.prefix)
		if name, _, ok := strings.Cut(rest, ":"); ok {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// jsonGet fetches a key's JSON document at the root path.
func (s *Store) jsonGet(ctx context.Context, key string) (map[string]any, error) {
	cmd := s.client.B().Arbitrary("JSON.GET").Keys(key).Args("$").Build()
	raw, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		return nil, err
	}

	// JSON.GET with a $ path wraps the document in an array.
	var wrapped []map[string]any
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil || len(wrapped) == 0 {
		var fields map[string]any
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, &db.Error{Op: db.OpDecode, Err: err}
		}
		return fields, nil
	}
	return wrapped[0], nil
}

// scan iterates SCAN until the cursor wraps.
func (s *Store) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		cmd := s.client.B().Scan().Cursor(cursor).Match(pattern).Count(256).Build()
		entry, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, err
		}
		keys = append(keys, entry.Elements...)
		cursor = entry.Cursor
		if cursor == 0 {
			break
		}
	}
	sort.Strings(keys)
	return keys, nil
}
