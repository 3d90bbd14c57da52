// Package store persists the last good snapshot of each remote collection in
// BoltDB so screens can render immediately on startup while a fresh load runs.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketBooks      = []byte("books")
	bucketLibrarians = []byte("librarians")
	bucketUsers      = []byte("users")
	bucketRecords    = []byte("borrow_records")
	bucketProfile    = []byte("profile")
)

var allBuckets = [][]byte{bucketBooks, bucketLibrarians, bucketUsers, bucketRecords, bucketProfile}

// SnapshotStore implements snapshot caching using BoltDB.
type SnapshotStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewSnapshotStore opens (or creates) the snapshot database under
// baseCacheDir, namespaced per server so switching servers never mixes data.
// An empty baseCacheDir yields a memory-only store.
func NewSnapshotStore(baseCacheDir, serverURL string) (*SnapshotStore, error) {
	if baseCacheDir == "" {
		// Memory-only mode (no persistence)
		return &SnapshotStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseCacheDir
	if serverURL != "" {
		dir = filepath.Join(baseCacheDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "libadmin.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SnapshotStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *SnapshotStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	// Read from BoltDB
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *SnapshotStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	// Update memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	// Write to BoltDB
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

// InvalidateAll wipes every cached snapshot.
func (s *SnapshotStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			b := tx.Bucket(bucket)
			if b == nil {
				continue
			}
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if err := b.Delete(k); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// snapshotCache adapts one bucket key to collection.Cache.
type snapshotCache[T collection.Entity] struct {
	store  *SnapshotStore
	bucket []byte
	key    string
}

func (c snapshotCache[T]) Save(items []T) error {
	return c.store.set(c.bucket, c.key, items)
}

func (c snapshotCache[T]) Load() ([]T, bool) {
	var items []T
	ok := c.store.get(c.bucket, c.key, &items)
	return items, ok
}

// === Collection caches ===

func (s *SnapshotStore) Books() collection.Cache[domain.Book] {
	return snapshotCache[domain.Book]{store: s, bucket: bucketBooks, key: "list"}
}

func (s *SnapshotStore) Librarians() collection.Cache[domain.Librarian] {
	return snapshotCache[domain.Librarian]{store: s, bucket: bucketLibrarians, key: "approved"}
}

func (s *SnapshotStore) PendingLibrarians() collection.Cache[domain.Librarian] {
	return snapshotCache[domain.Librarian]{store: s, bucket: bucketLibrarians, key: "pending"}
}

func (s *SnapshotStore) Users() collection.Cache[domain.User] {
	return snapshotCache[domain.User]{store: s, bucket: bucketUsers, key: "list"}
}

func (s *SnapshotStore) BorrowedBooks() collection.Cache[domain.BorrowRecord] {
	return snapshotCache[domain.BorrowRecord]{store: s, bucket: bucketRecords, key: "borrowed"}
}

func (s *SnapshotStore) ReturnedBooks() collection.Cache[domain.BorrowRecord] {
	return snapshotCache[domain.BorrowRecord]{store: s, bucket: bucketRecords, key: "returned"}
}

// === Profile ===

func (s *SnapshotStore) GetProfile(adminID int) (domain.Admin, bool) {
	var admin domain.Admin
	ok := s.get(bucketProfile, fmt.Sprintf("admin:%d", adminID), &admin)
	return admin, ok
}

func (s *SnapshotStore) SaveProfile(admin domain.Admin) error {
	return s.set(bucketProfile, fmt.Sprintf("admin:%d", admin.ID), admin)
}
