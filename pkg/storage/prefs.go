package storage

import (
	"fmt"

	"github.com/bytedance/sonic"
	bolt "go.etcd.io/bbolt"
)

// prefsBucket holds all preference entries.
var prefsBucket = []byte("prefs")

// Prefs is a durable key/value preference store backed by bbolt. It is the
// structured sibling of [Manager]'s JSON files: small settings that survive
// restarts without a file per key.
type Prefs struct {
	db *bolt.DB
}

// OpenPrefs opens (or creates) the preference database at path.
func OpenPrefs(path string) (*Prefs, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open prefs %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(prefsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init prefs %s: %w", path, err)
	}
	return &Prefs{db: db}, nil
}

// Close releases the underlying database.
func (p *Prefs) Close() error {
	return p.db.Close()
}

// Put stores a string value under key.
func (p *Prefs) Put(key, value string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(prefsBucket).Put([]byte(key), []byte(value))
	})
}

// Get returns the value stored under key. The second result is false when
// the key is absent.
func (p *Prefs) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := p.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(prefsBucket).Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	return value, found, err
}

// Delete removes the key. Deleting an absent key is not an error.
func (p *Prefs) Delete(key string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(prefsBucket).Delete([]byte(key))
	})
}

// Keys returns all stored keys in byte order.
func (p *Prefs) Keys() ([]string, error) {
	var keys []string
	err := p.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(prefsBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// PutJSON stores v encoded as JSON under key.
func (p *Prefs) PutJSON(key string, v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode pref %s: %w", key, err)
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(prefsBucket).Put([]byte(key), data)
	})
}

// GetJSON decodes the JSON value under key into out. The second result is
// false when the key is absent.
func (p *Prefs) GetJSON(key string, out any) (bool, error) {
	var data []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(prefsBucket).Get([]byte(key)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode pref %s: %w", key, err)
	}
	return true, nil
}
