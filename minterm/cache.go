package minterm

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ieviev/runtime/charset"
)

// Cache memoizes classifiers by partition content. Matching engines rebuild
// the same partitions for recurring patterns, and the table fill is the
// expensive part, so identical partitions share one classifier. Safe for
// concurrent use; concurrent misses on the same partition may build the
// table twice, but every result is equivalent and immutable.
type Cache struct {
	entries *lru.Cache[uint64, *Classifier]
}

// NewCache returns a cache bounded to maxEntries classifiers, evicting the
// least recently used beyond that.
func NewCache(maxEntries int) (*Cache, error) {
	entries, err := lru.New[uint64, *Classifier](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("minterm: creating cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached classifier for the partition, building and
// inserting it on a miss. NewClassifier's partition contract applies.
func (c *Cache) Get(minterms []*charset.Set) *Classifier {
	key := hashMinterms(minterms)
	if cl, ok := c.entries.Get(key); ok {
		return cl
	}
	cl := NewClassifier(minterms)
	c.entries.Add(key, cl)
	return cl
}

// Len returns the number of cached classifiers.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// hashMinterms digests a partition's ranges. Every class is length-prefixed
// so range lists never alias across class boundaries: [{1-2},{4-5}] as one
// class and as two classes are different partitions.
func hashMinterms(minterms []*charset.Set) uint64 {
	d := xxhash.New()
	var buf [4]byte
	for _, m := range minterms {
		rs := m.Ranges()
		binary.LittleEndian.PutUint32(buf[:], uint32(len(rs)))
		d.Write(buf[:])
		for _, r := range rs {
			binary.LittleEndian.PutUint16(buf[:2], r.Lo)
			binary.LittleEndian.PutUint16(buf[2:], r.Hi)
			d.Write(buf[:])
		}
	}
	return d.Sum64()
}
