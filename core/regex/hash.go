package regex

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Hash is a content digest of a Term, used to intern structurally
// identical terms onto a single pointer so the IR stays a DAG rather than
// a tree (spec §3: "equal sub-expressions may share the same pointer").
type Hash [blake2b.Size256]byte

// init pre-seeds the hashes of the two singletons constructed outside of
// intern, so every reachable Term has its hash computed before
// construction returns (see computeHash and intern below).
func init() {
	Empty.hash = computeHash(Empty)
	Epsilon.hash = computeHash(Epsilon)
}

// computeHash derives t's content digest from its own fields and its
// children's already-computed hashes. It never looks at t.hash itself, so
// it is safe to call before that field is considered valid.
func computeHash(t *Term) Hash {
	h, _ := blake2b.New256(nil)

	var buf [9]byte
	buf[0] = byte(t.kind)
	switch t.kind {
	case KindEmpty, KindEpsilon:
		h.Write(buf[:1])
	case KindRange:
		binary.BigEndian.PutUint32(buf[1:5], uint32(t.lo))
		binary.BigEndian.PutUint32(buf[5:9], uint32(t.hi))
		h.Write(buf[:9])
	case KindStar:
		h.Write(buf[:1])
		h.Write(t.a.hash[:])
	case KindConcat, KindUnion:
		h.Write(buf[:1])
		h.Write(t.a.hash[:])
		h.Write(t.b.hash[:])
	}

	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Hash returns t's content digest. The digest is computed once, eagerly,
// at construction time (see intern), before t is ever shared across
// goroutines, so this is a plain read with no locking and no data race
// even when multiple lexers built from concurrently-constructed Terms run
// in parallel.
func (t *Term) Hash() Hash {
	return t.hash
}

// interner deduplicates terms by content hash so that the smart
// constructors in term.go produce a shared DAG instead of a fresh tree on
// every call. Sharing is an optimization, not a correctness requirement:
// Equal always compares structurally regardless of pointer identity.
type interner struct {
	mu    sync.Mutex
	terms map[Hash]*Term
}

var globalInterner = &interner{terms: make(map[Hash]*Term)}

// intern returns t, or a previously constructed term with identical
// content if one exists. It computes t's hash eagerly, before t can be
// reached by any other goroutine, so Hash() is never racing a concurrent
// writer (spec §5: Terms are immutable and shared freely once built).
func intern(t *Term) *Term {
	t.hash = computeHash(t)

	globalInterner.mu.Lock()
	defer globalInterner.mu.Unlock()

	if existing, ok := globalInterner.terms[t.hash]; ok {
		if Equal(existing, t) {
			return existing
		}
		// Hash collision across structurally distinct terms: fall through
		// and keep t uninterned rather than risk aliasing two different
		// languages onto one pointer.
		return t
	}
	globalInterner.terms[t.hash] = t
	return t
}
