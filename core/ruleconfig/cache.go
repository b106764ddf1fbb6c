package ruleconfig

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// validatorCache caches compiled JSON Schema validators keyed by the
// SHA-256 hash of the schema document they were compiled from, so a
// config with the same embedded schema version never recompiles it.
type validatorCache struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

var globalValidatorCache = &validatorCache{cache: make(map[string]*jsonschema.Schema)}

func hashSchema(doc string) string {
	sum := sha256.Sum256([]byte(doc))
	return hex.EncodeToString(sum[:])
}

func (c *validatorCache) get(hash string) (*jsonschema.Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.cache[hash]
	return v, ok
}

func (c *validatorCache) put(hash string, v *jsonschema.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[hash] = v
}

// compiledValidator returns the cached *jsonschema.Schema for doc,
// compiling and caching it on first use.
func compiledValidator(doc string) (*jsonschema.Schema, error) {
	hash := hashSchema(doc)
	if v, ok := globalValidatorCache.get(hash); ok {
		return v, nil
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	url := "schema://munch/ruleconfig.json"
	if err := compiler.AddResource(url, strings.NewReader(doc)); err != nil {
		return nil, err
	}
	v, err := compiler.Compile(url)
	if err != nil {
		return nil, err
	}

	globalValidatorCache.put(hash, v)
	return v, nil
}
