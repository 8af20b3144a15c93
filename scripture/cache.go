package scripture

import (
	"time"

	"github.com/FocuswithJustin/citerefs/internal/cache"
)

// matchCache memoizes BibleModel.Match results, keyed on input text.
type matchCache struct {
	ttl *cache.TTLCache[string, Passage]
}

func newMatchCache(ttl time.Duration) *matchCache {
	return &matchCache{ttl: cache.New[string, Passage](ttl)}
}

func (c *matchCache) get(s string) (Passage, bool) {
	return c.ttl.Get(s)
}

func (c *matchCache) set(s string, p Passage) {
	c.ttl.Set(s, p)
}
