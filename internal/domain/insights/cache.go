package insights

import "sync"

/*
	Process-lifetime caches for AI-backed render text. No eviction: cardinality
	is bounded by artist count (signatures) and one entry per calendar day
	(daily reasons). Overwrites are idempotent per content key, so a racing
	duplicate upstream call is harmless.
*/

type Cache struct {
	m sync.Map
}

func (c *Cache) Get(key string) (string, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (c *Cache) Set(key, value string) {
	c.m.Store(key, value)
}

// SignatureCache keys: "<artistID>:<bio>" — a bio edit invalidates naturally.
var SignatureCache = &Cache{}

// DailyReasonCache keys: "YYYY-MM-DD" date keys.
var DailyReasonCache = &Cache{}
