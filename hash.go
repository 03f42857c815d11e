package goident

import (
	"hash/fnv"
	"strconv"
)

// NoContextSentinel is the context-hash value used when no context bundle
// is present.
const NoContextSentinel = "none"

// contextBuckets bounds the context hash range. Short buckets keep cache
// keys readable; distinct contexts can collide, which only risks a stale
// cache hit, never a wrong oracle call.
const contextBuckets = 10000

// ContextHash maps a context bundle to its bounded hash bucket, rendered as
// decimal text. The empty context maps to NoContextSentinel. Equal context
// strings always produce equal hashes.
func ContextHash(context string) string {
	if context == "" {
		return NoContextSentinel
	}
	h := fnv.New32a()
	h.Write([]byte(context))
	return strconv.FormatUint(uint64(h.Sum32()%contextBuckets), 10)
}

// CacheKey builds the composite store key for a (format, context, phrase)
// triple: "<format>|<context-hash>|<phrase>".
func CacheKey(f OutputFormat, contextHash, phrase string) string {
	return string(f) + "|" + contextHash + "|" + phrase
}
