package catalog

import (
	"context"
	"os"
	"time"

	gcache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"

	"bookbinder/internal/media/ffprobe"
)

const defaultProbeCacheCapacity = 1024

// ProbeCache remembers ffprobe results across discoveries. An entry is
// reused only while the file's size and modification time are unchanged.
type ProbeCache struct {
	entries *gcache.Cache[string, probeEntry]
}

type probeEntry struct {
	size    int64
	modTime time.Time
	result  ffprobe.Result
}

// NewProbeCache returns an LRU cache holding at most capacity results.
func NewProbeCache(capacity int) *ProbeCache {
	if capacity <= 0 {
		capacity = defaultProbeCacheCapacity
	}
	return &ProbeCache{
		entries: gcache.New(gcache.AsLRU[string, probeEntry](lru.WithCapacity(capacity))),
	}
}

// Len reports the number of cached results.
func (p *ProbeCache) Len() int {
	return len(p.entries.Keys())
}

func (p *ProbeCache) inspect(ctx context.Context, prober ffprobe.Prober, path string) (ffprobe.Result, error) {
	info, statErr := os.Stat(path)
	if statErr == nil {
		if cached, ok := p.entries.Get(path); ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
			return cached.result, nil
		}
	}
	result, err := prober.Inspect(ctx, path)
	if err != nil {
		return ffprobe.Result{}, err
	}
	if statErr == nil {
		p.entries.Set(path, probeEntry{size: info.Size(), modTime: info.ModTime(), result: result})
	}
	return result, nil
}
