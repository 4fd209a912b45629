package driver

import (
	"crypto/sha256"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := MakeCacheKey(sha256.Sum256([]byte("func main() -> Void {}\n")), 2, "x86_64-linux-gnu")
	in := &CachePayload{Path: "main.fl", ModuleName: "demo", Output: "define void @main() {\n}\n"}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out CachePayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if out.Output != in.Output || out.ModuleName != "demo" {
		t.Errorf("payload = %+v", out)
	}
}

func TestCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	var out CachePayload
	hit, err := cache.Get(MakeCacheKey([32]byte{}, 0, ""), &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("empty cache reported a hit")
	}
}

func TestCacheKeyVariesWithOptions(t *testing.T) {
	content := sha256.Sum256([]byte("source"))
	base := MakeCacheKey(content, 0, "")
	if MakeCacheKey(content, 1, "") == base {
		t.Error("opt level not folded into key")
	}
	if MakeCacheKey(content, 0, "aarch64-linux-gnu") == base {
		t.Error("target not folded into key")
	}
	if MakeCacheKey(content, 0, "") != base {
		t.Error("key not deterministic")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put(CacheKey{}, &CachePayload{}); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	hit, err := cache.Get(CacheKey{}, &CachePayload{})
	if hit || err != nil {
		t.Errorf("nil Get: hit=%v err=%v", hit, err)
	}
}
