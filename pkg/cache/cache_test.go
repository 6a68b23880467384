package cache

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/licensefinder/pkg/license"
	"github.com/matzehuels/licensefinder/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get before Set should miss")
	}
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit || string(data) != "value" {
		t.Errorf("Get() = %q, %v, %v; want value, true, nil", data, hit, err)
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestFileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("key")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "key"); hit || err != nil {
		t.Errorf("Get() = %v, %v; want miss without error", hit, err)
	}
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}
}

func TestFileCache_Prune(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	if err := c.Set(ctx, "forever", []byte("1"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "live", []byte("2"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "expired", []byte("3"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	corrupt := c.path("corrupt")
	if err := os.MkdirAll(filepath.Dir(corrupt), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(corrupt, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)

	n, err := c.Prune()
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Prune() = %d, want 2", n)
	}
	for _, k := range []string{"forever", "live"} {
		if _, hit, _ := c.Get(ctx, k); !hit {
			t.Errorf("%s should survive Prune", k)
		}
	}
	if _, err := os.Stat(corrupt); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCache_PruneMissingDir(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	if err := os.RemoveAll(c.Dir()); err != nil {
		t.Fatal(err)
	}
	if n, err := c.Prune(); err != nil || n != 0 {
		t.Errorf("Prune() = %d, %v; want 0, nil", n, err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}
}

func TestReportKey(t *testing.T) {
	dir := t.TempDir()
	pom := filepath.Join(dir, "pom.xml")
	if err := os.WriteFile(pom, []byte("<project/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	base := ReportKeyOpts{IgnoredGroups: []string{"test"}, Manifests: []string{"pom.xml"}}

	key := func(adapter, path string, opts ReportKeyOpts) string {
		t.Helper()
		k, err := ReportKey(adapter, path, opts)
		if err != nil {
			t.Fatalf("ReportKey() error = %v", err)
		}
		return k
	}

	k := key("maven", dir, base)
	if k != key("maven", dir, base) {
		t.Error("ReportKey should be deterministic")
	}

	variants := map[string]string{
		"adapter":        key("gradle", dir, base),
		"path":           key("maven", t.TempDir(), base),
		"groups":         key("maven", dir, ReportKeyOpts{IgnoredGroups: []string{"provided"}, Manifests: base.Manifests}),
		"group order":    key("maven", dir, ReportKeyOpts{IgnoredGroups: []string{"test", "system"}, Manifests: base.Manifests}),
		"include groups": key("maven", dir, ReportKeyOpts{IgnoredGroups: base.IgnoredGroups, IncludeGroups: true, Manifests: base.Manifests}),
	}
	for name, other := range variants {
		if other == k {
			t.Errorf("changing %s should change the key", name)
		}
	}

	if err := os.WriteFile(pom, []byte("<project><artifactId>x</artifactId></project>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if key("maven", dir, base) == k {
		t.Error("changing pom.xml should change the key")
	}

	module := filepath.Join(dir, "a", "pom.xml")
	if err := os.MkdirAll(filepath.Dir(module), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(module, []byte("<project/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := ReportKeyOpts{Manifests: []string{"pom.xml", filepath.Join("a", "pom.xml")}}
	k = key("maven", dir, nested)
	if err := os.WriteFile(module, []byte("<project><artifactId>a</artifactId></project>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if key("maven", dir, nested) == k {
		t.Error("changing a nested manifest should change the key")
	}
}

type recordingHooks struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnCacheHit(_ context.Context, k string) {
	h.record("hit:" + k)
}

func (h *recordingHooks) OnCacheMiss(_ context.Context, k string) {
	h.record("miss:" + k)
}

func (h *recordingHooks) OnCacheSet(_ context.Context, k string, _ int) {
	h.record("set:" + k)
}

func TestReports(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	fc, _ := NewFileCache(t.TempDir())
	r := NewReports(fc, time.Hour)

	if _, hit, err := r.Load(ctx, "k"); hit || err != nil {
		t.Fatalf("Load() = %v, %v; want miss", hit, err)
	}

	want := []license.Package{
		license.NewPackage("junit:junit", "4.11", "Eclipse Public License 1.0"),
		license.NewPackage("hamcrest-core", "1.3"),
	}
	if err := r.Store(ctx, "k", want); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	got, hit, err := r.Load(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Load() = %v, %v; want hit", hit, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	wantEvents := []string{"miss:report", "set:report", "hit:report"}
	if !reflect.DeepEqual(hooks.events, wantEvents) {
		t.Errorf("hook events = %v, want %v", hooks.events, wantEvents)
	}
}

func TestReports_UndecodableEntry(t *testing.T) {
	ctx := context.Background()
	fc, _ := NewFileCache(t.TempDir())
	if err := fc.Set(ctx, "k", []byte("not a package list"), 0); err != nil {
		t.Fatal(err)
	}

	r := NewReports(fc, 0)
	if _, hit, err := r.Load(ctx, "k"); hit || err != nil {
		t.Errorf("Load() = %v, %v; want miss", hit, err)
	}
	if _, hit, _ := fc.Get(ctx, "k"); hit {
		t.Error("undecodable entry should be deleted")
	}
}

func TestReports_NilCache(t *testing.T) {
	r := NewReports(nil, 0)
	ctx := context.Background()
	if err := r.Store(ctx, "k", nil); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if _, hit, _ := r.Load(ctx, "k"); hit {
		t.Error("nil cache should never hit")
	}
}
