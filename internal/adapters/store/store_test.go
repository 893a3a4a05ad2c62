package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/store"
	. "github.com/smartystreets/goconvey/convey"
)

// backends under test share the KV contract.
func openBackends(t *testing.T) map[string]store.KV {
	t.Helper()

	sqlite, err := store.NewSQLite(filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	file, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlite.Close()
		_ = file.Close()
	})
	return map[string]store.KV{"sqlite": sqlite, "file": file}
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, kv := range openBackends(t) {
		Convey("Given the "+name+" backend", t, func() {
			Convey("When a key is absent", func() {
				_, ok, err := kv.Get(ctx, store.NamespaceImageCache, "missing")
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})

			Convey("When a value is set", func() {
				err := kv.Set(ctx, store.NamespaceImageCache, "Boeing 747", []byte("https://img.test/747.jpg"))
				So(err, ShouldBeNil)

				Convey("Then it reads back", func() {
					value, ok, err := kv.Get(ctx, store.NamespaceImageCache, "Boeing 747")
					So(err, ShouldBeNil)
					So(ok, ShouldBeTrue)
					So(string(value), ShouldEqual, "https://img.test/747.jpg")
				})

				Convey("And overwriting replaces it", func() {
					So(kv.Set(ctx, store.NamespaceImageCache, "Boeing 747", []byte("https://img.test/other.jpg")), ShouldBeNil)
					value, ok, _ := kv.Get(ctx, store.NamespaceImageCache, "Boeing 747")
					So(ok, ShouldBeTrue)
					So(string(value), ShouldEqual, "https://img.test/other.jpg")
				})

				Convey("And namespaces are isolated", func() {
					_, ok, err := kv.Get(ctx, store.NamespaceLeaderboard, "Boeing 747")
					So(err, ShouldBeNil)
					So(ok, ShouldBeFalse)
				})

				Convey("And deleting removes it", func() {
					So(kv.Delete(ctx, store.NamespaceImageCache, "Boeing 747"), ShouldBeNil)
					_, ok, _ := kv.Get(ctx, store.NamespaceImageCache, "Boeing 747")
					So(ok, ShouldBeFalse)
				})
			})

			Convey("When deleting an absent key", func() {
				So(kv.Delete(ctx, "nowhere", "nothing"), ShouldBeNil)
			})
		})
	}
}

func TestFileStoreDurability(t *testing.T) {
	ctx := context.Background()

	Convey("Given a file store with persisted data", t, func() {
		dir := t.TempDir()

		first, err := store.NewFile(dir)
		So(err, ShouldBeNil)
		So(first.Set(ctx, store.NamespaceImageCache, "Spitfire", []byte("https://img.test/spit.jpg")), ShouldBeNil)
		So(first.Close(), ShouldBeNil)

		Convey("When reopened", func() {
			second, err := store.NewFile(dir)
			So(err, ShouldBeNil)
			defer second.Close()

			Convey("Then the value survives the restart", func() {
				value, ok, err := second.Get(ctx, store.NamespaceImageCache, "Spitfire")
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(string(value), ShouldEqual, "https://img.test/spit.jpg")
			})
		})

		Convey("When the document on disk is corrupt", func() {
			path := filepath.Join(dir, store.NamespaceImageCache+".json.zst")
			So(os.WriteFile(path, []byte("not zstd at all"), 0o640), ShouldBeNil)

			reopened, err := store.NewFile(dir)
			So(err, ShouldBeNil)
			defer reopened.Close()

			Convey("Then the namespace reads as empty, never as an error", func() {
				_, ok, err := reopened.Get(ctx, store.NamespaceImageCache, "Spitfire")
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the last key of a namespace is deleted", func() {
			reopened, err := store.NewFile(dir)
			So(err, ShouldBeNil)
			defer reopened.Close()

			So(reopened.Delete(ctx, store.NamespaceImageCache, "Spitfire"), ShouldBeNil)

			Convey("Then the document itself is removed", func() {
				_, statErr := os.Stat(filepath.Join(dir, store.NamespaceImageCache+".json.zst"))
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})
	})
}

func TestSQLiteDurability(t *testing.T) {
	ctx := context.Background()

	Convey("Given a sqlite store with persisted data", t, func() {
		path := filepath.Join(t.TempDir(), "quiz.db")

		first, err := store.NewSQLite(path)
		So(err, ShouldBeNil)
		So(first.Set(ctx, store.NamespaceLeaderboard, "top", []byte(`[{"name":"ace","score":900}]`)), ShouldBeNil)
		So(first.Close(), ShouldBeNil)

		Convey("When reopened", func() {
			second, err := store.NewSQLite(path)
			So(err, ShouldBeNil)
			defer second.Close()

			value, ok, err := second.Get(ctx, store.NamespaceLeaderboard, "top")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(string(value), ShouldContainSubstring, "ace")
		})
	})
}
