package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// File store constants.
const (
	fileBackend         = "file"
	directoryPermission = 0o750
	filePermission      = 0o640
)

// File implements KV with one zstd-compressed JSON document per namespace.
// Namespaces are loaded lazily and written atomically (tmp-write + rename).
// A missing or corrupt document reads as an empty namespace.
type File struct {
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder

	mu   sync.Mutex
	data map[string]map[string][]byte // namespace -> key -> value
}

// NewFile creates a file store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, directoryPermission); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd encoder: %w", ErrOpen, err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd decoder: %w", ErrOpen, err)
	}
	return &File{
		dir:     dir,
		encoder: encoder,
		decoder: decoder,
		data:    make(map[string]map[string][]byte),
	}, nil
}

// Get returns the value for key.
func (f *File) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(fileBackend, "get", float64(time.Since(start).Milliseconds()))
	}()
	metrics.RecordStoreOperation(fileBackend, "get")

	f.mu.Lock()
	defer f.mu.Unlock()

	ns := f.loadLocked(namespace)
	value, ok := ns[key]
	return value, ok, nil
}

// Set stores the value and persists the namespace document.
func (f *File) Set(_ context.Context, namespace, key string, value []byte) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(fileBackend, "set", float64(time.Since(start).Milliseconds()))
	}()
	metrics.RecordStoreOperation(fileBackend, "set")

	f.mu.Lock()
	defer f.mu.Unlock()

	ns := f.loadLocked(namespace)
	ns[key] = value
	if err := f.persistLocked(namespace); err != nil {
		metrics.RecordStoreError(fileBackend, "set")
		return err
	}
	return nil
}

// Delete removes key and persists the namespace document. The document is
// removed entirely once its last key is gone.
func (f *File) Delete(_ context.Context, namespace, key string) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(fileBackend, "delete", float64(time.Since(start).Milliseconds()))
	}()
	metrics.RecordStoreOperation(fileBackend, "delete")

	f.mu.Lock()
	defer f.mu.Unlock()

	ns := f.loadLocked(namespace)
	if _, ok := ns[key]; !ok {
		return nil
	}
	delete(ns, key)

	if len(ns) == 0 {
		delete(f.data, namespace)
		if err := os.Remove(f.path(namespace)); err != nil && !os.IsNotExist(err) {
			metrics.RecordStoreError(fileBackend, "delete")
			return fmt.Errorf("file delete %s: %w", namespace, err)
		}
		return nil
	}
	if err := f.persistLocked(namespace); err != nil {
		metrics.RecordStoreError(fileBackend, "delete")
		return err
	}
	return nil
}

// Close releases the zstd resources.
func (f *File) Close() error {
	_ = f.encoder.Close()
	f.decoder.Close()
	return nil
}

func (f *File) path(namespace string) string {
	return filepath.Join(f.dir, namespace+".json.zst")
}

// loadLocked returns the in-memory namespace map, reading the document from
// disk on first access. Missing or corrupt documents become empty maps.
// Caller holds f.mu.
func (f *File) loadLocked(namespace string) map[string][]byte {
	if ns, ok := f.data[namespace]; ok {
		return ns
	}

	ns := make(map[string][]byte)
	f.data[namespace] = ns

	raw, err := os.ReadFile(f.path(namespace))
	if err != nil {
		return ns
	}
	decompressed, err := f.decoder.DecodeAll(raw, nil)
	if err != nil {
		return ns
	}
	var doc map[string][]byte
	if err := json.Unmarshal(decompressed, &doc); err != nil {
		return ns
	}
	for k, v := range doc {
		ns[k] = v
	}
	return ns
}

// persistLocked writes the namespace document atomically. Caller holds f.mu.
func (f *File) persistLocked(namespace string) error {
	jsonData, err := json.Marshal(f.data[namespace])
	if err != nil {
		return fmt.Errorf("file marshal %s: %w", namespace, err)
	}
	compressed := f.encoder.EncodeAll(jsonData, make([]byte, 0, len(jsonData)/2))

	path := f.path(namespace)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, compressed, filePermission); err != nil {
		return fmt.Errorf("file write %s: %w", namespace, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("file rename %s: %w", namespace, err)
	}
	return nil
}
