package store

import (
	"bytes"
	"compress/gzip"
	"container/heap"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"summarize/common"
	"summarize/types"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	artifactPrefix = "artifacts/"
	indexPrefix    = "index/"
	artifactSuffix = ".json.gz"
	indexSuffix    = ".json"

	// listPageSize bounds memory while walking the index.
	listPageSize = 1000
)

// ObjectAPI is the slice of object storage the store needs. *common.S3
// implements it; tests substitute an in-memory fake.
type ObjectAPI interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	List(ctx context.Context, bucket, prefix string, maxKeys int32, continuationToken *string) (*s3.ListObjectsV2Output, error)
}

// Store keeps summary artifacts gzip-compressed in object storage, with a
// parallel index of slim per-fingerprint markers so recency listings never
// touch artifact bodies. All durable state lives in the bucket; Store itself
// holds no mutable state and is safe for concurrent use.
type Store struct {
	objects ObjectAPI
	bucket  string
	prefix  string
}

// New creates a Store on top of objects. prefix optionally namespaces every
// key, e.g. "summaries/".
func New(objects ObjectAPI, bucket, prefix string) *Store {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Store{objects: objects, bucket: bucket, prefix: prefix}
}

func (s *Store) artifactKey(fingerprint string) string {
	return s.prefix + artifactPrefix + fingerprint + artifactSuffix
}

func (s *Store) indexKey(fingerprint string) string {
	return s.prefix + indexPrefix + fingerprint + indexSuffix
}

// Get returns the artifact stored under fingerprint. A missing artifact is
// types.ErrNotFound; one that exists but no longer decodes, or that carries
// a different fingerprint than its key, is types.ErrCorruptArtifact.
func (s *Store) Get(ctx context.Context, fingerprint string) (*types.SummaryArtifact, error) {
	body, err := s.objects.Get(ctx, s.bucket, s.artifactKey(fingerprint))
	if err != nil {
		if common.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrNotFound, fingerprint)
		}
		return nil, fmt.Errorf("fetch artifact %s: %w", fingerprint, err)
	}
	defer body.Close()

	artifact, err := decodeArtifact(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrCorruptArtifact, fingerprint, err)
	}
	if artifact.Fingerprint != fingerprint {
		return nil, fmt.Errorf("%w: object %s claims fingerprint %s", types.ErrCorruptArtifact, fingerprint, artifact.Fingerprint)
	}
	return artifact, nil
}

// Put stores the artifact and then its recency marker. Both writes are plain
// create-or-replace, so re-putting a fingerprint is a benign overwrite.
func (s *Store) Put(ctx context.Context, artifact types.SummaryArtifact) error {
	compressed, err := encodeArtifact(artifact)
	if err != nil {
		return fmt.Errorf("encode artifact %s: %w", artifact.Fingerprint, err)
	}
	if err := s.objects.Put(ctx, s.bucket, s.artifactKey(artifact.Fingerprint), bytes.NewReader(compressed), "application/gzip"); err != nil {
		return fmt.Errorf("store artifact %s: %w", artifact.Fingerprint, err)
	}

	marker, err := json.Marshal(types.RecencyEntry{
		Fingerprint: artifact.Fingerprint,
		Title:       artifact.Title,
		CreatedAt:   artifact.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode index marker %s: %w", artifact.Fingerprint, err)
	}
	// Artifact before marker: the index must never point at a missing artifact.
	if err := s.objects.Put(ctx, s.bucket, s.indexKey(artifact.Fingerprint), bytes.NewReader(marker), "application/json"); err != nil {
		return fmt.Errorf("store index marker %s: %w", artifact.Fingerprint, err)
	}
	return nil
}

// ListRecent returns up to limit index entries, most recent first. The index
// walk keeps only the limit newest candidates in memory and reads just those
// marker bodies. Listing or marker-read failures surface as
// types.ErrIndexUnavailable; a marker that vanished between listing and
// reading is skipped.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]types.RecencyEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	candidates := &candidateHeap{}
	var token *string
	for {
		page, err := s.objects.List(ctx, s.bucket, s.prefix+indexPrefix, listPageSize, token)
		if err != nil {
			return nil, fmt.Errorf("%w: list index: %v", types.ErrIndexUnavailable, err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || obj.LastModified == nil || !strings.HasSuffix(*obj.Key, indexSuffix) {
				continue
			}
			c := candidate{key: *obj.Key, modified: *obj.LastModified}
			if candidates.Len() < limit {
				heap.Push(candidates, c)
			} else if c.modified.After((*candidates)[0].modified) {
				(*candidates)[0] = c
				heap.Fix(candidates, 0)
			}
		}
		if page.NextContinuationToken == nil {
			break
		}
		token = page.NextContinuationToken
	}

	entries := make([]types.RecencyEntry, 0, candidates.Len())
	for _, c := range *candidates {
		raw, err := s.readMarker(ctx, c.key)
		if err != nil {
			if common.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("%w: read marker %s: %v", types.ErrIndexUnavailable, c.key, err)
		}
		var entry types.RecencyEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			// Undecodable marker; leave it out of the listing.
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *Store) readMarker(ctx context.Context, key string) ([]byte, error) {
	body, err := s.objects.Get(ctx, s.bucket, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func encodeArtifact(artifact types.SummaryArtifact) ([]byte, error) {
	raw, err := json.Marshal(artifact)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeArtifact(r io.Reader) (*types.SummaryArtifact, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	// Read to EOF so the gzip checksum is verified before unmarshalling.
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	if err := zr.Close(); err != nil {
		return nil, err
	}

	var artifact types.SummaryArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}

// candidate is an index key still to be read, ranked by object mtime.
type candidate struct {
	key      string
	modified time.Time
}

// candidateHeap is a min-heap on modification time: the root is the oldest
// candidate and the first evicted once the heap is full.
type candidateHeap []candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[i].modified.Before(h[j].modified) }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(candidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
