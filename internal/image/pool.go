package image

import "sync"

// Pool is a thread-safe pool for reusing PixelBuf instances.
//
// Pool groups buffers by their dimensions and format, so layers and blank
// images that are created and released every frame reuse their storage.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*PixelBuf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical buffer specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*PixelBuf),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed buffer from the pool or allocates a new one.
// Returns ErrInvalidDimensions or ErrInvalidFormat for unusable parameters.
func (p *Pool) Get(width, height int, format Format) (*PixelBuf, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	return NewPixelBuf(width, height, format)
}

// Put returns a buffer to the pool for reuse.
// If buf is nil or the bucket is at max capacity, the buffer is discarded.
// The caller must not use buf afterwards.
func (p *Pool) Put(buf *PixelBuf) {
	if buf == nil {
		return
	}

	key := poolKey{
		width:  buf.width,
		height: buf.height,
		format: buf.format,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		// Bucket full, discard buffer (GC will clean up)
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
