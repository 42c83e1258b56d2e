package image

import (
	"errors"
	"sync"
	"testing"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name         string
		maxPerBucket int
		wantMaxSize  int
	}{
		{
			name:         "zero means unlimited",
			maxPerBucket: 0,
			wantMaxSize:  0,
		},
		{
			name:         "positive limit",
			maxPerBucket: 5,
			wantMaxSize:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.maxPerBucket)
			if pool == nil {
				t.Fatal("NewPool returned nil")
			}
			if pool.maxSize != tt.wantMaxSize {
				t.Errorf("maxSize = %d, want %d", pool.maxSize, tt.wantMaxSize)
			}
			if pool.buckets == nil {
				t.Error("buckets map is nil")
			}
		})
	}
}

func TestSizeClass(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 64}, {1, 64}, {64, 64}, {65, 128}, {1000, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, tt := range tests {
		if got := sizeClass(tt.n); got != tt.want {
			t.Errorf("sizeClass(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPool_GetPut_Basic(t *testing.T) {
	pool := NewPool(4)

	buf, err := pool.Get(100, 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(buf) != 100 || cap(buf) != 128 {
		t.Fatalf("len/cap = %d/%d, want 100/128", len(buf), cap(buf))
	}
	for i := range buf {
		buf[i] = 0xAA
	}
	pool.Put(buf)

	// Same size class reuses the buffer, cleared.
	again, err := pool.Get(120, 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if &again[0] != &buf[0] {
		t.Error("buffer was not reused")
	}
	for i, b := range again {
		if b != 0 {
			t.Fatalf("byte %d = %#x after reuse, want 0", i, b)
		}
	}
}

func TestPool_Limit(t *testing.T) {
	pool := NewPool(4)
	if _, err := pool.Get(1<<20, 1<<10); !errors.Is(err, ErrLimit) {
		t.Errorf("Get over limit: err = %v, want ErrLimit", err)
	}
	if _, err := pool.Get(1<<10, 1<<10); err != nil {
		t.Errorf("Get at limit: %v", err)
	}
	if _, err := pool.Get(-1, 0); err == nil {
		t.Error("negative size accepted")
	}
}

func TestPool_MaxPerBucket(t *testing.T) {
	pool := NewPool(2)
	for range 5 {
		pool.Put(make([]byte, 0, 256))
	}
	if n := len(pool.buckets[256]); n != 2 {
		t.Errorf("bucket holds %d buffers, want 2", n)
	}
	pool.Put(make([]byte, 10, 100)) // not a size class
	if len(pool.buckets[100]) != 0 {
		t.Error("foreign buffer was pooled")
	}
	pool.Put(nil)
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(8)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for range 100 {
				buf, err := pool.Get(n*50+1, 0)
				if err != nil {
					t.Error(err)
					return
				}
				buf[0] = 1
				pool.Put(buf)
			}
		}(g)
	}
	wg.Wait()
}

func TestDefaultPool(t *testing.T) {
	buf, err := Get(10, 0)
	if err != nil || len(buf) != 10 {
		t.Fatalf("Get = %d bytes, %v", len(buf), err)
	}
	Put(buf)
}
