package blobstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endlessListing sends the given objects, then keeps sending filler until
// its context is cancelled. done closes once the producer has exited.
func endlessListing(objects []minio.ObjectInfo, done chan struct{}) func(context.Context) <-chan minio.ObjectInfo {
	return func(ctx context.Context) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo)
		go func() {
			defer close(done)
			defer close(ch)
			for _, obj := range objects {
				select {
				case ch <- obj:
				case <-ctx.Done():
					return
				}
			}
			for {
				select {
				case ch <- minio.ObjectInfo{Key: "filler"}:
				case <-ctx.Done():
					return
				}
			}
		}()
		return ch
	}
}

func TestCollectNames(t *testing.T) {
	objects := []minio.ObjectInfo{{Key: "gazette/2026-10-02.pdf"}, {Key: "gazette/2026-10-09.pdf"}}

	list := func(ctx context.Context) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(objects))
		for _, obj := range objects {
			ch <- obj
		}
		close(ch)
		return ch
	}

	names, err := collectNames(context.Background(), "issues", list)
	require.NoError(t, err)
	assert.Equal(t, []string{"gazette/2026-10-02.pdf", "gazette/2026-10-09.pdf"}, names)
}

func TestCollectNames_ErrorReleasesListing(t *testing.T) {
	denied := errors.New("access denied")
	done := make(chan struct{})
	list := endlessListing([]minio.ObjectInfo{{Key: "gazette/2026-10-02.pdf"}, {Err: denied}}, done)

	names, err := collectNames(context.Background(), "issues", list)
	assert.ErrorIs(t, err, denied)
	assert.Contains(t, err.Error(), "issues")
	assert.Nil(t, names)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listing goroutine still running after the error")
	}
}
