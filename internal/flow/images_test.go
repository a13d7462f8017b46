package flow

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"loadup-backend/internal/model"
)

func TestAcceptCount(t *testing.T) {
	tests := []struct {
		name    string
		current int
		batch   int
		want    int
		wantErr error
	}{
		{name: "empty session takes full batch", current: 0, batch: 3, want: 3},
		{name: "oversized batch truncated to free slots", current: 0, batch: 11, want: 10},
		{name: "partial slots", current: 7, batch: 5, want: 3},
		{name: "exactly fits", current: 4, batch: 6, want: 6},
		{name: "full session rejects whole batch", current: 10, batch: 1, wantErr: ErrImagesFull},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AcceptCount(tc.current, tc.batch)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeBatch_PreservesOrder(t *testing.T) {
	files := make([][]byte, 6)
	for i := range files {
		files[i] = []byte(fmt.Sprintf("file-%d-payload", i))
	}

	encoded, err := EncodeBatch(context.Background(), files)
	assert.NoError(t, err)
	assert.Len(t, encoded, 6)
	for i, e := range encoded {
		assert.True(t, strings.HasPrefix(e, "data:"), e)
		assert.Contains(t, e, ";base64,")
		// Round-trip check: the payload for slot i is file i, not whichever
		// finished encoding first.
		assert.Contains(t, e, encodeSuffix(files[i]))
	}
}

func encodeSuffix(b []byte) string {
	enc, _ := EncodeBatch(context.Background(), [][]byte{b})
	return enc[0][strings.Index(enc[0], ","):]
}

func TestEncodeBatch_EmptyFile(t *testing.T) {
	_, err := EncodeBatch(context.Background(), [][]byte{[]byte("ok"), nil})
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestSession_AddImages(t *testing.T) {
	var s Session
	assert.NoError(t, s.SelectService(model.ServiceTransport))

	batch := make([][]byte, 11)
	for i := range batch {
		batch[i] = []byte(fmt.Sprintf("image-%02d", i))
	}

	// Eleven files against an empty session: the first ten are accepted, the
	// excess is dropped without rejecting the batch.
	added, err := s.AddImages(context.Background(), batch)
	assert.NoError(t, err)
	assert.Equal(t, 10, added)
	assert.Len(t, s.Form.Images, 10)
	assert.Contains(t, s.Form.Images[0], encodeSuffix(batch[0]))
	assert.Contains(t, s.Form.Images[9], encodeSuffix(batch[9]))

	// Any batch against a full session is rejected entirely.
	added, err = s.AddImages(context.Background(), [][]byte{[]byte("one more")})
	assert.ErrorIs(t, err, ErrImagesFull)
	assert.Zero(t, added)
	assert.Len(t, s.Form.Images, 10)
}

func TestSession_AddImages_EmptyBatch(t *testing.T) {
	var s Session
	assert.NoError(t, s.SelectService(model.ServiceUmzug))
	added, err := s.AddImages(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, added)
}

func TestSession_RemoveImage(t *testing.T) {
	var s Session
	assert.NoError(t, s.SelectService(model.ServiceUmzug))
	_, err := s.AddImages(context.Background(), [][]byte{
		[]byte("first"), []byte("second"), []byte("third"),
	})
	assert.NoError(t, err)

	assert.True(t, s.RemoveImage(1))
	assert.Len(t, s.Form.Images, 2)
	assert.Contains(t, s.Form.Images[0], encodeSuffix([]byte("first")))
	assert.Contains(t, s.Form.Images[1], encodeSuffix([]byte("third")))

	assert.False(t, s.RemoveImage(5))
	assert.False(t, s.RemoveImage(-1))
}
