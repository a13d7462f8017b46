package flow

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// MaxImages is the upper bound of attached images per inquiry.
const MaxImages = 10

// ErrImagesFull rejects a whole batch when no upload slots remain.
var ErrImagesFull = errors.New("maximum of 10 images reached")

// ErrEmptyImage rejects a zero-byte upload.
var ErrEmptyImage = errors.New("empty image file")

// AcceptCount applies the slot-truncation policy: with current images already
// attached, a batch of batchSize files yields min(batchSize, remaining)
// accepted files. A batch arriving with no free slots is rejected entirely.
func AcceptCount(current, batchSize int) (int, error) {
	remaining := MaxImages - current
	if remaining <= 0 {
		return 0, ErrImagesFull
	}
	if batchSize > remaining {
		return remaining, nil
	}
	return batchSize, nil
}

// EncodeBatch encodes every file to a self-contained data URL concurrently
// and returns the results in input order. Nothing is returned until every
// file has finished encoding, so a batch commits atomically or not at all.
func EncodeBatch(ctx context.Context, files [][]byte) ([]string, error) {
	encoded := make([]string, len(files))
	g, _ := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if len(file) == 0 {
				return ErrEmptyImage
			}
			mime := http.DetectContentType(file)
			encoded[i] = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}

// AddImages accepts a selected batch into the session's form, truncating to
// the free slots and appending in selection order. Returns how many files
// were accepted.
func (s *Session) AddImages(ctx context.Context, files [][]byte) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}
	accept, err := AcceptCount(len(s.Form.Images), len(files))
	if err != nil {
		return 0, err
	}
	encoded, err := EncodeBatch(ctx, files[:accept])
	if err != nil {
		return 0, err
	}
	s.Form.Images = append(s.Form.Images, encoded...)
	return accept, nil
}

// RemoveImage deletes the image at index, preserving the order of the rest.
func (s *Session) RemoveImage(index int) bool {
	if index < 0 || index >= len(s.Form.Images) {
		return false
	}
	s.Form.Images = append(s.Form.Images[:index], s.Form.Images[index+1:]...)
	return true
}
