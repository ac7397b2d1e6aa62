package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Plan probes the source, picks a chunk length whose trial export fits
// maxBytes, and exports consecutive chunks covering the whole recording.
func (c *implChunker) Plan(ctx context.Context, path string, maxBytes int64) ([]Chunk, error) {
	total, err := c.encoder.Duration(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: %s has no duration", ErrDecode, path)
	}

	length, err := c.chooseLength(ctx, path, total, maxBytes)
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: %s chunk length %s", ErrSizing, filepath.Base(path), length)
	}
	c.logger.Info(ctx, "Chunk length %s for %s (total %s)", length, filepath.Base(path), total)

	return c.export(ctx, path, total, length)
}

func (c *implChunker) chooseLength(ctx context.Context, path string, total time.Duration, maxBytes int64) (time.Duration, error) {
	for _, d := range c.candidates {
		if d <= 0 {
			continue
		}
		ok, err := c.trialFits(ctx, path, total, d, maxBytes)
		if err != nil {
			return 0, err
		}
		if ok {
			return d, nil
		}
	}

	c.logger.Warn(ctx, "No preset chunk length fits, shrinking from %s", c.fallback)
	for d := c.fallback; d > 0; {
		ok, err := c.trialFits(ctx, path, total, d, maxBytes)
		if err != nil {
			return 0, err
		}
		if ok {
			return d, nil
		}
		if d-c.step <= 0 || c.step <= 0 {
			return 0, fmt.Errorf("%w: %s at %d bytes", ErrSizing, filepath.Base(path), maxBytes)
		}
		d -= c.step
	}
	return 0, fmt.Errorf("%w: %s at %d bytes", ErrSizing, filepath.Base(path), maxBytes)
}

// trialFits exports the first length of the source to a scratch file and
// compares its size against maxBytes. The scratch file never outlives the call.
func (c *implChunker) trialFits(ctx context.Context, path string, total, length time.Duration, maxBytes int64) (bool, error) {
	if length > total {
		length = total
	}
	trial := basePath(path) + "_test_chunk.m4a"
	defer os.Remove(trial)

	if err := c.encoder.Export(ctx, path, 0, length, trial); err != nil {
		return false, fmt.Errorf("%w: export trial chunk: %v", ErrDecode, err)
	}
	info, err := os.Stat(trial)
	if err != nil {
		return false, fmt.Errorf("stat trial chunk: %w", err)
	}

	c.logger.Debug(ctx, "Trial %s -> %d bytes (limit %d)", length, info.Size(), maxBytes)
	return info.Size() <= maxBytes, nil
}

func (c *implChunker) export(ctx context.Context, path string, total, length time.Duration) ([]Chunk, error) {
	base := basePath(path)
	var chunks []Chunk

	for i, start := 0, time.Duration(0); start < total; i, start = i+1, start+length {
		n := length
		if start+n > total {
			n = total - start
		}
		chunk := Chunk{
			Index:  i,
			Start:  start,
			Length: n,
			Path:   fmt.Sprintf("%s_part%d.m4a", base, i),
		}
		if err := c.encoder.Export(ctx, path, chunk.Start, chunk.Length, chunk.Path); err != nil {
			os.Remove(chunk.Path)
			Remove(chunks)
			return nil, fmt.Errorf("%w: export chunk %d: %v", ErrDecode, i, err)
		}
		c.logger.Debug(ctx, "Exported chunk %d: %s", i, chunk.Path)
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}

// Remove deletes chunk files, ignoring ones already gone.
func Remove(chunks []Chunk) {
	for _, ch := range chunks {
		os.Remove(ch.Path)
	}
}

func basePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
