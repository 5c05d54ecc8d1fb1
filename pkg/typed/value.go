// Package typed provides a type-safe view of a single JSON value held in a
// string key-value store.
package typed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Undefined is the sentinel some hosts write when a value was serialized from
// an undefined variable. It is treated exactly like an absent key.
const Undefined = "undefined"

// KV is the subset of a key-value store needed by Value.
// core.Store satisfies it.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Value binds a Go type to one key of a KV store.
type Value[T any] struct {
	kv     KV
	key    string
	logger *slog.Logger
}

// NewValue creates a typed view of key. A nil logger discards output.
func NewValue[T any](kv KV, key string, logger *slog.Logger) *Value[T] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Value[T]{kv: kv, key: key, logger: logger}
}

// Key returns the bound key.
func (v *Value[T]) Key() string {
	return v.key
}

// Load reads and decodes the value.
// ok is false when the key is absent, holds the Undefined sentinel, or does not
// decode into T; in those cases the zero T is returned without an error.
// Only failures of the store itself are returned as errors.
func (v *Value[T]) Load(ctx context.Context) (T, bool, error) {
	var zero T

	raw, found, err := v.kv.Get(ctx, v.key)
	if err != nil {
		return zero, false, fmt.Errorf("failed to read %s: %w", v.key, err)
	}
	if !found {
		return zero, false, nil
	}

	val, ok := Decode[T](raw)
	if !ok && strings.TrimSpace(raw) != Undefined && strings.TrimSpace(raw) != "" {
		v.logger.Warn("ignoring malformed persisted value", "key", v.key)
	}
	return val, ok, nil
}

// Save encodes val and overwrites the key.
func (v *Value[T]) Save(ctx context.Context, val T) error {
	raw, err := Encode(val)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", v.key, err)
	}
	if err := v.kv.Set(ctx, v.key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", v.key, err)
	}
	v.logger.Debug("persisted value", "key", v.key, "bytes", len(raw))
	return nil
}

// Decode parses raw into T. It reports false for empty input, the Undefined
// sentinel and malformed JSON.
func Decode[T any](raw string) (T, bool) {
	var val T
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == Undefined {
		return val, false
	}
	if err := json.Unmarshal([]byte(trimmed), &val); err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Encode serializes val to its JSON form.
func Encode[T any](val T) (string, error) {
	data, err := json.Marshal(val)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
