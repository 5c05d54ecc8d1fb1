package core

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/jot/pkg/typed"
)

// CategoryRegistry tracks the known category labels in insertion order.
// Labels are unique (exact, case-sensitive match) and never removed.
type CategoryRegistry struct {
	mu     sync.RWMutex
	labels []string
	seeds  []string
	value  *typed.Value[[]string]
	logger *slog.Logger
}

// NewCategoryRegistry creates a registry bound to the "categories" key of store.
// seeds are used until persisted data says otherwise; nil means DefaultCategories.
func NewCategoryRegistry(store Store, seeds []string, logger *slog.Logger) *CategoryRegistry {
	if len(seeds) == 0 {
		seeds = DefaultCategories
	}
	seeds = unique(seeds)
	logger = orDiscard(logger)
	return &CategoryRegistry{
		labels: slices.Clone(seeds),
		seeds:  seeds,
		value:  typed.NewValue[[]string](store, KeyCategories, logger),
		logger: logger,
	}
}

// Load replaces the labels with the persisted ones. Absent, malformed or empty
// data keeps the seeds.
func (c *CategoryRegistry) Load(ctx context.Context) error {
	labels, ok, err := c.value.Load(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	labels = unique(labels)
	if !ok || len(labels) == 0 {
		c.labels = slices.Clone(c.seeds)
		return nil
	}
	c.labels = labels
	c.logger.Debug("loaded categories", "count", len(labels))
	return nil
}

// Add registers label. Surrounding whitespace is trimmed. Blank labels and
// labels already present are ignored; added reports whether the set changed.
func (c *CategoryRegistry) Add(ctx context.Context, label string) (added bool, err error) {
	label = strings.TrimSpace(label)
	if label == "" || label == AllCategories {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.Contains(c.labels, label) {
		return false, nil
	}
	c.labels = append(c.labels, label)
	c.logger.Debug("added category", "category", label)

	if err := c.value.Save(ctx, c.labels); err != nil {
		return true, err
	}
	return true, nil
}

// List returns the labels in insertion order.
func (c *CategoryRegistry) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.labels)
}

// Has reports whether label is registered.
func (c *CategoryRegistry) Has(label string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.labels, label)
}

// Default returns the first label, used to reset drafts.
func (c *CategoryRegistry) Default() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.labels) == 0 {
		return ""
	}
	return c.labels[0]
}

// Len returns the number of labels.
func (c *CategoryRegistry) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.labels)
}

// unique drops blank and repeated labels, keeping first occurrences.
func unique(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" || slices.Contains(out, l) {
			continue
		}
		out = append(out, l)
	}
	return out
}
