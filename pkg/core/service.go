package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// CommandKind names a user action.
type CommandKind string

const (
	CmdSetTitle       CommandKind = "set_title"
	CmdSetDescription CommandKind = "set_description"
	CmdSetCategory    CommandKind = "set_category"
	CmdSaveDraft      CommandKind = "save_draft"
	CmdCopyToDraft    CommandKind = "copy_to_draft"

	CmdOpenEdit        CommandKind = "open_edit"
	CmdEditTitle       CommandKind = "edit_title"
	CmdEditDescription CommandKind = "edit_description"
	CmdEditCategory    CommandKind = "edit_category"
	CmdCommitEdit      CommandKind = "commit_edit"
	CmdCancelEdit      CommandKind = "cancel_edit"

	CmdOpenView  CommandKind = "open_view"
	CmdCloseView CommandKind = "close_view"

	CmdDelete         CommandKind = "delete"
	CmdAddCategory    CommandKind = "add_category"
	CmdSetQuery       CommandKind = "set_query"
	CmdClearQuery     CommandKind = "clear_query"
	CmdSelectCategory CommandKind = "select_category"
	CmdClick          CommandKind = "click"
)

// ClickTarget is the control a click on a note card originated from.
type ClickTarget string

const (
	TargetCard   ClickTarget = "card"
	TargetEdit   ClickTarget = "edit"
	TargetDelete ClickTarget = "delete"
)

// Command is one user action. Only the fields relevant to Kind are read.
type Command struct {
	Kind   CommandKind
	ID     NoteID
	Text   string
	Target ClickTarget
}

// EditState is the rendered state of the edit modal.
type EditState struct {
	Open   bool
	ID     NoteID
	Buffer Draft
}

// ViewState is the rendered state of the read-only modal.
type ViewState struct {
	Open bool
	Note Note
}

// View is everything a front end needs to render, derived from the service
// state after a command.
type View struct {
	Notes      []Note
	Empty      bool // no note matches the criteria
	Total      int  // size of the whole collection
	Categories []string
	Criteria   Criteria
	Draft      Draft
	Edit       EditState
	Viewing    ViewState
	Created    NoteID // id assigned by the command, 0 when it created nothing
}

// Config holds the optional collaborators of a Service.
type Config struct {
	Logger         *slog.Logger
	SeedCategories []string
	Clock          func() time.Time
}

// Service owns the note collection, the category registry and the UI sessions.
// User actions are applied one at a time through Dispatch.
type Service struct {
	mu         sync.Mutex
	store      Store
	notes      *NoteRepository
	categories *CategoryRegistry
	composer   *Composer
	edit       *EditSession
	view       ViewSession
	criteria   Criteria
	logger     *slog.Logger
}

// NewService creates a Service over store. Call Load before use.
func NewService(store Store, cfg Config) *Service {
	logger := orDiscard(cfg.Logger)
	notes := NewNoteRepository(store, NewIDGenerator(cfg.Clock), logger)
	categories := NewCategoryRegistry(store, cfg.SeedCategories, logger)

	return &Service{
		store:      store,
		notes:      notes,
		categories: categories,
		composer:   NewComposer(notes, categories),
		edit:       NewEditSession(notes),
		criteria:   Criteria{Category: AllCategories},
		logger:     logger,
	}
}

// Load reads both collections from the store.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.categories.Load(ctx); err != nil {
		return err
	}
	if err := s.notes.Load(ctx); err != nil {
		return err
	}
	s.composer.Reset()
	return nil
}

// Notes exposes the note repository.
func (s *Service) Notes() *NoteRepository { return s.notes }

// Categories exposes the category registry.
func (s *Service) Categories() *CategoryRegistry { return s.categories }

// Store returns the underlying store.
func (s *Service) Store() Store { return s.store }

// Close closes the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}

// View renders the current state without changing it.
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(0)
}

// Dispatch applies cmd and returns the re-derived view.
// Storage failures are returned together with the view; the in-memory change
// is kept.
func (s *Service) Dispatch(ctx context.Context, cmd Command) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("dispatch", "command", cmd.Kind, "id", cmd.ID)
	created, err := s.apply(ctx, cmd)
	return s.render(created), err
}

func (s *Service) apply(ctx context.Context, cmd Command) (NoteID, error) {
	switch cmd.Kind {
	case CmdSetTitle:
		s.composer.SetTitle(cmd.Text)
	case CmdSetDescription:
		s.composer.SetDescription(cmd.Text)
	case CmdSetCategory:
		s.composer.SetCategory(cmd.Text)
	case CmdSaveDraft:
		return s.composer.Save(ctx)
	case CmdCopyToDraft:
		if n, ok := s.notes.Get(cmd.ID); ok {
			s.composer.LoadFrom(n)
		}

	case CmdOpenEdit:
		if n, ok := s.notes.Get(cmd.ID); ok {
			s.edit.Open(n)
		}
	case CmdEditTitle:
		s.edit.SetTitle(cmd.Text)
	case CmdEditDescription:
		s.edit.SetDescription(cmd.Text)
	case CmdEditCategory:
		s.edit.SetCategory(cmd.Text)
	case CmdCommitEdit:
		original, _ := s.edit.Original()
		committed, err := s.edit.Commit(ctx)
		if committed {
			s.refreshViewing(original.ID)
		}
		return 0, err
	case CmdCancelEdit:
		s.edit.Cancel()

	case CmdOpenView:
		if n, ok := s.notes.Get(cmd.ID); ok {
			s.view.Open(n)
		}
	case CmdCloseView:
		s.view.Close()

	case CmdDelete:
		return 0, s.delete(ctx, cmd.ID)
	case CmdAddCategory:
		_, err := s.categories.Add(ctx, cmd.Text)
		return 0, err
	case CmdSetQuery:
		s.criteria.Query = cmd.Text
	case CmdClearQuery:
		s.criteria.Query = ""
	case CmdSelectCategory:
		s.criteria.Category = cmd.Text
		if s.criteria.Category == "" {
			s.criteria.Category = AllCategories
		}

	case CmdClick:
		// Edit and delete controls sit on the card; they must not also open the view.
		switch cmd.Target {
		case TargetEdit:
			return s.apply(ctx, Command{Kind: CmdOpenEdit, ID: cmd.ID})
		case TargetDelete:
			return s.apply(ctx, Command{Kind: CmdDelete, ID: cmd.ID})
		default:
			return s.apply(ctx, Command{Kind: CmdOpenView, ID: cmd.ID})
		}

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
	return 0, nil
}

func (s *Service) delete(ctx context.Context, id NoteID) error {
	if v, ok := s.view.Current(); ok && v.ID == id {
		s.view.Close()
	}
	if e, ok := s.edit.Original(); ok && e.ID == id {
		s.edit.Cancel()
	}
	return s.notes.Delete(ctx, id)
}

func (s *Service) refreshViewing(id NoteID) {
	v, ok := s.view.Current()
	if !ok || v.ID != id {
		return
	}
	if n, ok := s.notes.Get(id); ok {
		s.view.Open(n)
	}
}

func (s *Service) render(created NoteID) View {
	all := s.notes.List()
	visible := Filter(all, s.criteria)

	v := View{
		Notes:      visible,
		Empty:      len(visible) == 0,
		Total:      len(all),
		Categories: s.categories.List(),
		Criteria:   s.criteria,
		Draft:      s.composer.Draft(),
		Created:    created,
	}
	if orig, ok := s.edit.Original(); ok {
		buf, _ := s.edit.Buffer()
		v.Edit = EditState{Open: true, ID: orig.ID, Buffer: buf}
	}
	if n, ok := s.view.Current(); ok {
		v.Viewing = ViewState{Open: true, Note: n}
	}
	return v
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
