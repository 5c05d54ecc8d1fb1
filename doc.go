// Package jot is the composition root of a small note-taking engine.
//
// A note has a title, a description and a category. Notes live in a
// key-value store as two JSON collections ("notes" and "categories"), so the
// same data can be kept in plain files, in SQLite or in memory.
//
// The domain (pkg/core) is a command dispatcher: front ends translate user
// actions into core.Command values and render the core.View returned by
// Service.Dispatch. The CLI (cmd/jot) and the terminal UI (pkg/tui) are both
// built this way.
//
// Usage:
//
//	svc, err := jot.New("./notes", jot.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer svc.Close()
//
//	svc.Dispatch(ctx, jot.Command{Kind: core.CmdSetTitle, Text: "Buy milk"})
//	view, err := svc.Dispatch(ctx, jot.Command{Kind: core.CmdSaveDraft})
package jot
