// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreras/ganttboard/internal/config"
	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/llm"
	"github.com/nmoreras/ganttboard/internal/snapshot"
)

// ProjectLoadedMsg is sent when a project's feature collection is loaded.
type ProjectLoadedMsg struct {
	Features []feature.Feature
}

// ImportedMsg is sent when an LLM import produced new features.
type ImportedMsg struct {
	Features []feature.Feature
}

// SharedMsg is sent when a snapshot link has been copied to the clipboard.
type SharedMsg struct {
	Link string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ImportStartedMsg is sent when an LLM import starts.
type ImportStartedMsg struct{}

// LoadProject loads a project's feature collection. A project that does not
// exist yet loads as an empty board rather than an error.
func LoadProject(repo feature.Repository, projectID string) tea.Cmd {
	return func() tea.Msg {
		features, err := repo.LoadTasks(context.Background(), projectID)
		if errors.Is(err, feature.ErrProjectNotFound) {
			return ProjectLoadedMsg{Features: nil}
		}
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading project: %w", err)}
		}
		return ProjectLoadedMsg{Features: features}
	}
}

// Import creates a command that parses free-form text into features via the
// configured LLM provider.
func Import(cfg *config.Config, text string) tea.Cmd {
	return func() tea.Msg {
		client, err := llm.NewClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.BaseURL)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating LLM client: %w", err)}
		}

		features, err := llm.NewImporter(client).ParseText(context.Background(), text)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("importing: %w", err)}
		}

		return ImportedMsg{Features: features}
	}
}

// Share encodes the collection into a snapshot link and puts it on the
// system clipboard.
func Share(cfg *config.Config, features []feature.Feature) tea.Cmd {
	return func() tea.Msg {
		link := cfg.Share.BaseURL + snapshot.Encode(features)
		if err := clipboard.WriteAll(link); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying share link: %w", err)}
		}
		return SharedMsg{Link: link}
	}
}
