// Package respond builds prompts from the loaded documents and answers
// questions through the completion service.
package respond

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgallion1/cvtwin/internal/docstore"
	"github.com/dgallion1/cvtwin/internal/openai"
)

const sourceLabel = "CV Digital Twin (OpenAI)"

var (
	// ErrClientUnavailable reports missing completion credentials or an
	// unset client factory.
	ErrClientUnavailable = errors.New("completion client unavailable")

	// ErrCompletionFailed reports a failed completion-service call.
	ErrCompletionFailed = errors.New("completion call failed")
)

// Completer is the completion-service dependency.
type Completer interface {
	Complete(ctx context.Context, system, user string) (*openai.Completion, error)
}

// ClientFactory builds the completion client on first use. It runs at most
// once per process; the client it returns is reused afterwards.
type ClientFactory func() (Completer, error)

// Responder answers questions about the person described by the loaded
// documents. It never loads documents except through the Loader, and the
// completion client is constructed lazily.
type Responder struct {
	loader  *docstore.Loader
	store   *docstore.Store
	factory ClientFactory
	persona Persona
	limit   int
	log     *slog.Logger

	mu     sync.Mutex
	client Completer
}

func New(loader *docstore.Loader, store *docstore.Store, factory ClientFactory, persona Persona, log *slog.Logger) *Responder {
	return &Responder{
		loader:  loader,
		store:   store,
		factory: factory,
		persona: persona,
		limit:   maxDocChars,
		log:     log,
	}
}

// Answer runs the load-then-complete pipeline. Every failure is converted
// to an error Result at this boundary; nothing propagates as a raw fault.
//
// An explicit path always forces a fresh load, replacing any cached
// content, and never falls through to auto-discovery on failure.
func (r *Responder) Answer(ctx context.Context, message, explicitPath string) Result {
	if explicitPath != "" {
		if err := r.loader.LoadPath(explicitPath); err != nil {
			return errorResult("Failed to load CV: " + err.Error())
		}
	} else if !r.store.Loaded() {
		if err := r.loader.EnsureLoaded(); err != nil {
			return errorResult(loadErrorMessage(err))
		}
	}

	client, err := r.completer()
	if err != nil {
		return errorResult(err.Error())
	}

	snap := r.store.Snapshot()
	completion, err := client.Complete(ctx, r.persona.systemPrompt(), buildUserTurn(snap.Text, message, r.limit))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrCompletionFailed, err)
		r.log.Warn("completion failed", "error", err)
		return errorResult(fmt.Sprintf("Error calling OpenAI API: %v", err))
	}

	return Result{
		Message:  message,
		Response: completion.Text,
		Source:   sourceLabel,
		Model:    completion.Model,
	}
}

// completer returns the lazily constructed completion client. The missing
// credential check happens inside the factory, before any request exists,
// so no network call is attempted without a key.
func (r *Responder) completer() (Completer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}
	if r.factory == nil {
		return nil, fmt.Errorf("%w: no completion client configured", ErrClientUnavailable)
	}
	client, err := r.factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientUnavailable, err)
	}
	r.client = client
	return client, nil
}

func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, docstore.ErrNoDocumentFound):
		return "No CV loaded. Please provide a cv_path parameter or place your CV PDF in the docs/ directory."
	case errors.Is(err, docstore.ErrAllExtractionsFailed):
		return "Failed to load PDFs from docs directory: " + err.Error()
	default:
		return "Failed to load CV: " + err.Error()
	}
}
