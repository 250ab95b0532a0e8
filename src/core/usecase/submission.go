package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"jokeboard/src/core/domain"
	"jokeboard/src/core/ports"
)

// SubmissionService handles new-joke form submissions.
type SubmissionService struct {
	jokes ports.JokeRepository
	log   *slog.Logger
}

func NewSubmissionService(jokes ports.JokeRepository, log *slog.Logger) *SubmissionService {
	return &SubmissionService{jokes: jokes, log: log}
}

// Submit runs the authoritative validation and, if it passes, creates the
// joke. authorID must come from RequireUserID. The returned submission is
// either rejected or redirecting; a store failure is returned as an error.
func (s *SubmissionService) Submit(ctx context.Context, authorID string, raw domain.RawSubmission) (*domain.Submission, error) {
	sub := &domain.Submission{}
	sub.Begin()

	fields, ok := raw.Fields()
	if !ok {
		sub.RejectForm(domain.FormErrorMalformed)
		return sub, nil
	}

	if errs := domain.ValidateJokeFields(fields); errs.Any() {
		sub.RejectFields(errs, fields)
		return sub, nil
	}

	joke, err := s.jokes.CreateJoke(ctx, domain.NewJoke{
		Name:       fields.Name,
		Content:    fields.Content,
		JokesterID: authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("create joke: %w", err)
	}

	s.log.Info("joke created", "joke_id", joke.ID, "jokester_id", authorID)
	sub.Redirect(joke.ID)
	return sub, nil
}

// JokePreview is the would-be joke shown while a submission is in flight.
type JokePreview struct {
	Name    string
	Content string
}

// PreviewSubmission is a non-authoritative read of pending input: it reruns
// the field validators and reports whether a preview may be shown. It has no
// store access; Submit remains the only path that persists.
func PreviewSubmission(pending domain.RawSubmission) (*JokePreview, bool) {
	fields, ok := pending.Fields()
	if !ok {
		return nil, false
	}
	if domain.ValidateJokeFields(fields).Any() {
		return nil, false
	}
	return &JokePreview{Name: fields.Name, Content: fields.Content}, true
}
