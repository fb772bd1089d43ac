package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"problem-board-go/internal/metrics"
	"problem-board-go/internal/model"
	"problem-board-go/internal/moderation"
	"problem-board-go/internal/repository"
)

// ErrEmptyProblem indicates a submission whose problem text is empty or
// whitespace-only
var ErrEmptyProblem = errors.New("problem description cannot be empty")

const defaultName = "Anonymous"

// SubmitRequest is the input of a problem submission
type SubmitRequest struct {
	Problem string
	Name    string
	Email   string
}

// SubmitResult is the outcome of a problem submission. A rejection by the
// moderation gate is a normal outcome, not an error.
type SubmitResult struct {
	Accepted bool
	Entry    *model.Entry
}

// EntryService orchestrates validation, moderation and storage
type EntryService struct {
	repo    *repository.Repository
	gate    moderation.Gate
	metrics *metrics.Metrics
}

// New creates a new EntryService
func New(repo *repository.Repository, gate moderation.Gate, m *metrics.Metrics) *EntryService {
	return &EntryService{
		repo:    repo,
		gate:    gate,
		metrics: m,
	}
}

// Submit runs a submission through validation, the moderation gate and,
// on accept, the store. Nothing is written unless the gate accepts.
func (s *EntryService) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	if s.metrics != nil {
		s.metrics.SubmissionCount.Inc()
	}

	if strings.TrimSpace(req.Problem) == "" {
		return SubmitResult{}, ErrEmptyProblem
	}

	logrus.WithField("problem", req.Problem).Info("Classifying submission")

	start := time.Now()
	verdict, err := s.gate.Classify(ctx, req.Problem)
	if s.metrics != nil {
		s.metrics.ModerationTime.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.ModerationFailures.Inc()
		}
		return SubmitResult{}, fmt.Errorf("classify submission: %w", err)
	}

	if verdict != moderation.Accept {
		if s.metrics != nil {
			s.metrics.RejectedCount.Inc()
		}
		logrus.WithField("problem", req.Problem).Info("Submission rejected by moderation gate")
		return SubmitResult{Accepted: false}, nil
	}

	entry := &model.Entry{
		Problem: req.Problem,
		Name:    req.Name,
		Email:   req.Email,
		UUID:    uuid.NewString(),
	}
	if entry.Name == "" {
		entry.Name = defaultName
	}

	if err := s.repo.Create(entry); err != nil {
		return SubmitResult{}, err
	}

	if s.metrics != nil {
		s.metrics.AcceptedCount.Inc()
	}
	logrus.WithFields(logrus.Fields{
		"id":   entry.ID,
		"uuid": entry.UUID,
	}).Info("Entry added successfully")

	return SubmitResult{Accepted: true, Entry: entry}, nil
}

// List returns all stored entries, newest first
func (s *EntryService) List(ctx context.Context) ([]model.Entry, error) {
	return s.repo.ListAll()
}

// Delete removes the entry with the given public token. Deleting an
// unknown token succeeds, matching idempotent delete semantics.
func (s *EntryService) Delete(ctx context.Context, token string) error {
	return s.repo.DeleteByPublicID(token)
}

// Dump returns every stored column for administrative inspection
func (s *EntryService) Dump(ctx context.Context) ([]model.Entry, error) {
	return s.repo.DumpAll()
}
