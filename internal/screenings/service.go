package screenings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"screening-backend/internal/profiles"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/storage/object"
	"screening-backend/internal/shared/telemetry"
	"screening-backend/internal/textproc"
)

// TextExtractor turns a resume file into plain text.
type TextExtractor interface {
	ExtractText(fileName string, data []byte) (string, error)
}

type Service struct {
	extractor TextExtractor
	repo      Repository
	profiles  profiles.Repository
	store     object.ObjectStore
}

// NewService wires the batch pipeline. store may be nil, in which case
// uploads are not archived.
func NewService(extractor TextExtractor, repo Repository, profileRepo profiles.Repository, store object.ObjectStore) *Service {
	return &Service{extractor: extractor, repo: repo, profiles: profileRepo, store: store}
}

// Run scores every document against the active profile and stores the
// resulting batch. A document that fails extraction still yields a
// record, scored zero with the diagnostic attached, and never stops
// the rest of the batch.
func (s *Service) Run(ctx context.Context, docs []Document) (Batch, error) {
	if len(docs) == 0 {
		return Batch{}, errors.New("no documents submitted")
	}
	start := metrics.NowMillis()

	profile, err := s.profiles.Get(ctx)
	if err != nil && !errors.Is(err, profiles.ErrNotFound) {
		return Batch{}, fmt.Errorf("load profile: %w", err)
	}

	batch := Batch{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Records:   make([]Record, 0, len(docs)),
	}

	for _, doc := range docs {
		rec := s.screenOne(ctx, batch.ID, doc, profile)
		if rec.ExtractionError != "" {
			batch.Errors = append(batch.Errors, ExtractionFailure{
				FileName: rec.FileName,
				Error:    rec.ExtractionError,
			})
		}
		batch.Records = append(batch.Records, rec)
	}

	sort.SliceStable(batch.Records, func(i, j int) bool {
		return batch.Records[i].Score > batch.Records[j].Score
	})

	if err := s.repo.Put(ctx, batch); err != nil {
		return Batch{}, fmt.Errorf("store batch: %w", err)
	}

	metrics.IncBatch()
	metrics.ObserveBatchDurationMs(metrics.NowMillis() - start)
	telemetry.Info("screening.batch.complete", map[string]any{
		"batch_id": batch.ID,
		"records":  len(batch.Records),
	})
	return batch, nil
}

func (s *Service) screenOne(ctx context.Context, batchID string, doc Document, profile profiles.Profile) Record {
	rec := Record{
		ID:          uuid.NewString(),
		FileName:    doc.FileName,
		MatchedMust: []string{},
		MatchedGood: []string{},
		MissingMust: []string{},
	}

	text, err := s.extractor.ExtractText(doc.FileName, doc.Data)
	if err != nil {
		metrics.IncExtractionFailure()
		telemetry.Warn("screening.extract.failed", map[string]any{
			"batch_id":  batchID,
			"file_name": doc.FileName,
			"error":     err.Error(),
		})
		rec.Verdict = VerdictLow
		rec.MissingMust = append(rec.MissingMust, profile.MustHave...)
		rec.ExtractionError = err.Error()
		return rec
	}

	// The email is pulled from the raw text: normalization lowercases,
	// and addresses are reported as written in the resume.
	rec.Email = textproc.DetectEmail(text)

	normalized := textproc.Normalize(text)
	rec.MatchedMust, rec.MissingMust = Match(normalized, profile.MustHave)
	rec.MatchedGood, _ = Match(normalized, profile.GoodToHave)
	rec.Score = Score(len(rec.MatchedMust), len(profile.MustHave))
	rec.Verdict = Classify(rec.Score)
	metrics.IncRecordScored()

	s.archive(ctx, batchID, doc, text)
	return rec
}

// archive saves the original upload and its extracted text next to it.
// Failures are logged and otherwise ignored.
func (s *Service) archive(ctx context.Context, batchID string, doc Document, text string) {
	if s.store == nil {
		return
	}
	key, _, _, err := s.store.Save(ctx, "screenings/"+batchID, doc.FileName, bytes.NewReader(doc.Data))
	if err != nil {
		telemetry.Warn("screening.archive.failed", map[string]any{
			"batch_id":  batchID,
			"file_name": doc.FileName,
			"error":     err.Error(),
		})
		return
	}
	if _, err := s.store.SaveWithKey(ctx, key+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Warn("screening.archive.failed", map[string]any{
			"batch_id":  batchID,
			"file_name": doc.FileName,
			"error":     err.Error(),
		})
	}
}

// Get returns a stored batch by id.
func (s *Service) Get(ctx context.Context, id string) (Batch, error) {
	return s.repo.Get(ctx, id)
}
