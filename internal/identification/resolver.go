package identification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"discsub/internal/logging"
	"discsub/internal/normalize"
	"discsub/internal/redump"
	"discsub/internal/services"
	sub "discsub/internal/submission"
)

// Authenticator establishes a catalog session.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (redump.LoginResult, error)
}

// Options controls a Resolver.
type Options struct {
	Username string
	Password string
	// PullAllInformation also copies serial and edition from the catalog.
	PullAllInformation bool
}

// Result summarizes one resolution run.
type Result struct {
	RunID      string
	Outcome    services.Outcome
	Candidates CandidateSet
	MatchedID  int
	Message    string
}

// Resolver matches a dumped disc against the catalog and merges the matched
// entry into the submission record.
type Resolver struct {
	searcher Searcher
	fetcher  DetailFetcher
	auth     Authenticator
	opts     Options
	logger   *slog.Logger
	newRunID func() string
}

// NewResolver wires a resolver. auth may be nil when the catalog needs no
// session.
func NewResolver(searcher Searcher, fetcher DetailFetcher, auth Authenticator, opts Options, logger *slog.Logger) *Resolver {
	return &Resolver{
		searcher: searcher,
		fetcher:  fetcher,
		auth:     auth,
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "identification"),
		newRunID: uuid.NewString,
	}
}

// Resolve identifies rec from its hash manifest, or from its image SHA1 when
// no manifest is present, and fills it from the first fully matched candidate
// whose track count equals trackCount.
//
// The record is changed only once every fetch has succeeded. Cancellation
// yields OutcomeNotFound with the context error and leaves rec untouched.
// A rejected login yields OutcomeSkipped without error.
func (r *Resolver) Resolve(ctx context.Context, rec *sub.Record, trackCount int) (Result, error) {
	result := Result{RunID: r.newRunID()}
	ctx = services.WithRequestID(ctx, result.RunID)
	ctx = services.WithStage(ctx, "identification")
	logger := logging.WithContext(ctx, r.logger)

	if rec == nil {
		result.Outcome = services.OutcomeFailed
		return result, services.Wrap(services.ErrValidation, "identification", "resolve", "record is nil", nil)
	}

	if r.auth != nil {
		login, err := r.auth.Login(ctx, r.opts.Username, r.opts.Password)
		switch {
		case err != nil:
			return r.fail(ctx, result, err)
		case login == redump.LoginFailure:
			result.Outcome = services.OutcomeSkipped
			result.Message = "catalog login rejected"
			logger.Info("catalog lookup skipped", logging.String("reason", result.Message))
			return result, nil
		case login != redump.LoginSuccess:
			return r.fail(ctx, result, services.Wrap(services.ErrAuth, "identification", "login", login.String(), nil))
		}
	}

	candidates, err := r.match(ctx, rec)
	if err != nil {
		return r.fail(ctx, result, err)
	}
	result.Candidates = candidates
	result.Message = candidates.Summary()
	logger.Info("track matching complete",
		logging.Int("fully_matched", len(candidates.FullyMatched)),
		logging.Int("partially_matched", len(candidates.PartiallyMatched)),
	)

	var (
		matched int
		detail  *Detail
	)
	for _, id := range candidates.Sorted() {
		check, err := ValidateTrackCount(ctx, r.fetcher, id, trackCount)
		if err != nil {
			return r.fail(ctx, result, err)
		}
		if !check.Match {
			logger.Debug("candidate track count mismatch",
				logging.Int(logging.FieldDiscID, id),
				logging.Int("remote_tracks", check.Remote),
				logging.Int("local_tracks", trackCount),
			)
			continue
		}
		matched = id
		detail = ParseDetail(id, check.Page)
		break
	}

	if err := ctx.Err(); err != nil {
		return r.fail(ctx, result, err)
	}

	rec.PartiallyMatchedIDs = slices.Clone(candidates.PartiallyMatched)
	if detail == nil {
		rec.FullyMatchedID = nil
		result.Outcome = services.OutcomeNotFound
		logger.Info("no catalog entry matched", logging.String("summary", result.Message))
		return result, nil
	}

	Apply(rec, detail, r.opts.PullAllInformation)
	rec.FullyMatchedID = &matched
	rec.PartiallyMatchedIDs = slices.DeleteFunc(rec.PartiallyMatchedIDs, func(id int) bool { return id == matched })
	if len(rec.PartiallyMatchedIDs) == 0 {
		rec.PartiallyMatchedIDs = nil
	}

	result.MatchedID = matched
	result.Outcome = services.OutcomeResolved
	logging.WithContext(services.WithDiscID(ctx, matched), r.logger).Info("disc identified",
		logging.String("title", rec.CommonDiscInfo.Title),
		logging.Int("track_count", trackCount),
	)
	return result, nil
}

func (r *Resolver) match(ctx context.Context, rec *sub.Record) (CandidateSet, error) {
	manifest := rec.TracksAndWriteOffsets.ClrMameProData
	if manifest != "" {
		return MatchManifest(ctx, r.searcher, manifest)
	}
	if sum := rec.SizeAndChecksums.SHA1; sum != "" {
		return MatchHashes(ctx, r.searcher, []string{sum})
	}
	return CandidateSet{}, services.Wrap(services.ErrValidation, "identification", "match", "record has no hash manifest or sha1", nil)
}

func (r *Resolver) fail(ctx context.Context, result Result, err error) (Result, error) {
	result.Outcome = services.Classify(err)
	logger := logging.WithContext(ctx, r.logger)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		result.Message = "resolution cancelled"
		logger.Info("resolution cancelled", logging.Error(err))
	default:
		result.Message = fmt.Sprintf("resolution failed: %v", err)
		logging.ErrorWithContext(logger, "resolution failed", "resolution_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check catalog connectivity and the hash manifest"),
		)
	}
	return result, err
}

// Finalize applies the deterministic rewrites that follow identification:
// disc type reclassification, optional title normalization, and folding of
// tagged fragments into the comment and content text.
func Finalize(rec *sub.Record, normalizeTitles bool) {
	if rec == nil {
		return
	}
	normalize.Record(rec, normalizeTitles)
	rec.ProcessSpecialFields()
}
