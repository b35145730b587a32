package service

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"mvpduo/internal/config"
	"mvpduo/internal/domain"
	"mvpduo/internal/logger"
	"mvpduo/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProfileSource tells where a loaded profile came from.
type ProfileSource string

const (
	ProfileStored  ProfileSource = "stored"
	ProfileCreated ProfileSource = "created"
	// ProfileDefault marks the in-memory fallback used when the store is unreachable.
	ProfileDefault ProfileSource = "default"
)

// ProfileResult is the profile a learner sees, with its provenance. Cause is set
// when Source is ProfileDefault.
type ProfileResult struct {
	Profile *domain.UserProfile
	Source  ProfileSource
	Cause   error
}

// StartSessionRequest selects the unit and track of a new session. An empty
// ExamType draws from every track; Division narrows within a track.
type StartSessionRequest struct {
	Unit     domain.Position
	ExamType domain.ExamTrack
	Division string
}

// AnswerResult reports one submitted answer and the session's running totals.
type AnswerResult struct {
	Correct       bool
	CorrectOption int
	Explanation   string
	Answered      int
	Total         int
	Mistakes      int
	CanStillPass  bool
	Complete      bool
}

// AdvanceResult is the persisted outcome of a passed session. SecondaryFailures
// lists best-effort writes that did not land; they never fail the advance.
type AdvanceResult struct {
	Profile           *domain.UserProfile
	Achievement       domain.Achievement
	SecondaryFailures []error
}

// CompletionResult is a finished session. Advance is nil for a failed session.
type CompletionResult struct {
	Outcome domain.SessionOutcome
	Advance *AdvanceResult
}

// LevelUnit is one cell of the level map.
type LevelUnit struct {
	domain.CurriculumUnit
	State domain.UnitState
}

// ProgressionService drives curriculum progression for one learner per call.
type ProgressionService interface {
	LoadProfile(ctx context.Context, userID, email string) (ProfileResult, error)
	StartSession(ctx context.Context, userID string, req StartSessionRequest) (*domain.QuizSession, error)
	ActiveSession(ctx context.Context, userID string) (*domain.QuizSession, error)
	SubmitAnswer(ctx context.Context, userID, sessionID, questionID string, option int) (AnswerResult, error)
	FinalizeSession(ctx context.Context, userID, sessionID string) (domain.SessionOutcome, error)
	CompleteSession(ctx context.Context, userID, sessionID string) (CompletionResult, error)
	AdvanceProgress(ctx context.Context, profile domain.UserProfile, unit domain.Position, outcome domain.SessionOutcome) (AdvanceResult, error)
	EnumerateUnits(kidem int, prefs domain.ExamPreferences) iter.Seq[domain.CurriculumUnit]
	LevelMap(ctx context.Context, userID string, level int) ([]LevelUnit, error)
	IsOnboardingComplete(ctx context.Context, userID string) (bool, error)
	OnboardingStatus(ctx context.Context, userID string) (domain.OnboardingStatus, error)
	SavePreferences(ctx context.Context, userID string, prefs domain.ExamPreferences) error
	Achievements(ctx context.Context, userID string) ([]domain.Achievement, error)
}

// ProgressionDeps are the collaborators of the progression service.
type ProgressionDeps struct {
	Profiles      domain.ProfileRepository
	Preferences   domain.PreferencesRepository
	Verifications domain.VerificationRepository
	Attempts      domain.AttemptRepository
	Achievements  domain.AchievementRepository
	Progress      domain.ProgressRepository
	Questions     QuestionSetCache
	Sessions      SessionStore
	Dispatcher    *Dispatcher

	// Rand orders session questions. Nil uses the shared generator; a non-nil
	// source must not be shared across goroutines.
	Rand *rand.Rand
	// Now defaults to time.Now.
	Now func() time.Time
}

type progressionServiceImpl struct {
	deps ProgressionDeps
	cfg  config.ProgressionConfig
}

// NewProgressionService creates a new instance of ProgressionService.
func NewProgressionService(deps ProgressionDeps, cfg config.ProgressionConfig) ProgressionService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &progressionServiceImpl{deps: deps, cfg: cfg}
}

// LoadProfile returns the stored profile, creating it on first use when email is
// known. Any failure falls back to the default profile so the learner is never blocked.
func (s *progressionServiceImpl) LoadProfile(ctx context.Context, userID, email string) (ProfileResult, error) {
	if userID == "" {
		return ProfileResult{}, domain.NewInvalidInputError("user id is required")
	}

	profile, err := s.deps.Profiles.GetUserProfile(ctx, userID)
	if err == nil {
		return ProfileResult{Profile: profile, Source: ProfileStored}, nil
	}
	if domain.HasCode(err, domain.ErrNotFound) && email != "" {
		created, errCreate := s.deps.Profiles.CreateUserProfile(ctx, userID, email)
		if errCreate == nil {
			logger.Get().Info("ProgressionService: created profile", zap.String("userID", userID))
			return ProfileResult{Profile: created, Source: ProfileCreated}, nil
		}
		err = errCreate
	}

	logger.Get().Warn("ProgressionService: using default profile", zap.String("userID", userID), zap.Error(err))
	return ProfileResult{
		Profile: domain.DefaultUserProfile(userID, email),
		Source:  ProfileDefault,
		Cause:   err,
	}, nil
}

// StartSession opens a session on req.Unit and makes it the user's active session,
// replacing any previous one.
func (s *progressionServiceImpl) StartSession(ctx context.Context, userID string, req StartSessionRequest) (*domain.QuizSession, error) {
	if err := req.Unit.Validate(); err != nil {
		return nil, err
	}

	status, prefs, err := s.readOnboarding(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.Complete() {
		return nil, domain.NewOnboardingIncompleteError(status.NextStep())
	}
	if req.ExamType != "" && !prefs.Enabled(req.ExamType) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("exam type %q is not enabled", req.ExamType))
	}

	loaded, err := s.LoadProfile(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	unit := domain.CurriculumUnit{Position: req.Unit, Tracks: prefs.EnabledTracks()}
	switch domain.StateOf(unit, loaded.Profile.Position()) {
	case domain.UnitActive:
	case domain.UnitUnlocked:
		if !s.cfg.AllowReplay {
			return nil, domain.NewUnitLockedError(req.Unit)
		}
	default:
		return nil, domain.NewUnitLockedError(req.Unit)
	}

	filter := domain.FilterFor(req.Unit, req.ExamType, req.Division)
	if req.ExamType == "" {
		filter = domain.FilterForTracks(req.Unit, prefs.EnabledTracks(), req.Division)
	}
	questions, err := s.deps.Questions.GetApprovedQuestions(ctx, filter)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewQuizSession(util.NewULID(), userID, req.Unit, req.ExamType,
		domain.ShuffleQuestions(questions, s.deps.Rand), s.deps.Now())
	if err != nil {
		return nil, err
	}
	if err := s.deps.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("ProgressionService: session started",
		zap.String("userID", userID),
		zap.String("sessionID", session.ID),
		zap.Stringer("unit", req.Unit),
		zap.Int("questions", session.Total()))
	return session, nil
}

// ActiveSession returns the user's in-progress session, or NOT_FOUND.
func (s *progressionServiceImpl) ActiveSession(ctx context.Context, userID string) (*domain.QuizSession, error) {
	return s.deps.Sessions.Get(ctx, userID)
}

// SubmitAnswer applies one answer. The attempt log is written in the background
// and its failure does not affect the result.
func (s *progressionServiceImpl) SubmitAnswer(ctx context.Context, userID, sessionID, questionID string, option int) (AnswerResult, error) {
	session, err := s.activeSession(ctx, userID, sessionID)
	if err != nil {
		return AnswerResult{}, err
	}

	question, _ := s.questionByID(session, questionID)
	answeredAt := s.deps.Now()
	correct, err := session.SubmitAnswer(questionID, option, answeredAt)
	if err != nil {
		return AnswerResult{}, err
	}
	if err := s.deps.Sessions.Save(ctx, session); err != nil {
		return AnswerResult{}, err
	}

	attempt := &domain.QuestionAttempt{
		UserID:      userID,
		QuestionID:  questionID,
		IsCorrect:   correct,
		Unit:        session.Unit,
		AttemptedAt: answeredAt,
	}
	s.deps.Dispatcher.Go(ctx, "record_attempt", func(ctx context.Context) error {
		return s.deps.Attempts.RecordAttempt(ctx, attempt)
	})

	return AnswerResult{
		Correct:       correct,
		CorrectOption: question.CorrectOption,
		Explanation:   question.Explanation,
		Answered:      session.Answered(),
		Total:         session.Total(),
		Mistakes:      session.Mistakes,
		CanStillPass:  session.CanStillPass(),
		Complete:      session.State() != domain.SessionInProgress,
	}, nil
}

// FinalizeSession evaluates a fully answered session and closes it.
func (s *progressionServiceImpl) FinalizeSession(ctx context.Context, userID, sessionID string) (domain.SessionOutcome, error) {
	session, err := s.activeSession(ctx, userID, sessionID)
	if err != nil {
		return domain.SessionOutcome{}, err
	}
	outcome, err := session.Finalize()
	if err != nil {
		return domain.SessionOutcome{}, err
	}
	s.closeSession(ctx, userID)
	return outcome, nil
}

// CompleteSession finalizes the session and, when it passed, advances the stored
// profile. The session stays open if the advance cannot be persisted, so the
// call can be retried without losing the result.
func (s *progressionServiceImpl) CompleteSession(ctx context.Context, userID, sessionID string) (CompletionResult, error) {
	session, err := s.activeSession(ctx, userID, sessionID)
	if err != nil {
		return CompletionResult{}, err
	}
	outcome, err := session.Finalize()
	if err != nil {
		return CompletionResult{}, err
	}
	if !outcome.Passed {
		s.closeSession(ctx, userID)
		return CompletionResult{Outcome: outcome}, nil
	}

	loaded, err := s.LoadProfile(ctx, userID, "")
	if err != nil {
		return CompletionResult{}, err
	}
	if loaded.Source == ProfileDefault {
		return CompletionResult{}, domain.NewPersistenceError("profile unavailable, cannot record progress", loaded.Cause)
	}
	advance, err := s.AdvanceProgress(ctx, *loaded.Profile, outcome.Unit, outcome)
	if err != nil {
		return CompletionResult{}, err
	}
	s.closeSession(ctx, userID)
	return CompletionResult{Outcome: outcome, Advance: &advance}, nil
}

// AdvanceProgress persists the advancement computed from a passed outcome. The
// profile write is authoritative; the progress mirror and the achievement are
// best-effort and reported in SecondaryFailures.
func (s *progressionServiceImpl) AdvanceProgress(ctx context.Context, profile domain.UserProfile, unit domain.Position, outcome domain.SessionOutcome) (AdvanceResult, error) {
	adv, err := domain.Advance(profile, unit, outcome)
	if err != nil {
		return AdvanceResult{}, err
	}

	updated, err := s.deps.Profiles.UpdateUserProfile(ctx, profile.ID, adv.ProfileUpdate())
	if err != nil {
		logger.Get().Error("ProgressionService: failed to persist advancement",
			zap.String("userID", profile.ID), zap.Stringer("unit", unit), zap.Error(err))
		return AdvanceResult{}, domain.NewPersistenceError("failed to update profile", err)
	}

	now := s.deps.Now()
	achievement := adv.Achievement
	achievement.ID = util.NewULID()
	achievement.CreatedAt = now
	mirror := domain.ProgressMirror{UserID: profile.ID, Unit: updated.Position(), CreatedAt: now, UpdatedAt: now}

	secondary := []<-chan error{
		s.deps.Dispatcher.Go(ctx, "upsert_progress", func(ctx context.Context) error {
			return s.deps.Progress.UpsertProgress(ctx, &mirror)
		}),
		s.deps.Dispatcher.Go(ctx, "create_achievement", func(ctx context.Context) error {
			a := achievement
			return s.deps.Achievements.CreateAchievement(ctx, &a)
		}),
	}
	var failures []error
	for _, done := range secondary {
		if err := <-done; err != nil {
			failures = append(failures, err)
		}
	}

	logger.Get().Info("ProgressionService: progress advanced",
		zap.String("userID", profile.ID),
		zap.Stringer("completed", unit),
		zap.Stringer("next", updated.Position()),
		zap.Int("pointsEarned", achievement.PointsEarned),
		zap.Int("secondaryFailures", len(failures)))

	return AdvanceResult{Profile: updated, Achievement: achievement, SecondaryFailures: failures}, nil
}

func (s *progressionServiceImpl) EnumerateUnits(kidem int, prefs domain.ExamPreferences) iter.Seq[domain.CurriculumUnit] {
	return domain.EnumerateUnits(kidem, prefs)
}

// LevelMap returns the units of one level of the learner's current kıdem with
// their state. It is empty until an exam track is chosen.
func (s *progressionServiceImpl) LevelMap(ctx context.Context, userID string, level int) ([]LevelUnit, error) {
	if level < 1 || level > domain.MaxLevel {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("level %d out of range 1..%d", level, domain.MaxLevel))
	}
	prefs, err := s.readPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	loaded, err := s.LoadProfile(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	current := loaded.Profile.Position()

	units := domain.UnitsForLevel(current.Kidem, level, prefs)
	result := make([]LevelUnit, 0, len(units))
	for _, u := range units {
		result = append(result, LevelUnit{CurriculumUnit: u, State: domain.StateOf(u, current)})
	}
	return result, nil
}

func (s *progressionServiceImpl) IsOnboardingComplete(ctx context.Context, userID string) (bool, error) {
	status, err := s.OnboardingStatus(ctx, userID)
	if err != nil {
		return false, err
	}
	return status.Complete(), nil
}

// OnboardingStatus reads email verification and exam preferences concurrently.
// A missing record reads as the step not being done.
func (s *progressionServiceImpl) OnboardingStatus(ctx context.Context, userID string) (domain.OnboardingStatus, error) {
	status, _, err := s.readOnboarding(ctx, userID)
	return status, err
}

// SavePreferences stores the learner's exam tracks; at least one is required.
func (s *progressionServiceImpl) SavePreferences(ctx context.Context, userID string, prefs domain.ExamPreferences) error {
	if !prefs.HasAnyTrack() {
		return domain.NewValidationError("select at least one exam type")
	}
	prefs.UserID = userID
	prefs.UpdatedAt = s.deps.Now()
	if err := s.deps.Preferences.UpsertExamPreferences(ctx, &prefs); err != nil {
		return domain.NewPersistenceError("failed to save exam preferences", err)
	}
	return nil
}

func (s *progressionServiceImpl) Achievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	achievements, err := s.deps.Achievements.ListAchievements(ctx, userID)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to list achievements", err)
	}
	return achievements, nil
}

func (s *progressionServiceImpl) readOnboarding(ctx context.Context, userID string) (domain.OnboardingStatus, domain.ExamPreferences, error) {
	var (
		status domain.OnboardingStatus
		prefs  domain.ExamPreferences
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		verified, err := s.deps.Verifications.IsEmailVerified(gctx, userID)
		if err != nil && !domain.HasCode(err, domain.ErrNotFound) {
			return domain.NewPersistenceError("failed to read email verification", err)
		}
		status.EmailVerified = verified
		return nil
	})
	g.Go(func() error {
		p, err := s.readPreferences(gctx, userID)
		if err != nil {
			return err
		}
		prefs = p
		status.HasExamTrack = p.HasAnyTrack()
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.OnboardingStatus{}, domain.ExamPreferences{}, err
	}
	return status, prefs, nil
}

func (s *progressionServiceImpl) readPreferences(ctx context.Context, userID string) (domain.ExamPreferences, error) {
	p, err := s.deps.Preferences.GetExamPreferences(ctx, userID)
	if err != nil {
		if domain.HasCode(err, domain.ErrNotFound) {
			return domain.ExamPreferences{UserID: userID}, nil
		}
		return domain.ExamPreferences{}, domain.NewPersistenceError("failed to read exam preferences", err)
	}
	return *p, nil
}

func (s *progressionServiceImpl) activeSession(ctx context.Context, userID, sessionID string) (*domain.QuizSession, error) {
	session, err := s.deps.Sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.ID != sessionID {
		return nil, domain.NewNotFoundError(fmt.Sprintf("session %s is not active", sessionID))
	}
	return session, nil
}

func (s *progressionServiceImpl) questionByID(session *domain.QuizSession, questionID string) (domain.Question, bool) {
	for _, q := range session.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return domain.Question{}, false
}

func (s *progressionServiceImpl) closeSession(ctx context.Context, userID string) {
	if err := s.deps.Sessions.Delete(ctx, userID); err != nil {
		logger.Get().Warn("ProgressionService: failed to close session", zap.String("userID", userID), zap.Error(err))
	}
}
