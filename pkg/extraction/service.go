// Package extraction — оркестратор конвейера извлечения профиля.
// Один прогон: pending → processing → {completed | failed}. Любая ошибка
// парсера превращается в терминальный failed с сообщением и не всплывает
// к инициатору, запуск всегда fire-and-forget.
package extraction

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/resume-profiler/pkg/profile"
	"github.com/artem13815/resume-profiler/pkg/resume"
)

// Enhancer сливает извлечённый профиль в анкету владельца. Его отказ
// логируется и проглатывается, статус извлечения не трогает.
type Enhancer interface {
	Enhance(ctx context.Context, userID uuid.UUID, extracted profile.Profile) error
}

const defaultMinTextChars = 50

type Service struct {
	repo     resume.Repository
	parsers  map[profile.Strategy]profile.Parser
	enhancer Enhancer
	log      *zap.Logger
	queue    *workQueue
	minChars int
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

type Options struct {
	Workers      int
	QueueSize    int
	RunTimeout   time.Duration
	MinTextChars int
}

func NewService(
	repo resume.Repository,
	heuristic profile.Parser,
	llm profile.Parser,
	enhancer Enhancer,
	log *zap.Logger,
	opts Options,
) *Service {
	minChars := opts.MinTextChars
	if minChars <= 0 {
		minChars = defaultMinTextChars
	}
	s := &Service{
		repo: repo,
		parsers: map[profile.Strategy]profile.Parser{
			profile.StrategyHeuristic: heuristic,
			profile.StrategyLLM:       llm,
		},
		enhancer: enhancer,
		log:      log,
		minChars: minChars,
		now:      time.Now,
		inFlight: make(map[uuid.UUID]struct{}),
	}
	s.queue = newWorkQueue(opts.Workers, opts.QueueSize, opts.RunTimeout, log)
	return s
}

// Start ставит прогон в очередь и сразу возвращается. Пустая стратегия
// означает эвристику. Второй запуск по тому же резюме, пока первый в полёте,
// отклоняется с ErrAlreadyRunning.
func (s *Service) Start(ctx context.Context, resumeID uuid.UUID, strategy profile.Strategy) error {
	if strategy == "" {
		strategy = profile.StrategyHeuristic
	}
	if _, ok := s.parsers[strategy]; !ok {
		return &profile.ConfigError{Reason: "unknown extraction strategy " + string(strategy)}
	}

	s.mu.Lock()
	if _, busy := s.inFlight[resumeID]; busy {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.inFlight[resumeID] = struct{}{}
	s.mu.Unlock()

	// pending видно читателям сразу, до того как воркер возьмёт задачу
	pending := profile.Record{
		ResumeID:    resumeID,
		Status:      profile.StatusPending,
		Strategy:    strategy,
		ExtractedAt: s.now().UTC(),
	}
	pending.Profile.Normalize()
	if err := s.repo.SaveExtraction(ctx, pending); err != nil {
		s.release(resumeID)
		return err
	}

	err := s.queue.enqueue(job{
		resumeID: resumeID.String(),
		run: func(runCtx context.Context) {
			defer s.release(resumeID)
			s.run(runCtx, resumeID, strategy)
		},
	})
	if err != nil {
		s.release(resumeID)
		return err
	}
	s.log.Info("extraction queued",
		zap.String("resumeId", resumeID.String()),
		zap.String("strategy", string(strategy)))
	return nil
}

// Reprocess запускает повторное извлечение с явной стратегией. Результат
// целиком заменяет предыдущую запись.
func (s *Service) Reprocess(ctx context.Context, resumeID uuid.UUID, strategy profile.Strategy) error {
	return s.Start(ctx, resumeID, strategy)
}

// Record возвращает текущую запись извлечения для отображения.
func (s *Service) Record(ctx context.Context, resumeID uuid.UUID) (profile.Record, error) {
	return s.repo.GetRecord(ctx, resumeID)
}

// Shutdown перестаёт принимать прогоны и ждёт уже взятые до дедлайна ctx.
func (s *Service) Shutdown(ctx context.Context) {
	s.queue.shutdown(ctx)
}

func (s *Service) release(resumeID uuid.UUID) {
	s.mu.Lock()
	delete(s.inFlight, resumeID)
	s.mu.Unlock()
}

// run выполняет один прогон целиком. Никогда не паникует и ничего не
// возвращает: исход виден только через сохранённую запись.
func (s *Service) run(ctx context.Context, resumeID uuid.UUID, strategy profile.Strategy) {
	rec := profile.Record{
		ResumeID:    resumeID,
		Status:      profile.StatusProcessing,
		Strategy:    strategy,
		ExtractedAt: s.now().UTC(),
	}
	rec.Profile.Normalize()
	if err := s.repo.SaveExtraction(ctx, rec); err != nil {
		s.log.Error("persist processing status", zap.String("resumeId", resumeID.String()), zap.Error(err))
		return
	}

	parsed, err := s.repo.GetParsed(ctx, resumeID)
	if err != nil {
		s.fail(ctx, rec, &profile.UpstreamError{Service: "text-extractor", Err: err})
		return
	}
	text := strings.TrimSpace(parsed.Text)
	if len(text) < s.minChars {
		s.fail(ctx, rec, &profile.InsufficientTextError{Length: len(text), Min: s.minChars})
		return
	}
	rec.RawText = text

	extracted, err := s.parsers[strategy].Parse(ctx, text)
	if err != nil {
		s.fail(ctx, rec, err)
		return
	}

	rec.Status = profile.StatusCompleted
	rec.Error = ""
	rec.Profile = extracted
	rec.ExtractedAt = s.now().UTC()
	if err := s.repo.SaveExtraction(ctx, rec); err != nil {
		s.log.Error("persist completed extraction", zap.String("resumeId", resumeID.String()), zap.Error(err))
		return
	}
	if err := s.repo.SyncExtracted(ctx, resumeID,
		extracted.Skills.All,
		extracted.Metadata.Location,
		extracted.Metadata.TotalExperienceYears,
	); err != nil {
		// сводные поля вторичны, completed уже записан
		s.log.Error("sync resume search fields", zap.String("resumeId", resumeID.String()), zap.Error(err))
	}
	s.log.Info("extraction completed",
		zap.String("resumeId", resumeID.String()),
		zap.String("strategy", string(strategy)),
		zap.Int("skills", len(extracted.Skills.All)))

	s.enhanceOwner(ctx, resumeID, extracted)
}

// enhanceOwner дополняет анкету владельца. Отказ не влияет на completed.
func (s *Service) enhanceOwner(ctx context.Context, resumeID uuid.UUID, extracted profile.Profile) {
	if s.enhancer == nil {
		return
	}
	meta, err := s.repo.GetMeta(ctx, resumeID)
	if err != nil {
		s.log.Warn("load resume owner for enhancement", zap.String("resumeId", resumeID.String()), zap.Error(err))
		return
	}
	if meta.OwnerID == uuid.Nil {
		return
	}
	if err := s.enhancer.Enhance(ctx, meta.OwnerID, extracted); err != nil {
		s.log.Warn("profile enhancement failed",
			zap.String("resumeId", resumeID.String()),
			zap.String("userId", meta.OwnerID.String()),
			zap.Error(err))
	}
}

func (s *Service) fail(ctx context.Context, rec profile.Record, cause error) {
	rec.Status = profile.StatusFailed
	rec.Error = cause.Error()
	rec.Profile = profile.Profile{}
	rec.Profile.Normalize()
	rec.ExtractedAt = s.now().UTC()
	if err := s.repo.SaveExtraction(ctx, rec); err != nil {
		s.log.Error("persist failed extraction", zap.String("resumeId", rec.ResumeID.String()), zap.Error(err))
	}
	s.log.Warn("extraction failed",
		zap.String("resumeId", rec.ResumeID.String()),
		zap.String("strategy", string(rec.Strategy)),
		zap.String("reason", cause.Error()))
}
