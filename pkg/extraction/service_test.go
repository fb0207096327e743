package extraction

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/resume-profiler/pkg/profile"
	"github.com/artem13815/resume-profiler/pkg/resume"
)

// fakeRepo — in-memory реализация resume.Repository для оркестратора.
type fakeRepo struct {
	mu       sync.Mutex
	parsed   map[uuid.UUID]string
	records  map[uuid.UUID]profile.Record
	metas    map[uuid.UUID]resume.Resume
	synced   map[uuid.UUID][]string
	terminal chan profile.Record

	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		parsed:   make(map[uuid.UUID]string),
		records:  make(map[uuid.UUID]profile.Record),
		metas:    make(map[uuid.UUID]resume.Resume),
		synced:   make(map[uuid.UUID][]string),
		terminal: make(chan profile.Record, 16),
	}
}

func (f *fakeRepo) Create(_ context.Context, r resume.Resume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metas[r.ID] = r
	return nil
}

func (f *fakeRepo) SaveParsed(_ context.Context, p resume.Parsed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.parsed[p.ResumeID] = p.Text
	return nil
}

func (f *fakeRepo) GetParsed(_ context.Context, id uuid.UUID) (resume.Parsed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	text, ok := f.parsed[id]
	if !ok {
		return resume.Parsed{}, errors.New("parsed text not found")
	}
	return resume.Parsed{ResumeID: id, Text: text}, nil
}

func (f *fakeRepo) GetMeta(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.metas[id]
	if !ok {
		return resume.Resume{}, errors.New("resume not found")
	}
	return m, nil
}

func (f *fakeRepo) GetMetaForOwner(_ context.Context, _, id uuid.UUID) (resume.Resume, error) {
	return f.GetMeta(context.Background(), id)
}

func (f *fakeRepo) ListByOwner(_ context.Context, _ uuid.UUID, _, _ int) ([]resume.Resume, error) {
	return nil, nil
}

func (f *fakeRepo) DeleteForOwner(_ context.Context, _, id uuid.UUID) (resume.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := f.metas[id]
	delete(f.metas, id)
	return m, nil
}

func (f *fakeRepo) SaveExtraction(_ context.Context, rec profile.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[rec.ResumeID] = rec
	if rec.Status.Terminal() {
		f.terminal <- rec
	}
	return nil
}

func (f *fakeRepo) GetRecord(_ context.Context, id uuid.UUID) (profile.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return profile.Record{}, errors.New("record not found")
	}
	return rec, nil
}

func (f *fakeRepo) SyncExtracted(_ context.Context, id uuid.UUID, skills []string, _ string, _ float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.synced[id] = skills
	return nil
}

type stubParser struct {
	out     profile.Profile
	err     error
	block   chan struct{} // если не nil, Parse ждёт закрытия
	mu      sync.Mutex
	calls   int
	lastRaw string
}

func (p *stubParser) Parse(_ context.Context, rawText string) (profile.Profile, error) {
	p.mu.Lock()
	p.calls++
	p.lastRaw = rawText
	block := p.block
	p.mu.Unlock()
	if block != nil {
		<-block
	}
	if p.err != nil {
		return profile.Profile{}, p.err
	}
	out := p.out
	out.Normalize()
	return out, nil
}

type stubEnhancer struct {
	mu     sync.Mutex
	err    error
	called chan uuid.UUID
}

func (e *stubEnhancer) Enhance(_ context.Context, userID uuid.UUID, _ profile.Profile) error {
	if e.called != nil {
		e.called <- userID
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

func waitTerminal(t *testing.T, repo *fakeRepo) profile.Record {
	t.Helper()
	select {
	case rec := <-repo.terminal:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("extraction did not reach a terminal status")
		return profile.Record{}
	}
}

func newTestService(repo *fakeRepo, heuristic, llm profile.Parser, enh Enhancer) *Service {
	return NewService(repo, heuristic, llm, enh, zap.NewNop(), Options{Workers: 1, QueueSize: 8})
}

func seed(repo *fakeRepo, text string, ownerID uuid.UUID) uuid.UUID {
	id := uuid.New()
	repo.parsed[id] = text
	repo.metas[id] = resume.Resume{ID: id, OwnerID: ownerID}
	return id
}

const longEnough = "Jane Smith, backend engineer with years of production Go and Python experience."

func TestStartShortTextFails(t *testing.T) {
	repo := newFakeRepo()
	id := seed(repo, "too short", uuid.Nil)
	svc := newTestService(repo, &stubParser{}, &stubParser{}, nil)
	defer svc.Shutdown(context.Background())

	require.NoError(t, svc.Start(context.Background(), id, ""))
	rec := waitTerminal(t, repo)

	assert.Equal(t, profile.StatusFailed, rec.Status)
	assert.Contains(t, rec.Error, "insufficient resume text")
}

func TestStartCompletesAndSyncsSearchFields(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	id := seed(repo, longEnough, owner)
	parser := &stubParser{out: profile.Profile{
		Skills:   profile.Skills{Groups: []profile.SkillGroup{{Category: "Programming", Items: []string{"Go", "Python"}}}},
		Metadata: profile.Metadata{Location: "Austin, TX", TotalExperienceYears: 4.0},
	}}
	enh := &stubEnhancer{called: make(chan uuid.UUID, 1)}
	svc := newTestService(repo, parser, &stubParser{}, enh)
	defer svc.Shutdown(context.Background())

	require.NoError(t, svc.Start(context.Background(), id, profile.StrategyHeuristic))
	rec := waitTerminal(t, repo)

	assert.Equal(t, profile.StatusCompleted, rec.Status)
	assert.Equal(t, profile.StrategyHeuristic, rec.Strategy)
	assert.Empty(t, rec.Error)
	assert.Equal(t, longEnough, rec.RawText)
	assert.Equal(t, []string{"Go", "Python"}, rec.Profile.Skills.All)

	select {
	case got := <-enh.called:
		assert.Equal(t, owner, got)
	case <-time.After(2 * time.Second):
		t.Fatal("enhancer was not invoked")
	}

	repo.mu.Lock()
	assert.Equal(t, []string{"Go", "Python"}, repo.synced[id])
	repo.mu.Unlock()
}

func TestParserErrorBecomesFailedStatus(t *testing.T) {
	repo := newFakeRepo()
	id := seed(repo, longEnough, uuid.Nil)
	parser := &stubParser{err: &profile.ParseError{Reason: "response is not valid JSON"}}
	svc := newTestService(repo, &stubParser{}, parser, nil)
	defer svc.Shutdown(context.Background())

	require.NoError(t, svc.Start(context.Background(), id, profile.StrategyLLM))
	rec := waitTerminal(t, repo)

	assert.Equal(t, profile.StatusFailed, rec.Status)
	assert.Equal(t, profile.StrategyLLM, rec.Strategy)
	assert.Contains(t, rec.Error, "not valid JSON")
	// failed запись не тащит за собой профиль
	assert.Empty(t, rec.Profile.Skills.All)
}

func TestEnhancerFailureKeepsCompletedStatus(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	id := seed(repo, longEnough, owner)
	enh := &stubEnhancer{err: errors.New("db down"), called: make(chan uuid.UUID, 1)}
	svc := newTestService(repo, &stubParser{}, &stubParser{}, enh)
	defer svc.Shutdown(context.Background())

	require.NoError(t, svc.Start(context.Background(), id, ""))
	rec := waitTerminal(t, repo)
	<-enh.called

	assert.Equal(t, profile.StatusCompleted, rec.Status)
	got, err := repo.GetRecord(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, profile.StatusCompleted, got.Status)
}

func TestSecondStartWhileInFlightIsRejected(t *testing.T) {
	repo := newFakeRepo()
	id := seed(repo, longEnough, uuid.Nil)
	block := make(chan struct{})
	parser := &stubParser{block: block}
	svc := newTestService(repo, parser, &stubParser{}, nil)
	defer svc.Shutdown(context.Background())

	require.NoError(t, svc.Start(context.Background(), id, ""))
	// ждём, пока воркер возьмёт задачу
	require.Eventually(t, func() bool {
		parser.mu.Lock()
		defer parser.mu.Unlock()
		return parser.calls == 1
	}, 2*time.Second, 10*time.Millisecond)

	err := svc.Start(context.Background(), id, "")
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(block)
	waitTerminal(t, repo)

	// после завершения можно запускать снова
	require.Eventually(t, func() bool {
		return svc.Start(context.Background(), id, "") == nil
	}, 2*time.Second, 10*time.Millisecond)
	waitTerminal(t, repo)
}

func TestReprocessReplacesRecordWholesale(t *testing.T) {
	repo := newFakeRepo()
	id := seed(repo, longEnough, uuid.Nil)
	first := &stubParser{out: profile.Profile{
		Identity: profile.Identity{FullName: "Jane Smith"},
		Skills:   profile.Skills{Groups: []profile.SkillGroup{{Category: "Programming", Items: []string{"Go"}}}},
	}}
	second := &stubParser{out: profile.Profile{
		Identity: profile.Identity{FullName: "Jane A. Smith"},
	}}
	svc := newTestService(repo, first, second, nil)
	defer svc.Shutdown(context.Background())

	require.NoError(t, svc.Start(context.Background(), id, profile.StrategyHeuristic))
	waitTerminal(t, repo)

	// слот in-flight освобождается сразу после завершения прогона
	require.Eventually(t, func() bool {
		return svc.Reprocess(context.Background(), id, profile.StrategyLLM) == nil
	}, 2*time.Second, 10*time.Millisecond)
	rec := waitTerminal(t, repo)

	assert.Equal(t, profile.StatusCompleted, rec.Status)
	assert.Equal(t, profile.StrategyLLM, rec.Strategy)
	assert.Equal(t, "Jane A. Smith", rec.Profile.Identity.FullName)
	// от первого прогона не осталось ничего
	assert.Empty(t, rec.Profile.Skills.All)
}

func TestUnknownStrategyIsConfigError(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &stubParser{}, &stubParser{}, nil)
	defer svc.Shutdown(context.Background())

	err := svc.Start(context.Background(), uuid.New(), profile.Strategy("quantum"))
	var cerr *profile.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestStartAfterShutdownIsRejected(t *testing.T) {
	repo := newFakeRepo()
	id := seed(repo, longEnough, uuid.Nil)
	svc := newTestService(repo, &stubParser{}, &stubParser{}, nil)
	svc.Shutdown(context.Background())

	err := svc.Start(context.Background(), id, "")
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestMissingParsedTextFailsAsUpstream(t *testing.T) {
	repo := newFakeRepo()
	id := uuid.New() // parsed text не сохранён
	repo.metas[id] = resume.Resume{ID: id}
	svc := newTestService(repo, &stubParser{}, &stubParser{}, nil)
	defer svc.Shutdown(context.Background())

	require.NoError(t, svc.Start(context.Background(), id, ""))
	rec := waitTerminal(t, repo)

	assert.Equal(t, profile.StatusFailed, rec.Status)
	assert.True(t, strings.Contains(rec.Error, "text-extractor"))
}
