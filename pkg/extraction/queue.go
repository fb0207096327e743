package extraction

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type job struct {
	resumeID string
	run      func(ctx context.Context)
}

// workQueue — ограниченная очередь фоновых прогонов с пулом воркеров.
// Закрытие дожидается уже принятых задач, новые после закрытия не принимаются.
type workQueue struct {
	log     *zap.Logger
	timeout time.Duration

	ch   chan job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

func newWorkQueue(workers, size int, timeout time.Duration, log *zap.Logger) *workQueue {
	if workers <= 0 {
		workers = 2
	}
	if size <= 0 {
		size = 64
	}
	if timeout <= 0 {
		timeout = 3 * time.Minute
	}
	q := &workQueue{log: log, timeout: timeout, ch: make(chan job, size)}
	q.start(workers)
	return q
}

func (q *workQueue) start(workers int) {
	q.once.Do(func() {
		for i := 0; i < workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				for j := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					j.run(ctx)
					cancel()
					q.log.Debug("extraction job finished",
						zap.Int("worker", workerID),
						zap.String("resumeId", j.resumeID))
				}
			}(i + 1)
		}
	})
}

func (q *workQueue) enqueue(j job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrShuttingDown
	}
	select {
	case q.ch <- j:
	default:
		q.log.Warn("extraction queue full, applying backpressure", zap.String("resumeId", j.resumeID))
		q.ch <- j
	}
	return nil
}

// shutdown закрывает очередь и ждёт воркеров до дедлайна ctx.
func (q *workQueue) shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()
	select {
	case <-done:
	case <-ctx.Done():
		q.log.Warn("extraction queue shutdown deadline exceeded")
	}
}
