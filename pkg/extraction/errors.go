package extraction

import "errors"

// ErrAlreadyRunning возвращается при попытке запустить второй прогон
// извлечения для резюме, по которому прогон уже в полёте.
var ErrAlreadyRunning = errors.New("extraction already running for this resume")

// ErrShuttingDown возвращается, когда очередь уже закрыта и новые прогоны
// не принимаются.
var ErrShuttingDown = errors.New("extraction queue is shutting down")
