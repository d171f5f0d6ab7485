package logpool

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DefaultMaxSize is the entry capacity of pools created by NewDefault.
const DefaultMaxSize = 1000

// Pool is a bounded, insertion-ordered collection of log entries. All
// operations are safe for concurrent use. When the pool is full, appending
// evicts the oldest entry. Entries whose level passes the pool's verbosity
// threshold are echoed to the console writer at append time.
//
// If a panic escapes an operation while the lock is held (for example from
// a console writer installed via SetConsole), the pool is poisoned: every
// subsequent operation returns ErrPoisoned.
type Pool struct {
	mu       sync.Mutex
	poisoned bool
	// entries is kept oldest-first; retrieval indices count from the
	// newest entry.
	entries   []Entry
	counter   uint32
	verbosity Verbosity
	maxSize   int
	console   io.Writer
}

// NewDefault creates a pool that echoes everything (LevelDebug) and
// retains up to DefaultMaxSize entries.
func NewDefault() *Pool {
	return New(LevelDebug, DefaultMaxSize)
}

// New creates a pool with the given echo threshold and entry capacity.
// A maxSize of zero or less means no entry is retained; appends still
// advance the id counter and echo. The console defaults to os.Stdout.
func New(verbosity Verbosity, maxSize int) *Pool {
	return &Pool{
		verbosity: verbosity,
		maxSize:   maxSize,
		console:   os.Stdout,
	}
}

// lock acquires the pool lock, failing if a previous operation poisoned it.
func (p *Pool) lock() error {
	p.mu.Lock()
	if p.poisoned {
		p.mu.Unlock()
		return ErrPoisoned
	}
	return nil
}

// unlock releases the pool lock. Deferred; if the operation is panicking,
// the pool is marked poisoned before the panic continues.
func (p *Pool) unlock() {
	if r := recover(); r != nil {
		p.poisoned = true
		p.mu.Unlock()
		panic(r)
	}
	p.mu.Unlock()
}

// Append stores a new entry with the next id. The message is echoed to the
// console first if level passes the pool's verbosity threshold; echo write
// errors are ignored. If the pool is over capacity afterwards, the oldest
// entry is evicted. Ids are never reused, even after eviction.
func (p *Pool) Append(message string, level Verbosity) error {
	if err := p.lock(); err != nil {
		return err
	}
	defer p.unlock()

	entry := Entry{ID: p.counter, Message: message, Level: level}
	if entry.Level <= p.verbosity {
		fmt.Fprintln(p.console, entry.Message)
	}
	p.entries = append(p.entries, entry)
	if len(p.entries) > p.maxSize {
		p.entries = p.entries[1:]
	}
	p.counter++
	return nil
}

// GetEntry returns the entry at index, counting from the newest (index 0)
// to the oldest. Returns ErrIndexOutOfBounds if no such entry exists.
func (p *Pool) GetEntry(index int) (Entry, error) {
	if err := p.lock(); err != nil {
		return Entry{}, err
	}
	defer p.unlock()

	if index < 0 || index >= len(p.entries) {
		return Entry{}, fmt.Errorf("entry %d: %w", index, ErrIndexOutOfBounds)
	}
	return p.entries[len(p.entries)-1-index], nil
}

// GetSize returns the number of entries currently retained.
func (p *Pool) GetSize() (int, error) {
	if err := p.lock(); err != nil {
		return 0, err
	}
	defer p.unlock()
	return len(p.entries), nil
}

// GetCounter returns the id the next appended entry will receive, which is
// also the number of appends over the pool's lifetime.
func (p *Pool) GetCounter() (uint32, error) {
	if err := p.lock(); err != nil {
		return 0, err
	}
	defer p.unlock()
	return p.counter, nil
}

// GetLog returns all entries whose level passes filter, newest first.
func (p *Pool) GetLog(filter Verbosity) ([]Entry, error) {
	if err := p.lock(); err != nil {
		return nil, err
	}
	defer p.unlock()

	out := make([]Entry, 0, len(p.entries))
	for i := len(p.entries) - 1; i >= 0; i-- {
		if e := p.entries[i]; e.Level <= filter {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetEntries returns the entries at positions [start, end), counting from
// the newest, whose level passes filter. The bounds are validated against
// the pool's current size before filtering; a malformed or out-of-range
// pair returns ErrInvalidRange. start == end is valid and returns an empty
// slice.
func (p *Pool) GetEntries(start, end int, filter Verbosity) ([]Entry, error) {
	if err := p.lock(); err != nil {
		return nil, err
	}
	defer p.unlock()

	if start < 0 || end < 0 || start > end || end > len(p.entries) {
		return nil, fmt.Errorf("range [%d, %d): %w", start, end, ErrInvalidRange)
	}
	out := make([]Entry, 0, end-start)
	for i := start; i < end; i++ {
		if e := p.entries[len(p.entries)-1-i]; e.Level <= filter {
			out = append(out, e)
		}
	}
	return out, nil
}

// PrintLog writes every retained entry to the console, newest first, one
// per line in the form "id:<id> <level> <message>".
func (p *Pool) PrintLog() error {
	if err := p.lock(); err != nil {
		return err
	}
	defer p.unlock()

	for i := len(p.entries) - 1; i >= 0; i-- {
		e := p.entries[i]
		fmt.Fprintf(p.console, "id:%d %s %s\n", e.ID, e.Level, e.Message)
	}
	return nil
}

// PrintLogLevel writes the entries whose level equals level, newest first,
// one per line in the form "<id> <level> <message>". Unlike PrintLog this
// matches exactly rather than by threshold.
func (p *Pool) PrintLogLevel(level Verbosity) error {
	if err := p.lock(); err != nil {
		return err
	}
	defer p.unlock()

	for i := len(p.entries) - 1; i >= 0; i-- {
		if e := p.entries[i]; e.Level == level {
			fmt.Fprintf(p.console, "%d %s %s\n", e.ID, e.Level, e.Message)
		}
	}
	return nil
}

// SetConsole replaces the writer that receives echoes and printed logs.
// Passing nil restores os.Stdout.
func (p *Pool) SetConsole(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	p.console = w
}

// GetConsole returns the current console writer.
func (p *Pool) GetConsole() io.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.console
}

// GetVerbosity returns the pool's echo threshold.
func (p *Pool) GetVerbosity() Verbosity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.verbosity
}

// GetMaxSize returns the pool's entry capacity.
func (p *Pool) GetMaxSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxSize
}
