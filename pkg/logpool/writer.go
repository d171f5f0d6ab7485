package logpool

import "context"

// ChannelWriter is an io.Writer that forwards written data to a channel.
// Installed as a pool's console via SetConsole, it lets echoes and printed
// logs stream to a consumer such as a UI without blocking appends.
type ChannelWriter struct {
	OutChannel chan<- []byte
	ctx        context.Context
}

// NewChannelWriter creates a writer that sends written data to ch until
// ctx is cancelled.
func NewChannelWriter(ctx context.Context, ch chan<- []byte) *ChannelWriter {
	return &ChannelWriter{
		OutChannel: ch,
		ctx:        ctx,
	}
}

// Write implements the io.Writer interface. It is race-free on shutdown.
func (cw *ChannelWriter) Write(p []byte) (n int, err error) {
	// Check if shutdown has been initiated.
	select {
	case <-cw.ctx.Done():
		// Context is cancelled, do not write.
		return len(p), nil
	default:
		// Continue
	}

	msg := make([]byte, len(p))
	copy(msg, p)
	select {
	case cw.OutChannel <- msg:
	default:
		// Channel is full, drop the message to prevent blocking the pool.
	}
	return len(p), nil
}
