package console

import (
	"bufio"
	"context"
	"io"
)

// Pump reads lines from r and delivers them on the returned channel.
// The channel is closed when r is exhausted or ctx is done. A goroutine blocked reading r
// only returns once r does, so Pump is meant for process-lifetime readers such as os.Stdin.
func Pump(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
