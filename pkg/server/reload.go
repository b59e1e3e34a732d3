package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/promptstack/promptsite/pkg/watcher"
)

// Broadcaster fans a reload signal out to every connected SSE client.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan struct{}]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan struct{}]bool)}
}

// Subscribe registers a client channel; the returned func removes it.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs[ch] = true
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
}

// Notify signals every subscriber. Sends never block: a client that has a
// signal pending does not need another.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// handleEvents is the SSE endpoint the injected reload script listens on.
//
//	GET /events
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, unsubscribe := s.reload.Subscribe()
	defer unsubscribe()

	fmt.Fprint(w, "event: connected\ndata: ok\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			fmt.Fprint(w, "event: reload\ndata: change\n\n")
			flusher.Flush()
		}
	}
}

// Watch runs the fsnotify loop until ctx is cancelled, broadcasting a
// debounced reload event whenever a relevant site source changes.
func (s *Server) Watch(ctx context.Context, debounce time.Duration) error {
	// Ignore the build output: a `promptsite build` into the site directory
	// must not trigger reload storms.
	w, err := watcher.New(filepath.Join(s.siteDir, s.cfg.OutputDir))
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.AddRecursive(s.siteDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.siteDir, err)
	}
	s.logger.Infof("Watching %s for changes", s.siteDir)

	var mu sync.Mutex
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				w.HandleNewDirectory(event)
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watcher.IsRelevantFile(event.Name) {
				continue
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				s.logger.Debugf("Change detected: %s", event.Name)
				s.reload.Notify()
			})
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.WithError(err).Warn("Watcher error")
		}
	}
}

// reloadScript is injected into every dev-server HTML response, right
// before </body>. The deployed static site never contains it.
const reloadScript = `<script>
  new EventSource("/events").addEventListener("reload", function () {
    location.reload();
  });
</script>
`

func injectReloadScript(html []byte) []byte {
	idx := bytes.LastIndex(html, []byte("</body>"))
	if idx < 0 {
		return append(html, []byte(reloadScript)...)
	}
	var buf bytes.Buffer
	buf.Write(html[:idx])
	buf.WriteString(reloadScript)
	buf.Write(html[idx:])
	return buf.Bytes()
}
