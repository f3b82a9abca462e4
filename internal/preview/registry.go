package preview

import "sync"

// Registry tracks connected live-reload clients. It is an explicit object
// handed to the request handler, added to on connect and removed from on
// disconnect; broadcasts fan out to every subscriber without blocking on
// slow ones.
type Registry struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

// NewRegistry creates an empty client registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[chan string]struct{})}
}

// Subscribe registers a new client and returns its event channel.
func (r *Registry) Subscribe() chan string {
	ch := make(chan string, 8)
	r.mu.Lock()
	r.clients[ch] = struct{}{}
	r.mu.Unlock()
	return ch
}

// Unsubscribe removes a client and closes its channel.
func (r *Registry) Unsubscribe(ch chan string) {
	r.mu.Lock()
	if _, ok := r.clients[ch]; ok {
		delete(r.clients, ch)
		close(ch)
	}
	r.mu.Unlock()
}

// Broadcast sends event to every connected client. Clients whose buffers
// are full miss the event rather than stall the broadcaster.
func (r *Registry) Broadcast(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.clients {
		select {
		case ch <- event:
		default:
		}
	}
}

// Len returns the number of connected clients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}
