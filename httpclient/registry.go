package httpclient

import (
	"fmt"
	"sync"
)

// Registry holds one configured client per service name. Each service
// keeps its own error handler, so unmarshaller chains never leak across
// API families.
type Registry struct {
	clients     map[string]*Client
	mu          sync.RWMutex
	defaultOpts []Option
}

func NewRegistry(defaultOpts ...Option) *Registry {
	return &Registry{
		clients:     make(map[string]*Client),
		mu:          sync.RWMutex{},
		defaultOpts: defaultOpts,
	}
}

func (r *Registry) Register(service, baseURL string, opts ...Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	allOpts := make([]Option, 0, len(r.defaultOpts)+len(opts))
	allOpts = append(allOpts, r.defaultOpts...)
	allOpts = append(allOpts, opts...)

	client, err := New(Config{Service: service, BaseURL: baseURL}, allOpts...)
	if err != nil {
		return err
	}

	r.clients[service] = client

	return nil
}

func (r *Registry) MustRegister(service, baseURL string, opts ...Option) *Registry {
	if err := r.Register(service, baseURL, opts...); err != nil {
		panic(fmt.Sprintf("httpclient: failed to register service %q: %v", service, err))
	}

	return r
}

func (r *Registry) Client(service string) *Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[service]
	if !ok {
		panic(fmt.Sprintf("httpclient: service %q not registered", service))
	}

	return client
}

func (r *Registry) GetClient(service string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[service]

	return client, ok
}

func (r *Registry) Has(service string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.clients[service]

	return ok
}

func (r *Registry) Unregister(service string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.clients[service]
	if ok {
		delete(r.clients, service)
	}

	return ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}

	return names
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}
