package hub

import "sync"

// Registry tracks the set of live peers. Membership is by peer identity; no
// ordering is guaranteed. Add and remove are mutually exclusive with the
// point-in-time copy broadcasts iterate over, so fan-out never touches a
// half-removed handle.
type Registry struct {
	mu    sync.Mutex
	peers map[*Peer]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{peers: make(map[*Peer]struct{})}
}

// Register adds a peer. Registering the same peer twice is a no-op.
func (r *Registry) Register(p *Peer) {
	r.mu.Lock()
	r.peers[p] = struct{}{}
	r.mu.Unlock()
}

// Unregister removes a peer if present. The disconnect path and the
// send-failure path may race to remove the same peer; removing an absent one
// is a no-op.
func (r *Registry) Unregister(p *Peer) {
	r.mu.Lock()
	delete(r.peers, p)
	r.mu.Unlock()
}

// Peers returns a point-in-time copy of the membership.
func (r *Registry) Peers() []*Peer {
	r.mu.Lock()
	defer r.mu.Unlock()

	peers := make([]*Peer, 0, len(r.peers))
	for p := range r.peers {
		peers = append(peers, p)
	}
	return peers
}

// Len returns the current number of registered peers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.peers)
}
