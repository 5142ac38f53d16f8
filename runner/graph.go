package runner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ib823/sapconnect-sub002/core"
)

// DependencyGraph is a DAG of object ids; an edge "A before B" means A must
// complete before B starts.
type DependencyGraph struct {
	mu    sync.RWMutex
	nodes []string
	edges map[string][]string
	known map[string]struct{}
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[string][]string),
		known: make(map[string]struct{}),
	}
}

func (g *DependencyGraph) AddNode(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)
}

func (g *DependencyGraph) addNodeLocked(id string) {
	if _, ok := g.known[id]; ok {
		return
	}
	g.known[id] = struct{}{}
	g.nodes = append(g.nodes, id)
}

// AddEdge declares that before must complete ahead of after.
func (g *DependencyGraph) AddEdge(before, after string) error {
	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)
	if before == "" || after == "" {
		return fmt.Errorf("runner: edge endpoints are required")
	}
	if before == after {
		return fmt.Errorf("runner: self dependency for %s", before)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(before)
	g.addNodeLocked(after)
	for _, existing := range g.edges[before] {
		if existing == after {
			return nil
		}
	}
	g.edges[before] = append(g.edges[before], after)
	return nil
}

// Prerequisites lists the declared predecessors of an id.
func (g *DependencyGraph) Prerequisites(id string) []string {
	id = strings.TrimSpace(id)
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []string
	for _, before := range g.nodes {
		for _, after := range g.edges[before] {
			if after == id {
				out = append(out, before)
			}
		}
	}
	return out
}

// ExecutionWaves layers the requested ids topologically (Kahn style): wave i
// holds every requested id whose requested prerequisites all sit in earlier
// waves. Ties break by request order. Ids unknown to the graph have no
// prerequisites, so a trivial graph yields a single wave.
func (g *DependencyGraph) ExecutionWaves(ids []string) ([][]string, error) {
	requested := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		requested = append(requested, id)
	}
	if len(requested) == 0 {
		return [][]string{}, nil
	}

	g.mu.RLock()
	indegree := make(map[string]int, len(requested))
	dependents := make(map[string][]string, len(requested))
	for _, id := range requested {
		indegree[id] = 0
	}
	for before, afters := range g.edges {
		if _, ok := seen[before]; !ok {
			continue
		}
		for _, after := range afters {
			if _, ok := seen[after]; !ok {
				continue
			}
			indegree[after]++
			dependents[before] = append(dependents[before], after)
		}
	}
	g.mu.RUnlock()

	waves := make([][]string, 0, 2)
	remaining := len(requested)
	for remaining > 0 {
		wave := make([]string, 0, remaining)
		for _, id := range requested {
			if degree, ok := indegree[id]; ok && degree == 0 {
				wave = append(wave, id)
			}
		}
		if len(wave) == 0 {
			return nil, fmt.Errorf("runner: dependency cycle detected among %d remaining objects", remaining)
		}
		for _, id := range wave {
			delete(indegree, id)
			for _, after := range dependents[id] {
				if _, ok := indegree[after]; ok {
					indegree[after]--
				}
			}
		}
		remaining -= len(wave)
		waves = append(waves, wave)
	}
	return waves, nil
}

var _ core.WavePlanner = (*DependencyGraph)(nil)
