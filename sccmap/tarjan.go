package sccmap

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/automaton"
)

// reachableGraph is the finite automaton graph discovered by walking every
// edge reachable from the initial state, indexed by the dense ids
// stateIndex hands out. It is the input Tarjan's algorithm runs over.
type reachableGraph struct {
	idx         *stateIndex
	adj         [][]int             // adj[u] = successor state ids of u
	edgeSupport [][][]apcond.VarID  // edgeSupport[u][i] = Support() of the edge adj[u][i] was taken on
}

// discover performs a BFS from aut.InitialState(), recording every state
// and edge reached. Büchi automata in this module's scope are finite, so
// the walk always terminates.
func discover(aut automaton.Automaton) *reachableGraph {
	idx := newStateIndex()
	g := &reachableGraph{idx: idx}

	root := idx.idOf(aut.InitialState())
	queue := []int{root}
	seen := map[int]bool{root: true}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		src := g.idx.order[u]

		for len(g.adj) <= u {
			g.adj = append(g.adj, nil)
			g.edgeSupport = append(g.edgeSupport, nil)
		}

		it := aut.SuccIter(src)
		for it.First(); !it.Done(); it.Next() {
			cond, _, target := it.Current()
			v := g.idx.idOf(target)
			g.adj[u] = append(g.adj[u], v)
			g.edgeSupport[u] = append(g.edgeSupport[u], cond.Support())
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return g
}

// tarjan computes, for every state discovered in g, the id of its strongly
// connected component, plus the components in completion order (a
// reverse-topological order of the condensation DAG: a component that can
// reach another always completes its DFS branch after the one it reaches).
//
// Classic Tarjan bookkeeping: an explicit low-link array (low), a discovery
// index per vertex (index), an explicit stack of vertices on the current
// path (stack/onStack), recursing depth-first and popping a whole
// component once a root (index[v] == low[v]) is found.
type tarjan struct {
	g       *reachableGraph
	index   []int
	low     []int
	onStack []bool
	stack   []int
	counter int
	sccOf   []int
	order   [][]int // order[k] = member state ids of the k-th completed SCC
}

func runTarjan(g *reachableGraph) *tarjan {
	n := len(g.idx.order)
	t := &tarjan{
		g:       g,
		index:   make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
		sccOf:   make([]int, n),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for v := 0; v < n; v++ {
		if t.index[v] == -1 {
			t.strongconnect(v)
		}
	}
	return t
}

func (t *tarjan) strongconnect(v int) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.adj[v] {
		if t.index[w] == -1 {
			t.strongconnect(w)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.low[v] {
				t.low[v] = t.index[w]
			}
		}
	}

	if t.low[v] == t.index[v] {
		var members []int
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			t.sccOf[w] = len(t.order)
			members = append(members, w)
			if w == v {
				break
			}
		}
		t.order = append(t.order, members)
	}
}
