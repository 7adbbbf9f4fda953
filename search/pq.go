package search

// priorityQueue is a min-heap of *State ordered by Priority. Tie-breaking
// among equal priorities is left to container/heap's own stability, which
// is none — the algorithm does not rely on any particular tie order.
type priorityQueue []*State

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].Priority < pq[j].Priority }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*State)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
