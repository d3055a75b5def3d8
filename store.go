package hxlife

// DataHolder is implemented by host nodes that carry their own auxiliary
// record. Data stored this way lives exactly as long as the node.
type DataHolder interface {
	LifecycleData() *ElementData
}

// NodeStore is the default DataStore. Nodes implementing DataHolder keep
// their own record; other nodes fall back to a map owned by the store.
//
// Fallback records live as long as the store, not the node: hosts whose
// nodes do not implement DataHolder call Forget once a node is discarded.
type NodeStore struct {
	fallback map[Node]*ElementData
}

// NewNodeStore creates an empty NodeStore.
func NewNodeStore() *NodeStore {
	return &NodeStore{fallback: make(map[Node]*ElementData)}
}

// Data returns the auxiliary record of n.
func (s *NodeStore) Data(n Node) *ElementData {
	if h, ok := n.(DataHolder); ok {
		return h.LifecycleData()
	}
	d, ok := s.fallback[n]
	if !ok {
		if s.fallback == nil {
			s.fallback = make(map[Node]*ElementData)
		}
		d = &ElementData{}
		s.fallback[n] = d
	}
	return d
}

// Forget drops the fallback record of n. Nodes implementing DataHolder are
// unaffected.
func (s *NodeStore) Forget(n Node) {
	delete(s.fallback, n)
}
