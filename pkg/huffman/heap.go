package huffman

/*** ---------- MinHeap (가중치 → 심볼 → 생성 순번) ---------- ***/

// less 는 a 가 b 보다 먼저 꺼내져야 하면 true.
// 심볼 비교는 둘 다 리프일 때만 한다. 리프 순번은 항상 내부 노드보다 작다.
func less(a, b *Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.IsLeaf() && b.IsLeaf() && a.Symbol != b.Symbol {
		return a.Symbol < b.Symbol
	}
	return a.seq < b.seq
}

type minHeap struct {
	arr []*Node
}

func (h *minHeap) size() int { return len(h.arr) }

func (h *minHeap) push(n *Node) {
	h.arr = append(h.arr, n)
	i := len(h.arr) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !less(h.arr[i], h.arr[parent]) {
			return
		}
		h.arr[parent], h.arr[i] = h.arr[i], h.arr[parent]
		i = parent
	}
}

func (h *minHeap) pop() *Node {
	if h.size() == 0 {
		return nil
	}
	out := h.arr[0]
	last := h.arr[h.size()-1]
	h.arr = h.arr[:h.size()-1]
	if h.size() == 0 {
		return out
	}
	h.arr[0] = last

	parent := 0
	child := 2*parent + 1
	for child < h.size() {
		if child+1 < h.size() && less(h.arr[child+1], h.arr[child]) {
			child++
		}
		if !less(h.arr[child], h.arr[parent]) {
			return out
		}
		h.arr[parent], h.arr[child] = h.arr[child], h.arr[parent]
		parent = child
		child = 2*child + 1
	}
	return out
}
