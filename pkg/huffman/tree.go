package huffman

/*** ---------- 트리 구성 ---------- ***/

type builder struct {
	h   minHeap
	seq int
}

func (b *builder) newNode(n *Node) *Node {
	n.seq = b.seq
	b.seq++
	return n
}

// BuildTree 는 가중치 테이블로 허프만 트리를 만들고 루트를 돌려준다.
//
// 종료 심볼(0)은 가중치가 0이어도 최소 1로 항상 포함된다.
// minimize 가 true 면 가중치 0인 나머지 심볼은 트리에서 빠진다.
// 먼저 꺼낸 노드가 왼쪽 자식이 된다.
func BuildTree(w Weights, minimize bool) *Node {
	var b builder

	// 순번은 심볼 순서대로 리프에 먼저 매겨진다
	b.h.push(b.newNode(&Node{Symbol: Terminator, Weight: max(w[Terminator], 1)}))
	for i := 1; i < AlphabetSize; i++ {
		if w[i] == 0 && minimize {
			continue
		}
		b.h.push(b.newNode(&Node{Symbol: byte(i), Weight: w[i]}))
	}

	for {
		left := b.h.pop()
		if b.h.size() == 0 {
			return left // 노드 하나만 남으면 그대로 루트
		}
		right := b.h.pop()
		b.h.push(b.newNode(&Node{Weight: left.Weight + right.Weight, Left: left, Right: right}))
	}
}
