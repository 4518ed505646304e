package huffman

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CodeTable 는 심볼 → '0'/'1' 비트열. 트리에 있는 리프만 들어 있다.
type CodeTable map[byte]string

// Symbols 는 코드가 있는 심볼을 오름차순으로 돌려준다.
func (t CodeTable) Symbols() []byte {
	out := make([]byte, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// AssignCodes 는 루트부터 깊이 우선으로 내려가며 코드를 만든다 (왼쪽 '0', 오른쪽 '1').
// 루트가 리프면 그 코드는 빈 문자열.
func AssignCodes(root *Node) CodeTable {
	codes := make(CodeTable, AlphabetSize)
	if root == nil {
		return codes
	}
	var walk func(n *Node, code string)
	walk = func(n *Node, code string) {
		if n.IsLeaf() {
			codes[n.Symbol] = code
			return
		}
		if n.Left == nil || n.Right == nil {
			panic(fmt.Sprintf("huffman: corrupt tree: internal node at %q has a missing child", code))
		}
		walk(n.Left, code+"0")
		walk(n.Right, code+"1")
	}
	walk(root, "")
	return codes
}
