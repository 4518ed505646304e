package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete 는 리프에 닿기 전에 비트가 떨어졌다는 뜻. 실패가 아니라 "비트 더 필요".
	ErrIncomplete = errors.New("huffman: incomplete code")
	ErrInvalidBit = errors.New("huffman: invalid bit")
)

/*** ---------- 디코딩 ---------- ***/

// DecodeOne 은 루트에서 시작해 bits 를 따라 내려가 심볼 하나를 읽는다.
// n 은 이번 호출에서 소비한 비트 수.
//
// bits 가 비어 있으면 바로 ErrIncomplete (n=0).
// 내부 노드에서 비트가 떨어져도 ErrIncomplete 이고, n 으로 어디까지 갔는지 알린다.
// 자식이 없는 내부 노드를 만나면 panic (트리 손상).
func DecodeOne(root *Node, bits string) (sym byte, n int, err error) {
	if len(bits) == 0 {
		return 0, 0, ErrIncomplete
	}
	cur := root
	for !cur.IsLeaf() {
		if n == len(bits) {
			return 0, n, ErrIncomplete
		}
		switch bits[n] {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return 0, n, fmt.Errorf("%w %q at %d", ErrInvalidBit, bits[n], n)
		}
		n++
		if cur == nil {
			panic(fmt.Sprintf("huffman: corrupt tree: dead end after %q", bits[:n]))
		}
	}
	return cur.Symbol & 0xff, n, nil
}
