// Package huffman 는 128 심볼(7비트 ASCII, 0번은 종료 심볼) 고정 알파벳용
// 허프만 트리 구성, 코드 할당, 비트열 디코딩을 담당한다.
package huffman

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// AlphabetSize 는 심볼 개수 (0..127).
	AlphabetSize = 128
	// Terminator 는 데이터 끝을 표시하는 예약 심볼.
	Terminator byte = 0
)

/*** ---------- 데이터 구조 ---------- ***/

// Weights 는 심볼별 가중치 테이블. 인덱스 = 심볼 코드포인트.
type Weights [AlphabetSize]int

var (
	ErrNegativeWeight = errors.New("huffman: negative weight")
	ErrWeightsLength  = errors.New("huffman: weight table length")
)

// UnmarshalJSON 은 정확히 AlphabetSize 개 원소의 배열만 받는다.
// 고정 길이 배열 기본 디코딩은 짧으면 0으로 채우고 길면 잘라 버린다.
func (w *Weights) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var vs []int
	if err := json.Unmarshal(b, &vs); err != nil {
		return err
	}
	if len(vs) != AlphabetSize {
		return fmt.Errorf("%w: got %d entries, want %d", ErrWeightsLength, len(vs), AlphabetSize)
	}
	copy(w[:], vs)
	return nil
}

// Validate 는 빌드 전 호출자 쪽 검증용. BuildTree 자체는 검사하지 않는다.
func (w *Weights) Validate() error {
	for i, v := range w {
		if v < 0 {
			return fmt.Errorf("symbol %d: %w (%d)", i, ErrNegativeWeight, v)
		}
	}
	return nil
}

// Node 는 리프(심볼 하나) 또는 자식 둘을 가진 내부 노드.
type Node struct {
	Weight      int
	Symbol      byte // 리프에서만 의미 있음
	Left, Right *Node

	seq int // 동률 처리용 생성 순번
}

func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Leaves 는 트리의 리프 수.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}
