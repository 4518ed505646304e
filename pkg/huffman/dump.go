package huffman

import (
	"strconv"
	"strings"
)

// Dump 은 디버그용 트리 문자열.
// 내부 노드 "<깊이>N(왼쪽)(오른쪽)", 제어문자 리프 "<깊이>l<번호>", 그 외 리프 "<깊이>L<문자>".
func Dump(root *Node) string {
	var sb strings.Builder
	dump(&sb, root, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, level int) {
	if n == nil {
		return
	}
	sb.WriteString(strconv.Itoa(level))
	if n.IsLeaf() {
		if n.Symbol < 32 {
			sb.WriteByte('l')
			sb.WriteString(strconv.Itoa(int(n.Symbol)))
		} else {
			sb.WriteByte('L')
			sb.WriteByte(n.Symbol)
		}
		return
	}
	sb.WriteByte('N')
	sb.WriteByte('(')
	dump(sb, n.Left, level+1)
	sb.WriteByte(')')
	if n.Right != nil {
		sb.WriteByte('(')
		dump(sb, n.Right, level+1)
		sb.WriteByte(')')
	}
}
