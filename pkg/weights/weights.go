// Package weights 는 가중치 테이블을 텍스트에서 세거나 "심볼,가중치" 파일로 읽고 쓴다.
package weights

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cb17225/huffman-compression/pkg/huffman"
)

var (
	ErrNotASCII  = errors.New("weights: byte outside 7-bit range")
	ErrMalformed = errors.New("weights: malformed weights file")
)

// Count 는 r 의 바이트별 출현 횟수를 센다. 종료 심볼(0)은 스트림당 1회로 둔다.
func Count(r io.Reader) (huffman.Weights, error) {
	var w huffman.Weights
	br := bufio.NewReader(r)
	var pos int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return w, err
		}
		if b >= huffman.AlphabetSize {
			return w, fmt.Errorf("%w: 0x%02x at offset %d", ErrNotASCII, b, pos)
		}
		w[b]++
		pos++
	}
	w[huffman.Terminator] = 1
	return w, nil
}

// Read 는 0..127 순서의 "심볼,가중치" 128줄을 읽는다.
func Read(r io.Reader) (huffman.Weights, error) {
	var w huffman.Weights
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	i := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return w, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if i >= huffman.AlphabetSize {
			return w, fmt.Errorf("%w: more than %d lines", ErrMalformed, huffman.AlphabetSize)
		}
		sym, err := strconv.Atoi(rec[0])
		if err != nil || sym != i {
			return w, fmt.Errorf("%w: line %d: symbol %q, want %d", ErrMalformed, i+1, rec[0], i)
		}
		v, err := strconv.Atoi(rec[1])
		if err != nil {
			return w, fmt.Errorf("%w: line %d: weight: %v", ErrMalformed, i+1, err)
		}
		if v < 0 {
			return w, fmt.Errorf("%w: line %d: negative weight %d", ErrMalformed, i+1, v)
		}
		w[i] = v
		i++
	}
	if i != huffman.AlphabetSize {
		return w, fmt.Errorf("%w: %d lines, want %d", ErrMalformed, i, huffman.AlphabetSize)
	}
	return w, nil
}

// Write 는 Read 가 읽는 형식으로 쓴다.
func Write(out io.Writer, w huffman.Weights) error {
	cw := csv.NewWriter(out)
	for i, v := range w {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(v)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
