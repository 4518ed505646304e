package model

import (
	"time"

	"github.com/cb17225/huffman-compression/pkg/huffman"
)

// Profile 은 이름이 붙은 가중치 테이블. 인코딩/디코딩 양쪽이 같은 트리를 만들 때 쓴다.
type Profile struct {
	Name      string          `json:"name"`
	Weights   huffman.Weights `json:"weights"`
	Minimize  bool            `json:"minimize"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
