// job 은 로컬 파일 인코딩/디코딩 도구.
//
//	job encode -in text.txt -out text.huf -weights text.csv [-minimize=false]
//	job decode -in text.huf -out text.txt -weights text.csv [-minimize=false]
//
// weights 파일에는 minimize 값이 저장되지 않는다. encode 와 decode 는 같은 -minimize 로 돌려야 한다.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/cb17225/huffman-compression/internal/config"
	"github.com/cb17225/huffman-compression/pkg/codec"
	"github.com/cb17225/huffman-compression/pkg/huffman"
	"github.com/cb17225/huffman-compression/pkg/logger"
	"github.com/cb17225/huffman-compression/pkg/weights"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cfg := config.Load()
	logg := logger.New("job", cfg.Debug)

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	in := fs.String("in", "", "input file")
	out := fs.String("out", "", "output file")
	wf := fs.String("weights", "", "weights file (symbol,weight per line)")
	minimize := fs.Bool("minimize", cfg.Minimize, "drop zero-weight symbols from the tree")
	_ = fs.Parse(os.Args[2:])
	if *in == "" || *out == "" || *wf == "" {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = encode(logg, *in, *out, *wf, *minimize)
	case "decode":
		err = decode(logg, *in, *out, *wf, *minimize)
	default:
		usage()
	}
	if err != nil {
		logg.Errorf("%s: %v", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: job encode|decode -in FILE -out FILE -weights FILE [-minimize=bool]")
	fmt.Fprintln(os.Stderr, "  decode must use the same -minimize value as the encode run that wrote FILE")
	os.Exit(2)
}

func encode(logg logger.Logger, in, out, wf string, minimize bool) error {
	text, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	w, err := weights.Count(bytes.NewReader(text))
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	c, err := codec.New(w, minimize)
	if err != nil {
		return err
	}
	packed, bits, err := c.Encode(text)
	if err != nil {
		return err
	}

	var wbuf bytes.Buffer
	if err := weights.Write(&wbuf, w); err != nil {
		return err
	}
	if err := os.WriteFile(wf, wbuf.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(out, packed, 0o644); err != nil {
		return err
	}
	logg.Debugf("tree %s", huffman.Dump(c.Root()))
	logg.Infof("%s: %d bytes -> %d bits (%d bytes)", in, len(text), bits, len(packed))
	return nil
}

func decode(logg logger.Logger, in, out, wf string, minimize bool) error {
	f, err := os.Open(wf)
	if err != nil {
		return err
	}
	defer f.Close()
	w, err := weights.Read(f)
	if err != nil {
		return fmt.Errorf("%s: %w", wf, err)
	}
	c, err := codec.New(w, minimize)
	if err != nil {
		return err
	}
	packed, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	text, err := c.Decode(packed)
	if err != nil {
		return fmt.Errorf("%s: %w (decoded %d bytes)", in, err, len(text))
	}
	if err := os.WriteFile(out, text, 0o644); err != nil {
		return err
	}
	logg.Infof("%s: %d bytes -> %d bytes", in, len(packed), len(text))
	return nil
}
