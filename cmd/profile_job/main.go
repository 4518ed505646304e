// profile_job 은 텍스트 파일의 가중치를 세어 서버에 프로필로 올린다.
//
//	profile_job -name english corpus.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cb17225/huffman-compression/internal/config"
	"github.com/cb17225/huffman-compression/internal/handler"
	"github.com/cb17225/huffman-compression/pkg/client"
	"github.com/cb17225/huffman-compression/pkg/weights"
)

func main() {
	cfg := config.Load()
	name := flag.String("name", "", "profile name")
	server := flag.String("server", cfg.ServerURL, "server base url")
	minimize := flag.Bool("minimize", cfg.Minimize, "drop zero-weight symbols from the tree")
	flag.Parse()
	if *name == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: profile_job -name NAME FILE")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()
	w, err := weights.Count(f)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	c := client.New(*server)
	p, err := c.SaveProfile(handler.ProfileReq{Name: *name, Weights: &w, Minimize: minimize})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	codes, err := c.Codes(p.Name)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("profile %q saved: %d codes\n", p.Name, len(codes))
	for _, s := range codes.Symbols() {
		fmt.Printf("%3d %q %s\n", s, rune(s), codes[s])
	}
}
