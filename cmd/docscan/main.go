package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/vnretail/docscan/config"
	"github.com/vnretail/docscan/pkg/pipeline"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")
	fileFlag := flag.String("file", "", "image file")

	flag.Parse()

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "missing -file")
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	p, err := cfg.Pipeline()

	if err != nil {
		panic(err)
	}

	data, err := os.ReadFile(*fileFlag)

	if err != nil {
		panic(err)
	}

	payload := pipeline.Payload{
		Name: filepath.Base(*fileFlag),

		Data:        data,
		ContentType: mime.TypeByExtension(filepath.Ext(*fileFlag)),
	}

	document, err := p.Process(context.Background(), payload)

	if err != nil {
		panic(err)
	}

	output, _ := json.MarshalIndent(document, "", "  ")

	fmt.Println(string(output))
}
