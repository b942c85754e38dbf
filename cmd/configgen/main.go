package main

import (
	"flag"
	"log"

	"github.com/danmuck/radiotap/internal/config"
)

const defaultPath = "cmd/radiotapdump/config.toml"

func main() {
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to "+defaultPath+")")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = defaultPath
		}
		cfg, err := config.LoadDumpConfig(path)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated radiotapdump config at %s (workers=%d level=%s)", path, cfg.Workers, cfg.Log.Level)
		return
	}

	target := *output
	if target == "" {
		target = defaultPath
	}
	if err := config.WriteTemplate(target, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote radiotapdump config template to %s", target)
}
