package main

import (
	"flag"
	"log"

	"github.com/intiprima/backoffice/internal/app"
	"github.com/intiprima/backoffice/internal/config"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config: ", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal("init app: ", err)
	}

	if err := a.Run(); err != nil {
		log.Fatal("server: ", err)
	}
}
