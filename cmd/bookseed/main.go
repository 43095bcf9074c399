package main

import (
	"flag"
	"os"

	"book-review/global"
	"book-review/initialize"

	"gopkg.in/yaml.v3"
)

// bookseed provisions the catalog out-of-band: it reads a YAML file and
// inserts the books through the same store layer the server uses.

type catalog struct {
	Books []struct {
		Title    string `yaml:"title"`
		ImageURL string `yaml:"image_url"`
		Summary  string `yaml:"summary"`
	} `yaml:"books"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	catalogPath := flag.String("catalog", "books.yaml", "Path to YAML book catalog")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	raw, err := os.ReadFile(*catalogPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("read catalog")
	}
	var cat catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		global.Logger.Fatal().Err(err).Msg("parse catalog")
	}

	for _, b := range cat.Books {
		id, err := app.Books.Add(b.Title, b.ImageURL, b.Summary)
		if err != nil {
			global.Logger.Error().Err(err).Str("title", b.Title).Msg("skip book")
			continue
		}
		global.Logger.Info().Uint("id", id).Str("title", b.Title).Msg("book added")
	}
}
