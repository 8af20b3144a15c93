// Command citeref is the CLI tool for scripture reference parsing.
// It provides commands for matching, searching, formatting, and serving
// scripture references over HTTP.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/citerefs/internal/api"
	"github.com/FocuswithJustin/citerefs/internal/logging"
	"github.com/FocuswithJustin/citerefs/scripture"
)

const version = "0.1.0"

// CLI defines the command-line interface for citeref.
var CLI struct {
	Match   MatchCmd   `cmd:"" help:"Parse text that names exactly one passage"`
	Search  SearchCmd  `cmd:"" help:"Find every passage reference in text or files"`
	Format  FormatCmd  `cmd:"" help:"Format a reference using a layout string"`
	Serve   ServeCmd   `cmd:"" help:"Start the reference-scan HTTP/WebSocket server"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// MatchCmd parses a single piece of text and requires it to name exactly
// one passage.
type MatchCmd struct {
	Text string `arg:"" help:"Text to parse"`
}

func (c *MatchCmd) Run() error {
	model := scripture.Standard()
	p, err := model.Match(c.Text)
	if err != nil {
		logging.ParseRejected(c.Text, "match", err)
		return fmt.Errorf("no passage: %w", err)
	}
	fmt.Println(p.String())
	return nil
}

// SearchCmd finds every recognized passage in text or, if Files is given,
// in each named file.
type SearchCmd struct {
	Text  string   `arg:"" optional:"" help:"Text to search (reads stdin if omitted and no files given)"`
	Files []string `short:"f" help:"Files to scan instead of inline text"`
}

func (c *SearchCmd) Run() error {
	model := scripture.Standard()

	if len(c.Files) > 0 {
		results := scripture.ScanFiles(context.Background(), model, c.Files, 0)
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("%s: error: %v\n", r.Path, r.Err)
				continue
			}
			for _, p := range r.Passages {
				fmt.Printf("%s: %s\n", r.Path, p.String())
			}
		}
		return nil
	}

	text := c.Text
	if text == "" {
		data, err := readStdin()
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = data
	}

	stream := model.Search(text)
	for {
		p, ok, err := stream.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		fmt.Println(p.String())
	}
	return nil
}

func readStdin() (string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)
	var sb []byte
	for scanner.Scan() {
		sb = append(sb, scanner.Bytes()...)
		sb = append(sb, '\n')
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return string(sb), nil
}

// FormatCmd parses a reference and renders it using layout's mini-language.
type FormatCmd struct {
	Text   string `arg:"" help:"Text naming a single passage"`
	Layout string `arg:"" help:"Layout string (B/A/C/V, uppercase=first, lowercase=last, P=canonical span)"`
}

func (c *FormatCmd) Run() error {
	model := scripture.Standard()
	p, err := model.Match(c.Text)
	if err != nil {
		return fmt.Errorf("no passage: %w", err)
	}
	fmt.Println(p.Format(c.Layout))
	return nil
}

// ServeCmd starts the reference-scan HTTP/WebSocket server.
type ServeCmd struct {
	Port int `help:"HTTP server port" default:"8080"`
}

func (c *ServeCmd) Run() error {
	cfg := api.Config{Port: c.Port, Model: scripture.Standard()}
	return api.Start(cfg)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("citeref version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("citeref"),
		kong.Description("Scripture reference parsing, search, and formatting"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
