// Package main provides a64fields, a command that splits A64 instruction
// words into op0 groups and named components.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/sarchlab/a64fields/config"
	"github.com/sarchlab/a64fields/insts"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("a64fields", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "Path to classification table JSON file")
	fallback := flags.Bool("fallback", false, "Report unmatched op0 values as Unknown instead of failing")
	verbose := flags.Bool("v", false, "Print every component of each word")
	dump := flags.Bool("dump", false, "Dump each decoded instruction")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	tableConfig := config.DefaultTableConfig()
	if *configPath != "" {
		var err error
		tableConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading table config: %v\n", err)
			return 1
		}
	}

	if *fallback && tableConfig.Fallback == "" {
		tableConfig.Fallback = insts.GroupUnknown.String()
	}

	opts, err := tableConfig.DecoderOptions()
	if err != nil {
		fmt.Fprintf(stderr, "Error in table config: %v\n", err)
		return 1
	}
	decoder := insts.NewDecoder(opts...)

	words := flags.Args()
	if len(words) == 0 {
		words, err = readWords(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading words: %v\n", err)
			return 1
		}
	}

	p := &printer{out: stdout, verbose: *verbose, dump: *dump}
	failed := 0
	for _, text := range words {
		if err := p.decode(decoder, text); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", text, err)
			failed++
		}
	}

	if failed > 0 {
		return 1
	}

	return 0
}

// readWords reads one word per line, skipping blank lines and # comments.
func readWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		words = append(words, line)
	}

	return words, scanner.Err()
}

// printer writes decoded words.
type printer struct {
	out     io.Writer
	verbose bool
	dump    bool
}

// decode parses, decodes and prints one word.
func (p *printer) decode(decoder *insts.Decoder, text string) error {
	word, err := insts.ParseWord(text)
	if err != nil {
		return err
	}

	inst, err := decoder.Decode(word)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "%v op0=%04b group=%v\n", inst.Word, uint32(inst.Op0), inst.Group)

	if p.verbose {
		for _, c := range inst.Components {
			fmt.Fprintf(p.out, "  %v (%d)\n", c, uint32(c.Value))
		}
	}

	if p.dump {
		spew.Fdump(p.out, inst)
	}

	return nil
}
