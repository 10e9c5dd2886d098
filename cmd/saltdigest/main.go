// Command saltdigest encodes a plaintext as a salted digest and verifies it.
//
// With no flags it encodes "Hello World." under SHA-256 and prints the
// encoded value followed by the verification result.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/zoobzio/salt"
	"github.com/zoobzio/salt/json"
	"github.com/zoobzio/salt/xml"
	"github.com/zoobzio/salt/yaml"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// formats are the record formats selectable with --format.
var formats = map[string]func() salt.Format{
	"json": json.New,
	"xml":  xml.New,
	"yaml": yaml.New,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("saltdigest", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.SortFlags = false

	help := flags.BoolP("help", "h", false, "prints this help menu")
	algorithm := flags.StringP("algorithm", "a", "sha-256", "digest algorithm: "+algorithmList())
	text := flags.StringP("text", "t", "Hello World.", "plaintext to encode")
	format := flags.StringP("format", "f", "", "print the sealed record as json, xml, or yaml")
	quiet := flags.BoolP("quiet", "q", false, "prints ONLY the encoded value")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if *help {
		fmt.Fprintln(stdout, "Usage:\n  saltdigest [-a ALGORITHM] [-t TEXT] [-f json|xml|yaml] [-q]\n\nOptions:")
		flags.SetOutput(stdout)
		flags.PrintDefaults()
		return exitOK
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return exitUsage
	}

	var newFormat func() salt.Format
	if *format != "" {
		f, ok := formats[strings.ToLower(*format)]
		if !ok {
			fmt.Fprintf(stderr, "unknown format %q\n", *format)
			return exitUsage
		}
		newFormat = f
	}

	codec, err := salt.New()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	rec, err := codec.Seal(*text, *algorithm)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	if *quiet {
		fmt.Fprintln(stdout, rec.Value)
		return exitOK
	}

	if newFormat != nil {
		data, err := salt.MarshalRecord(newFormat(), rec)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		fmt.Fprintln(stdout, strings.TrimRight(string(data), "\n"))
	} else {
		fmt.Fprintln(stdout, rec.Value)
	}

	ok, err := codec.Open(*text, rec)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	fmt.Fprintln(stdout, ok)
	return exitOK
}

func algorithmList() string {
	names := make([]string, 0, len(salt.Algorithms()))
	for _, a := range salt.Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
