package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"nikand.dev/go/urlspan"
)

var (
	parseFormat  string
	parseColor   string
	parseDecode  bool
	parseOffsets bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [url...]",
	Short: "Split URLs into components",
	Long:  "Parse each URL and print its present components. Absent components are omitted; empty ones are printed.",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "text", "Output format: text, yaml, json")
	parseCmd.Flags().StringVar(&parseColor, "color", "auto", "Color text output: auto, always, never")
	parseCmd.Flags().BoolVar(&parseDecode, "decode", false, "Percent-decode component values")
	parseCmd.Flags().BoolVar(&parseOffsets, "offsets", false, "Show component offset+length in text output")
}

type component struct {
	Part   string `json:"part" yaml:"part"`
	Value  string `json:"value" yaml:"value"`
	Offset int    `json:"offset" yaml:"offset"`
	Length int    `json:"length" yaml:"length"`
}

type parsedURL struct {
	URL        string      `json:"url" yaml:"url"`
	IPv6       bool        `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
	Components []component `json:"components" yaml:"components"`
}

// styles holds color formatters for text output.
type styles struct {
	url     *color.Color
	part    *color.Color
	value   *color.Color
	offsets *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		url:     color.New(color.Bold, color.FgHiWhite),
		part:    color.New(color.FgHiBlue),
		value:   color.New(color.FgHiGreen),
		offsets: color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{s.url, s.part, s.value, s.offsets} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

func runParse(cmd *cobra.Command, args []string) error {
	urls, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	res := make([]parsedURL, 0, len(urls))

	for _, in := range urls {
		u, err := urlspan.Parse(in)
		if err != nil {
			return errors.Wrapf(err, "parse %q", in)
		}

		logf(cmd, "parsed %q: %v\n", in, u.State)

		p, err := describe(in, u)
		if err != nil {
			return err
		}

		res = append(res, p)
	}

	out := cmd.OutOrStdout()

	switch parseFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(res); err != nil {
			return errors.Wrap(err, "encode yaml")
		}

		return enc.Close()
	case "text":
		enabled, err := colorEnabled(parseColor, out)
		if err != nil {
			return err
		}

		return outputParseText(out, newStyles(enabled), res)
	default:
		return errors.Errorf("unknown output format: %s", parseFormat)
	}
}

func describe(in string, u urlspan.URL) (p parsedURL, err error) {
	p = parsedURL{
		URL:        in,
		IPv6:       u.Has(urlspan.IPv6),
		Components: []component{},
	}

	for _, part := range urlspan.Components {
		if !u.Has(part) {
			continue
		}

		s := u.Span(part)
		v := s.Text(in)

		if parseDecode {
			st, buf := urlspan.AppendDecode(nil, v)
			if st.Err() {
				return p, errors.Wrapf(st, "decode %v of %q", part, in)
			}

			v = string(buf)
		}

		p.Components = append(p.Components, component{
			Part:   part.String(),
			Value:  v,
			Offset: s.Off,
			Length: s.Len,
		})
	}

	return p, nil
}

func outputParseText(w io.Writer, s *styles, res []parsedURL) error {
	for _, p := range res {
		if _, err := s.url.Fprintln(w, p.URL); err != nil {
			return err
		}

		for _, c := range p.Components {
			s.part.Fprintf(w, "  %-9s", c.Part+":")
			s.value.Fprintf(w, " %s", c.Value)

			if parseOffsets {
				s.offsets.Fprintf(w, "  [%d+%d]", c.Offset, c.Length)
			}

			fmt.Fprintln(w)
		}
	}

	return nil
}

// colorEnabled resolves --color; auto means w is a terminal and NO_COLOR is unset.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)

		return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, errors.Errorf("unknown color mode: %s", mode)
	}
}
