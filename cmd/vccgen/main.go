// Command vccgen renders the command facade of the vision controller client
// from the declarative command table.
//
//	go run ./cmd/vccgen --input rpc/client/commands.yaml --output rpc/client/commands_gen.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Param is one parameter of a command
type Param struct {
	Name        string `yaml:"name"`
	Key         string `yaml:"key"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required"`
	Description string `yaml:"description"`
}

// Command is one row of the command table
type Command struct {
	Name          string  `yaml:"name"`
	Command       string  `yaml:"command"`
	Channel       string  `yaml:"channel"`
	Timeout       float64 `yaml:"timeout"`
	FireAndForget bool    `yaml:"fireAndForget"`
	Returns       string  `yaml:"returns"`
	Description   string  `yaml:"description"`
	Params        []Param `yaml:"params"`
}

type table struct {
	Commands []Command `yaml:"commands"`
}

var (
	rootCmd = &cobra.Command{
		Use:   "vccgen",
		Short: "Render the command facade of the vision controller client",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	input  string
	output string
	pkg    string
)

func init() {
	rootCmd.Flags().StringVar(&input, "input", "commands.yaml", "command table")
	rootCmd.Flags().StringVar(&output, "output", "commands_gen.go", "output path of the generated go file")
	rootCmd.Flags().StringVar(&pkg, "package", "client", "package name of the generated file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return errors.Wrapf(err, "failed to parse %s", input)
	}
	if err := validate(t.Commands); err != nil {
		return errors.Wrapf(err, "invalid command table %s", input)
	}

	src, err := render(pkg, t.Commands)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d commands to %s\n", len(t.Commands), output)
	return nil
}

// validate checks the table and fills in defaults
func validate(commands []Command) error {
	seen := make(map[string]bool)
	for i := range commands {
		c := &commands[i]
		if c.Name == "" {
			return errors.Newf("command %d has no name", i)
		}
		if seen[c.Name] {
			return errors.Newf("duplicate command %s", c.Name)
		}
		seen[c.Name] = true

		if c.Command == "" {
			c.Command = c.Name
		}
		if c.Channel != "command" && c.Channel != "config" {
			return errors.Newf("%s: invalid channel %q", c.Name, c.Channel)
		}
		if c.Timeout <= 0 {
			return errors.Newf("%s: timeout must be positive", c.Name)
		}
		if c.Returns != "object" && c.Returns != "string" {
			return errors.Newf("%s: invalid return type %q", c.Name, c.Returns)
		}
		for _, p := range c.Params {
			if p.Name == "" || p.Key == "" {
				return errors.Newf("%s: parameter without name or key", c.Name)
			}
			if _, ok := paramTypes[p.Type]; !ok {
				return errors.Newf("%s: parameter %s has unsupported type %q", c.Name, p.Name, p.Type)
			}
		}
	}
	return nil
}

// paramType describes how a parameter type is checked and sent
type paramType struct {
	isSet    string // condition for optional parameters, %s is the field
	value    string // expression of the sent value
	required string // condition of a missing required parameter, empty if always present
}

var paramTypes = map[string]paramType{
	"string":              {isSet: "%s != \"\"", value: "%s", required: "%s == \"\""},
	"bool":                {isSet: "%s", value: "%s"},
	"*bool":               {isSet: "%s != nil", value: "*%s", required: "%s == nil"},
	"int64":               {isSet: "%s != 0", value: "%s"},
	"[]string":            {isSet: "%s != nil", value: "%s", required: "%s == nil"},
	"[]int64":             {isSet: "%s != nil", value: "%s", required: "%s == nil"},
	"[]float64":           {isSet: "%s != nil", value: "%s", required: "%s == nil"},
	"map[string]any":      {isSet: "%s != nil", value: "%s", required: "%s == nil"},
	"map[string]string":   {isSet: "%s != nil", value: "%s", required: "%s == nil"},
	"*common.SystemState": {isSet: "%s != nil", value: "%s.ToMap()", required: "%s == nil"},
}

var funcs = template.FuncMap{
	"isSet": func(p Param) string { return fmt.Sprintf(paramTypes[p.Type].isSet, "p."+p.Name) },
	"value": func(p Param) string { return fmt.Sprintf(paramTypes[p.Type].value, "p."+p.Name) },
	"missing": func(p Param) string {
		if !p.Required || paramTypes[p.Type].required == "" {
			return ""
		}
		return fmt.Sprintf(paramTypes[p.Type].required, "p."+p.Name)
	},
	"channel": func(c Command) string {
		if c.Channel == "config" {
			return "common.ChannelConfig"
		}
		return "common.ChannelCommand"
	},
	"result": func(c Command) string {
		if c.Returns == "string" {
			return "string"
		}
		return "map[string]any"
	},
	"convert": func(c Command) string {
		if c.Returns == "string" {
			return "stringResult"
		}
		return "objectResult"
	},
	"lower": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToLower(s[:1]) + s[1:]
	},
	"float": func(f float64) string { return fmt.Sprintf("%.1f", f) },
}

var tmpl = template.Must(template.New("facade").Funcs(funcs).Parse(`// Code generated by vccgen from commands.yaml. DO NOT EDIT.

package {{ .Package }}

import (
	"github.com/ValentinKolb/vcc/rpc/common"
)

// Default timeouts in seconds
const (
{{- range .Commands }}
	DefaultTimeout{{ .Name }} = {{ float .Timeout }}
{{- end }}
)

// Commands lists all commands of the vision controller
var Commands = []CommandInfo{
{{- range .Commands }}
	{Name: "{{ .Name }}", Command: "{{ .Command }}", Channel: {{ channel . }}, TimeoutSeconds: DefaultTimeout{{ .Name }}, FireAndForget: {{ .FireAndForget }}, Returns: "{{ .Returns }}"},
{{- end }}
}
{{ range $c := .Commands }}
// --------------------------------------------------------------------------
// {{ $c.Name }}
// --------------------------------------------------------------------------

// {{ $c.Name }}Params are the parameters of {{ $c.Name }}
type {{ $c.Name }}Params struct {
{{- range $c.Params }}
	// {{ .Description }}{{ if .Required }} (required){{ end }}
	{{ .Name }} {{ .Type }}
{{- end }}
}

func (p {{ $c.Name }}Params) validate() error {
{{- range $p := $c.Params }}{{ with missing $p }}
	if {{ . }} {
		return missingParameter("{{ $c.Name }}", "{{ $p.Key }}")
	}
{{- end }}{{ end }}
	return nil
}

func (p {{ $c.Name }}Params) parameters() map[string]any {
	m := make(map[string]any)
{{- range $c.Params }}
{{- if .Required }}
	m["{{ .Key }}"] = {{ value . }}
{{- else }}
	if {{ isSet . }} {
		m["{{ .Key }}"] = {{ value . }}
	}
{{- end }}
{{- end }}
	return m
}

// {{ $c.Name }} {{ lower $c.Description }}
// Sent as {{ $c.Command }} on the {{ $c.Channel }} channel. A timeout of 0 uses DefaultTimeout{{ $c.Name }}
func (c *Client) {{ $c.Name }}(params {{ $c.Name }}Params, timeoutSeconds float64) ({{ result $c }}, error) {
	if err := params.validate(); err != nil {
		return {{ if eq $c.Returns "string" }}""{{ else }}nil{{ end }}, err
	}
	result, err := c.Call({{ channel $c }}, "{{ $c.Command }}", params.parameters(), timeoutOrDefault(timeoutSeconds, DefaultTimeout{{ $c.Name }}))
	return {{ convert $c }}("{{ $c.Command }}", result, err)
}
{{ if $c.FireAndForget }}
// {{ $c.Name }}FireAndForget sends {{ $c.Name }} and returns without waiting for the reply
func (c *Client) {{ $c.Name }}FireAndForget(params {{ $c.Name }}Params, timeoutSeconds float64) error {
	if err := params.validate(); err != nil {
		return err
	}
	return c.CallFireAndForget({{ channel $c }}, "{{ $c.Command }}", params.parameters(), timeoutOrDefault(timeoutSeconds, DefaultTimeout{{ $c.Name }}))
}
{{ end }}{{ end }}`))

// render executes the template and formats the result
func render(pkg string, commands []Command) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package  string
		Commands []Command
	}{pkg, commands})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to format generated code\n%s", buf.String())
	}
	return src, nil
}
