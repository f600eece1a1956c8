// Command tgcore-gen generates payload descriptors and the Requester method
// surface (interface, Base, Forward and Either) from the method catalogue.
//
// Usage:
//
//	go run ./cmd/tgcore-gen -schema schema/methods.yaml -out .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"gopkg.in/yaml.v3"
)

const header = "// Code generated by tgcore-gen from schema/methods.yaml. DO NOT EDIT.\n\n"

type catalogue struct {
	Methods []method `yaml:"methods"`
}

type method struct {
	Name     string  `yaml:"name"`
	GoName   string  `yaml:"go_name"`
	Doc      string  `yaml:"doc"`
	Output   string  `yaml:"output"`
	Required []field `yaml:"required"`
	Optional []field `yaml:"optional"`
}

type field struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	optional bool
}

func main() {
	schema := flag.String("schema", "schema/methods.yaml", "method catalogue")
	out := flag.String("out", ".", "module root to write generated files into")
	flag.Parse()

	if err := run(*schema, *out); err != nil {
		log.Fatal(err)
	}
}

func run(schemaPath, root string) error {
	b, err := os.ReadFile(schemaPath)
	if err != nil {
		return err
	}
	cat, err := parse(b)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", schemaPath, err)
	}
	files, err := render(cat)
	if err != nil {
		return err
	}
	for name, src := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, src, 0o644); err != nil {
			return err
		}
	}
	log.Printf("generated %d files for %d methods", len(files), len(cat.Methods))
	return nil
}

func parse(b []byte) (*catalogue, error) {
	var cat catalogue
	if err := yaml.Unmarshal(b, &cat); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for i := range cat.Methods {
		m := &cat.Methods[i]
		if m.Name == "" {
			return nil, fmt.Errorf("method #%d has no name", i)
		}
		if m.Output == "" {
			return nil, fmt.Errorf("method %s has no output", m.Name)
		}
		if m.GoName == "" {
			m.GoName = exported(m.Name)
		}
		if seen[m.GoName] {
			return nil, fmt.Errorf("duplicate Go name %s", m.GoName)
		}
		seen[m.GoName] = true
		for j := range m.Optional {
			m.Optional[j].optional = true
		}
	}
	return &cat, nil
}

func render(cat *catalogue) (map[string][]byte, error) {
	files := make(map[string][]byte)
	for _, m := range cat.Methods {
		src, err := execute(payloadTmpl, m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.GoName, err)
		}
		files["pkg/payloads/"+snake(m.GoName)+".go"] = src
	}
	for name, tmpl := range map[string]*template.Template{
		"pkg/requests/requester_gen.go": requesterTmpl,
		"pkg/requests/base_gen.go":      baseTmpl,
		"pkg/requests/forward_gen.go":   forwardTmpl,
		"pkg/requests/either_gen.go":    eitherTmpl,
	} {
		src, err := execute(tmpl, cat.Methods)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		files[name] = src
	}
	return files, nil
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

// Fields returns required fields followed by optional ones.
func (m method) Fields() []field {
	return append(append([]field{}, m.Required...), m.Optional...)
}

func (m method) NeedsTypes() bool {
	for _, f := range m.Fields() {
		if f.usesTypes() {
			return true
		}
	}
	return false
}

// HasChat reports whether the first required parameter is the target chat.
func (m method) HasChat() bool {
	return len(m.Required) > 0 && m.Required[0].Name == "chat_id" && m.Required[0].Type == "Recipient"
}

func (m method) HasParseMode() bool {
	for _, f := range m.Optional {
		if f.Name == "parse_mode" {
			return true
		}
	}
	return false
}

func (m method) FileFields() []field {
	var out []field
	for _, f := range m.Fields() {
		if strings.TrimPrefix(f.Type, "*") == "InputFile" {
			out = append(out, f)
		}
	}
	return out
}

// RequiredFiles returns the file fields that are always present.
func (m method) RequiredFiles() []field {
	var out []field
	for _, f := range m.FileFields() {
		if !f.IsPointer() {
			out = append(out, f)
		}
	}
	return out
}

// OptionalFiles returns the file fields that may be nil.
func (m method) OptionalFiles() []field {
	var out []field
	for _, f := range m.FileFields() {
		if f.IsPointer() {
			out = append(out, f)
		}
	}
	return out
}

func (m method) OutputType() string { return goType(m.Output) }

func (m method) Params() string {
	parts := make([]string, len(m.Required))
	for i, f := range m.Required {
		parts[i] = f.Param() + " " + f.GoType()
	}
	return strings.Join(parts, ", ")
}

func (m method) Args() string {
	parts := make([]string, len(m.Required))
	for i, f := range m.Required {
		parts[i] = f.Param()
	}
	return strings.Join(parts, ", ")
}

func (f field) GoField() string { return exported(f.Name) }
func (f field) GoType() string  { return goType(f.Type) }
func (f field) Optional() bool  { return f.optional }
func (f field) IsPointer() bool { return strings.HasPrefix(f.Type, "*") }

func (f field) Param() string {
	s := exported(f.Name)
	for _, ini := range initialisms {
		if strings.HasPrefix(s, ini) {
			return strings.ToLower(ini) + s[len(ini):]
		}
	}
	return string(unicode.ToLower(rune(s[0]))) + s[1:]
}

func (f field) usesTypes() bool { return strings.Contains(f.GoType(), "types.") }

var initialisms = []string{"ID", "URL", "IP"}

var builtin = map[string]bool{
	"string": true, "bool": true, "int": true, "int64": true, "float64": true,
}

func goType(t string) string {
	var prefix string
	for {
		switch {
		case strings.HasPrefix(t, "[]"):
			prefix += "[]"
			t = t[2:]
			continue
		case strings.HasPrefix(t, "*"):
			prefix += "*"
			t = t[1:]
			continue
		}
		break
	}
	if builtin[t] {
		return prefix + t
	}
	return prefix + "types." + t
}

// exported converts snake_case and camelCase names to Go exported names.
func exported(s string) string {
	var b strings.Builder
	for _, word := range splitWords(s) {
		up := strings.ToUpper(word)
		if contains(initialisms, up) {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]) + word[1:])
	}
	return b.String()
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case r == '_':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur = append(cur, unicode.ToLower(r))
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// snake converts a Go exported name to a file-friendly snake_case name.
func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

var payloadTmpl = template.Must(template.New("payload").Parse(`package payloads
{{if .NeedsTypes}}
import "github.com/orgball2608/tgcore/pkg/types"
{{end}}
// {{.GoName}} is the payload of the {{.Name}} method.
//
// {{.Doc}}
{{- if .Fields}}
type {{.GoName}} struct {
{{- range .Fields}}
	{{.GoField}} {{.GoType}} ` + "`" + `json:"{{.Name}}{{if .Optional}},omitempty{{end}}"` + "`" + `
{{- end}}
}
{{- else}}
type {{.GoName}} struct{}
{{- end}}

// New{{.GoName}} returns a {{.GoName}} payload with its required fields set.
func New{{.GoName}}({{.Params}}) {{.GoName}} {
{{- if .Required}}
	return {{.GoName}}{
{{- range .Required}}
		{{.GoField}}: {{.Param}},
{{- end}}
	}
{{- else}}
	return {{.GoName}}{}
{{- end}}
}

// Method implements requests.Payload.
func ({{.GoName}}) Method() string { return "{{.Name}}" }
{{- if .HasChat}}

// Chat returns the chat the request is addressed to.
func (p {{.GoName}}) Chat() types.Recipient { return p.ChatID }
{{- end}}
{{- if .HasParseMode}}

// SetDefaultParseMode sets parse_mode to m unless it is already set.
func (p *{{.GoName}}) SetDefaultParseMode(m types.ParseMode) {
	if p.ParseMode == "" {
		p.ParseMode = m
	}
}
{{- end}}
{{- if .FileFields}}

// Files returns the file fields of the payload keyed by parameter name.
func (p {{.GoName}}) Files() map[string]types.InputFile {
{{- if .RequiredFiles}}
	files := map[string]types.InputFile{
{{- range .RequiredFiles}}
		"{{.Name}}": p.{{.GoField}},
{{- end}}
	}
{{- else}}
	files := make(map[string]types.InputFile)
{{- end}}
{{- range .OptionalFiles}}
	if p.{{.GoField}} != nil {
		files["{{.Name}}"] = *p.{{.GoField}}
	}
{{- end}}
	return files
}
{{- end}}
{{- range .Optional}}

// Set{{.GoField}} sets the {{.Name}} field.
func (p *{{$.GoName}}) Set{{.GoField}}(v {{.GoType}}) *{{$.GoName}} {
	p.{{.GoField}} = v
	return p
}
{{- end}}
`))

var requesterTmpl = template.Must(template.New("requester").Parse(`package requests

import (
	"github.com/orgball2608/tgcore/pkg/payloads"
	"github.com/orgball2608/tgcore/pkg/types"
)

// Requester builds requests for every supported Bot API method. It is
// implemented by the bot and by every bot adaptor.
//
// Methods never perform I/O; the returned request does, once sent.
type Requester interface {
{{- range $i, $m := .}}
{{- if $i}}
{{end}}
	// {{.GoName}} builds a {{.Name}} request. See payloads.{{.GoName}}.
	{{.GoName}}({{.Params}}) *Request[payloads.{{.GoName}}, {{.OutputType}}]
{{- end}}
}
`))

var baseTmpl = template.Must(template.New("base").Parse(`package requests

import (
	"github.com/orgball2608/tgcore/pkg/payloads"
	"github.com/orgball2608/tgcore/pkg/types"
)
{{range .}}
// {{.GoName}} implements Requester.
func (b Base) {{.GoName}}({{.Params}}) *Request[payloads.{{.GoName}}, {{.OutputType}}] {
	return New[payloads.{{.GoName}}, {{.OutputType}}](b.Exec, payloads.New{{.GoName}}({{.Args}}))
}
{{end}}`))

var forwardTmpl = template.Must(template.New("forward").Parse(`package requests

import (
	"github.com/orgball2608/tgcore/pkg/payloads"
	"github.com/orgball2608/tgcore/pkg/types"
)
{{range .}}
// {{.GoName}} implements Requester.
func (f Forward) {{.GoName}}({{.Params}}) *Request[payloads.{{.GoName}}, {{.OutputType}}] {
	return Wrap(f.Inner.{{.GoName}}({{.Args}}), f.Hooks)
}
{{end}}`))

var eitherTmpl = template.Must(template.New("either").Parse(`package requests

import (
	"github.com/orgball2608/tgcore/pkg/payloads"
	"github.com/orgball2608/tgcore/pkg/types"
)
{{range .}}
// {{.GoName}} implements Requester.
func (e Either) {{.GoName}}({{.Params}}) *Request[payloads.{{.GoName}}, {{.OutputType}}] {
	if e.isRight {
		return e.right.{{.GoName}}({{.Args}})
	}
	return e.left.{{.GoName}}({{.Args}})
}
{{end}}`))
