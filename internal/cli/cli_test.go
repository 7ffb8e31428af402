package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cyjs/pkg/errors"
	"github.com/matzehuels/cyjs/pkg/graph"
	"github.com/matzehuels/cyjs/pkg/io"
)

const sampleEdgeList = `# services
graph title=platform
api name=API label=Gateway
api db kind=sql
api cache
worker db kind=sql
`

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func nodeNames(t *testing.T, out string) map[string]any {
	t.Helper()
	doc, err := io.ReadJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v\n%s", err, out)
	}
	names := make(map[string]any)
	for _, n := range doc.Elements.Nodes {
		id, _ := n.Data.Get("id")
		names[id.(string)], _ = n.Data.Get("name")
	}
	return names
}

func TestExportStdout(t *testing.T) {
	input := writeFile(t, "services.txt", sampleEdgeList)

	out, err := execute(t, "export", input, "--directed")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	doc, err := io.ReadJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if !doc.Directed || doc.Multigraph {
		t.Errorf("flags = (%v, %v), want (true, false)", doc.Directed, doc.Multigraph)
	}
	if len(doc.Elements.Nodes) != 4 || len(doc.Elements.Edges) != 3 {
		t.Errorf("got %d nodes and %d edges, want 4 and 3", len(doc.Elements.Nodes), len(doc.Elements.Edges))
	}

	names := nodeNames(t, out)
	if names["api"] != "API" || names["db"] != "db" {
		t.Errorf("names = %v, want api=API and db=db", names)
	}
}

func TestExportAttrKeyOverrides(t *testing.T) {
	input := writeFile(t, "services.txt", sampleEdgeList)
	cfg := writeFile(t, "cyjs.toml", "[attrs]\nname = \"label\"\n")
	yamlCfg := writeFile(t, "cyjs.yaml", "attrs:\n  name: label\n")

	tests := []struct {
		name string
		args []string
		want any
	}{
		{"default", nil, "API"},
		{"flag", []string{"--name-field", "label"}, "Gateway"},
		{"config file", []string{"--config", cfg}, "Gateway"},
		{"yaml config file", []string{"--config", yamlCfg}, "Gateway"},
		{"flag over config file", []string{"--config", cfg, "--name-field", "kind"}, "api"},
		{"id field ignored", []string{"--id-field", "key"}, "API"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"export", input}, tt.args...)...)
			if err != nil {
				t.Fatalf("export error: %v", err)
			}
			if got := nodeNames(t, out)["api"]; got != tt.want {
				t.Errorf("api name = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExportInvalidMapping(t *testing.T) {
	input := writeFile(t, "services.txt", sampleEdgeList)

	tests := []struct {
		name     string
		args     []string
		wantCode errors.Code
	}{
		{"source equals target", []string{"--source-field", "target"}, errors.ErrCodeInvalidConfiguration},
		{"name equals source", []string{"--name-field", "source"}, errors.ErrCodeInvalidConfiguration},
		{"whitespace field", []string{"--name-field", " label"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.toml")}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"export", input}, tt.args...)...)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("export error = %v, want code %v", err, tt.wantCode)
			}
		})
	}

	_, err := execute(t, "export", input, "--source-field", "target")
	var cfgErr *errors.ConfigurationError
	if !stderrors.As(err, &cfgErr) {
		t.Errorf("export error = %T, want *errors.ConfigurationError", err)
	}
}

func TestExportFileThenInspect(t *testing.T) {
	input := writeFile(t, "services.txt", sampleEdgeList)
	output := filepath.Join(t.TempDir(), "services.json")

	out, err := execute(t, "export", input, "-o", output, "--multigraph")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if !strings.Contains(out, output) {
		t.Errorf("export output does not mention %s:\n%s", output, out)
	}

	out, err = execute(t, "inspect", output)
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"services.json", "4", "3", "multigraph", "yes", "title", "platform", "API (2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectMalformed(t *testing.T) {
	doc := writeFile(t, "bad.json", `{"elements": {"nodes": [{"data": {"id": "a"}}]}}`)

	_, err := execute(t, "inspect", doc)
	if !errors.Is(err, errors.ErrCodeMalformedDocument) {
		t.Errorf("inspect error = %v, want code %v", err, errors.ErrCodeMalformedDocument)
	}
}

func TestRenderDOT(t *testing.T) {
	input := writeFile(t, "services.txt", sampleEdgeList)
	doc := filepath.Join(t.TempDir(), "services.json")
	if _, err := execute(t, "export", input, "-o", doc, "--directed"); err != nil {
		t.Fatalf("export error: %v", err)
	}

	dotPath := filepath.Join(t.TempDir(), "services.dot")
	if _, err := execute(t, "render", doc, "-o", dotPath); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(dotPath)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	for _, want := range []string{"digraph G {", `"api" -> "db";`, `"api" [label="API"];`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	out, err := execute(t, "render", doc, "-f", "dot", "--detailed")
	if err != nil {
		t.Fatalf("render to stdout error: %v", err)
	}
	if !strings.Contains(out, `kind: sql`) {
		t.Errorf("detailed DOT missing edge attributes:\n%s", out)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering skipped in short mode")
	}
	doc := writeFile(t, "g.json", `{"directed": true, "elements": {"nodes": [], "edges": [{"data": {"source": "a", "target": "b"}}]}}`)

	out, err := execute(t, "render", doc, "-f", "svg")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("output is not SVG:\n%s", out)
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	doc := writeFile(t, "g.json", `{"elements": {"nodes": [], "edges": []}}`)

	_, err := execute(t, "render", doc, "-o", filepath.Join(t.TempDir(), "g.gif"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("render error = %v, want code %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		flag, output, fallback string
		want                   string
	}{
		{"", "", "svg", "svg"},
		{"", "out.dot", "svg", "dot"},
		{"", "out.SVG", "dot", "svg"},
		{"DOT", "out.svg", "svg", "dot"},
		{"", "out", "dot", "dot"},
	}
	for _, tt := range tests {
		if got := resolveFormat(tt.flag, tt.output, tt.fallback); got != tt.want {
			t.Errorf("resolveFormat(%q, %q, %q) = %q, want %q", tt.flag, tt.output, tt.fallback, got, tt.want)
		}
	}
}

func TestTopNodes(t *testing.T) {
	g := graph.New[string]()
	g.AddNode("hub", graph.NewAttrs("name", "Hub"))
	g.AddNode("lonely", nil)
	for _, leaf := range []string{"a", "b", "c"} {
		g.AddEdge("hub", leaf, nil)
	}
	g.AddEdge("a", "b", nil)

	got := topNodes(g, 3)
	want := []rankedNode{{"Hub", 3}, {"a", 2}, {"b", 2}}
	if len(got) != len(want) {
		t.Fatalf("topNodes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topNodes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_cyjs"},
		{"zsh", "#compdef cyjs"},
		{"fish", "complete -c cyjs"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := execute(t, "completion", tt.shell)
			if err != nil {
				t.Fatalf("completion %s error: %v", tt.shell, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("completion %s output missing %q", tt.shell, tt.want)
			}
		})
	}
}

func TestCompletionUnknownShell(t *testing.T) {
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh error = nil, want error")
	}
}

func TestCompletionRenderFormat(t *testing.T) {
	out, err := execute(t, "__complete", "render", "g.json", "--format", "")
	if err != nil {
		t.Fatalf("__complete error: %v", err)
	}
	for _, f := range []string{"dot", "svg"} {
		if !strings.Contains(out, f) {
			t.Errorf("format completions = %q, missing %q", out, f)
		}
	}
}
