package taint

import (
	"strings"

	"github.com/Oeditus/metastatic-sub006/model"
)

// sinkEntry pairs a call-name pattern with the sink category it belongs
// to; category drives both risk level and recommendation text.
type sinkEntry struct {
	pattern string
	kind    string // "eval", "shell", "sql", "template"
}

var sinkTable = map[model.Language][]sinkEntry{
	model.Python: {
		{"eval", "eval"}, {"exec", "eval"}, {"compile", "eval"},
		{"os.system", "shell"}, {"subprocess.run", "shell"}, {"subprocess.call", "shell"},
		{"subprocess.Popen", "shell"}, {"subprocess.check_output", "shell"},
		{"cursor.execute", "sql"}, {"execute", "sql"}, {"raw", "sql"},
		{"render_template_string", "template"}, {"render_template", "template"}, {"Template.render", "template"},
	},
	model.Elixir: {
		{"Code.eval_string", "eval"}, {"System.cmd", "shell"},
		{"Repo.query", "sql"}, {"Ecto.Adapters.SQL.query", "sql"},
		{"EEx.eval_string", "template"},
	},
	model.Erlang: {
		{"erl_eval:expr", "eval"}, {"os:cmd", "shell"},
	},
	model.Ruby: {
		{"eval", "eval"}, {"instance_eval", "eval"},
		{"system", "shell"}, {"exec", "shell"}, {"`", "shell"},
		{"execute", "sql"}, {"find_by_sql", "sql"},
		{"render", "template"},
	},
	model.Haskell: {
		{"system", "shell"}, {"callCommand", "shell"},
	},
}

func matchSink(lang model.Language, name string) (string, bool) {
	for _, e := range sinkTable[lang] {
		if matchesFunctionName(name, e.pattern) {
			return e.kind, true
		}
	}
	return "", false
}

var sourceTable = map[model.Language][]string{
	model.Python:  {"input", "os.environ", "os.getenv", "sys.argv", "request.GET", "request.POST", "request.args", "request.form", "request.json", "request.data"},
	model.Elixir:  {"System.get_env", "IO.gets"},
	model.Erlang:  {"os:getenv", "init:get_argument"},
	model.Ruby:    {"gets", "ENV", "params"},
	model.Haskell: {"getArgs", "getEnv", "getLine", "getContents"},
}

func isSource(lang model.Language, name string) bool {
	for _, p := range sourceTable[lang] {
		if matchesFunctionName(name, p) {
			return true
		}
	}
	return false
}

var sanitizerTable = map[model.Language][]string{
	model.Python:  {"html.escape", "shlex.quote", "urllib.parse.quote", "urllib.parse.quote_plus", "bleach.clean"},
	model.Elixir:  {"Plug.HTML.html_escape", "HtmlEntities.encode"},
	model.Erlang:  {},
	model.Ruby:    {"CGI.escape", "ERB::Util.html_escape", "Shellwords.escape"},
	model.Haskell: {},
}

func isSanitizer(lang model.Language, name string) bool {
	for _, p := range sanitizerTable[lang] {
		if matchesFunctionName(name, p) {
			return true
		}
	}
	return false
}

var nonPropagatorTable = map[model.Language][]string{
	model.Python:  {"len", "type", "isinstance", "hasattr", "id", "bool", "int", "str", "float", "repr"},
	model.Elixir:  {"is_nil", "is_binary", "is_integer", "length"},
	model.Erlang:  {"is_list", "is_binary", "length"},
	model.Ruby:    {"nil?", "length", "size", "class"},
	model.Haskell: {"length", "null"},
}

func isNonPropagator(lang model.Language, name string) bool {
	for _, p := range nonPropagatorTable[lang] {
		if matchesFunctionName(name, p) {
			return true
		}
	}
	return false
}

// matchesFunctionName reports whether callTarget matches pattern, as an
// exact match, a dotted/module suffix match (builtins.eval ~ eval), or a
// receiver-prefix match (request.GET.get ~ request.GET.). Grounded
// directly on the teacher's matchesFunctionName in
// graph/callgraph/analysis/taint/analyzer.go.
func matchesFunctionName(callTarget, pattern string) bool {
	if callTarget == pattern {
		return true
	}
	if strings.HasSuffix(callTarget, "."+pattern) {
		return true
	}
	if strings.HasPrefix(callTarget, pattern+".") {
		return true
	}
	if idx := strings.LastIndex(callTarget, "."); idx >= 0 && idx < len(callTarget)-1 {
		if callTarget[idx+1:] == pattern {
			return true
		}
	}
	return false
}
