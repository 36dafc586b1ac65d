package semantic

import "github.com/Oeditus/metastatic-sub006/model"

// builtinEntry is a row of the built-in pattern tables below, grouped by
// (domain, language) the same way the teacher's core.builtinFrameworks
// groups prefix-match rows by framework category.
type builtinEntry struct {
	domain    model.Domain
	language  model.Language
	matcher   string
	operation string
	framework string
	extract   ExtractStrategy
}

// builtinPatterns is the seed table registered by NewDefaultRegistry. Each
// row pairs a call-name matcher with the domain/operation it signifies for
// one language's common libraries — the functional analogue of the
// teacher's import-prefix → framework table, reworked for function-call
// classification instead of import resolution.
var builtinPatterns = []builtinEntry{
	// Python — Django ORM
	{model.DomainDB, model.Python, "*.objects.get", "retrieve", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.objects.all", "retrieve_all", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.objects.filter", "query", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.objects.create", "create", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.objects.update", "update", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.objects.delete", "delete", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.select_related", "preload", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.aggregate", "aggregate", "django", ExtractReceiver},
	{model.DomainDB, model.Python, "*.atomic", "transaction", "django", ExtractNone},

	// Python — requests
	{model.DomainHTTP, model.Python, "requests.get", "get", "requests", ExtractFirstArg},
	{model.DomainHTTP, model.Python, "requests.post", "post", "requests", ExtractFirstArg},
	{model.DomainHTTP, model.Python, "requests.put", "put", "requests", ExtractFirstArg},
	{model.DomainHTTP, model.Python, "requests.patch", "patch", "requests", ExtractFirstArg},
	{model.DomainHTTP, model.Python, "requests.delete", "delete", "requests", ExtractFirstArg},
	{model.DomainHTTP, model.Python, "requests.head", "head", "requests", ExtractFirstArg},
	{model.DomainHTTP, model.Python, "requests.request", "request", "requests", ExtractFirstArg},

	// Python — auth
	{model.DomainAuth, model.Python, "authenticate", "authenticate", "django.contrib.auth", ExtractNone},
	{model.DomainAuth, model.Python, "check_password", "verify_password", "django.contrib.auth", ExtractNone},
	{model.DomainAuth, model.Python, "make_password", "hash_password", "django.contrib.auth", ExtractNone},

	// Python — redis cache
	{model.DomainCache, model.Python, "redis.get", "get", "redis", ExtractFirstArg},
	{model.DomainCache, model.Python, "redis.set", "set", "redis", ExtractFirstArg},
	{model.DomainCache, model.Python, "redis.delete", "delete", "redis", ExtractFirstArg},
	{model.DomainCache, model.Python, "redis.expire", "expire", "redis", ExtractFirstArg},
	{model.DomainCache, model.Python, "redis.exists", "exists", "redis", ExtractFirstArg},
	{model.DomainCache, model.Python, "redis.incr", "increment", "redis", ExtractFirstArg},
	{model.DomainCache, model.Python, "redis.decr", "decrement", "redis", ExtractFirstArg},

	// Python — celery queue
	{model.DomainQueue, model.Python, "*.delay", "enqueue", "celery", ExtractReceiver},
	{model.DomainQueue, model.Python, "*.apply_async", "schedule", "celery", ExtractReceiver},
	{model.DomainQueue, model.Python, "*.retry", "retry", "celery", ExtractReceiver},

	// Python — file/os
	{model.DomainFile, model.Python, "open", "open", "builtins", ExtractFirstArg},
	{model.DomainFile, model.Python, "os.remove", "delete", "os", ExtractFirstArg},
	{model.DomainFile, model.Python, "os.mkdir", "mkdir", "os", ExtractFirstArg},
	{model.DomainFile, model.Python, "os.rmdir", "rmdir", "os", ExtractFirstArg},
	{model.DomainFile, model.Python, "os.listdir", "list", "os", ExtractFirstArg},
	{model.DomainFile, model.Python, "shutil.copy", "copy", "shutil", ExtractFirstArg},
	{model.DomainFile, model.Python, "shutil.move", "move", "shutil", ExtractFirstArg},
	{model.DomainFile, model.Python, "os.path.exists", "exists", "os.path", ExtractFirstArg},
	{model.DomainFile, model.Python, "os.stat", "stat", "os", ExtractFirstArg},

	// Python — external APIs
	{model.DomainExternalAPI, model.Python, "stripe.Charge.create", "charge", "stripe", ExtractNone},
	{model.DomainExternalAPI, model.Python, "*.webhook", "webhook", "", ExtractReceiver},

	// Elixir — Ecto.Repo
	{model.DomainDB, model.Elixir, "Repo.get", "retrieve", "ecto", ExtractFirstArg},
	{model.DomainDB, model.Elixir, "Repo.all", "retrieve_all", "ecto", ExtractFirstArg},
	{model.DomainDB, model.Elixir, "Repo.insert", "create", "ecto", ExtractFirstArg},
	{model.DomainDB, model.Elixir, "Repo.update", "update", "ecto", ExtractFirstArg},
	{model.DomainDB, model.Elixir, "Repo.delete", "delete", "ecto", ExtractFirstArg},
	{model.DomainDB, model.Elixir, "Repo.transaction", "transaction", "ecto", ExtractNone},
	{model.DomainHTTP, model.Elixir, "HTTPoison.get", "get", "httpoison", ExtractFirstArg},
	{model.DomainHTTP, model.Elixir, "HTTPoison.post", "post", "httpoison", ExtractFirstArg},
	{model.DomainQueue, model.Elixir, "Task.async", "schedule", "task", ExtractNone},

	// Erlang — OTP-adjacent
	{model.DomainDB, model.Erlang, "mnesia.read", "retrieve", "mnesia", ExtractNone},
	{model.DomainDB, model.Erlang, "mnesia.write", "create", "mnesia", ExtractNone},
	{model.DomainQueue, model.Erlang, "gen_server.cast", "publish", "otp", ExtractNone},
	{model.DomainQueue, model.Erlang, "gen_server.call", "request", "otp", ExtractNone},

	// Ruby — ActiveRecord
	{model.DomainDB, model.Ruby, "*.find", "retrieve", "activerecord", ExtractReceiver},
	{model.DomainDB, model.Ruby, "*.all", "retrieve_all", "activerecord", ExtractReceiver},
	{model.DomainDB, model.Ruby, "*.where", "query", "activerecord", ExtractReceiver},
	{model.DomainDB, model.Ruby, "*.create", "create", "activerecord", ExtractReceiver},
	{model.DomainDB, model.Ruby, "*.update", "update", "activerecord", ExtractReceiver},
	{model.DomainDB, model.Ruby, "*.destroy", "delete", "activerecord", ExtractReceiver},
	{model.DomainHTTP, model.Ruby, "Net::HTTP.get", "get", "net_http", ExtractFirstArg},
	{model.DomainQueue, model.Ruby, "*.perform_async", "enqueue", "sidekiq", ExtractReceiver},

	// Haskell — minimal illustrative set (no dominant ORM/HTTP convention
	// in the reduced surface this adapter parses).
	{model.DomainFile, model.Haskell, "readFile", "read", "base", ExtractFirstArg},
	{model.DomainFile, model.Haskell, "writeFile", "write", "base", ExtractFirstArg},
	{model.DomainQueue, model.Haskell, "forkIO", "process", "base", ExtractNone},
}

// NewDefaultRegistry returns a Registry pre-populated with builtinPatterns,
// in table order (so insertion-order precedence, spec §4.4, is
// deterministic run to run).
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, e := range builtinPatterns {
		// Guard compilation never fails for these literal matchers (no
		// Guard is set), so the error is unreachable here.
		_ = r.Register(e.domain, e.language, &Pattern{
			Matcher:       e.matcher,
			Operation:     e.operation,
			Framework:     e.framework,
			ExtractTarget: e.extract,
		})
	}
	return r
}
