package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/Oeditus/metastatic-sub006/output"
)

func TestExtensionForKnownLanguages(t *testing.T) {
	cases := map[model.Language]string{
		model.Python:  ".py",
		model.Elixir:  ".ex",
		model.Erlang:  ".erl",
		model.Ruby:    ".rb",
		model.Haskell: ".hs",
	}
	for lang, ext := range cases {
		assert.Equal(t, ext, extensionFor(lang))
	}
}

func TestExtensionForUnknownLanguage(t *testing.T) {
	assert.Equal(t, "", extensionFor(model.Language("cobol")))
}

func TestTranslateFileRoundTripsThroughSameLanguage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.py")
	require.NoError(t, os.WriteFile(src, []byte("x = 1\n"), 0o644))

	e := newEngine()
	out, err := translateFile(e, src, "", "python")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTranslateFileUnresolvableLanguage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.mystery")
	require.NoError(t, os.WriteFile(src, []byte("x = 1\n"), 0o644))

	e := newEngine()
	_, err := translateFile(e, src, "", "python")
	assert.Error(t, err)
}

func TestTranslateDirSkipsUnrecognizedFiles(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.py"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("hello"), 0o644))

	e := newEngine()
	log := output.NewLogger(output.VerbosityDefault)
	require.NoError(t, translateDir(e, srcDir, outDir, "", "python", log))

	_, err := os.Stat(filepath.Join(outDir, "a.py"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "notes.py"))
	assert.True(t, os.IsNotExist(err))
}
