package output

// VerbosityLevel controls how much diagnostic output the CLI prints.
type VerbosityLevel int

const (
	VerbosityDefault VerbosityLevel = iota
	VerbosityVerbose
	VerbosityDebug
)

// Format is one of the CLI's output formats, spanning every subcommand's
// --format option (inspect's tree/json/plain, complexity/purity/state's
// text/json, taint-check's text/json/sarif).
type Format string

const (
	FormatTree  Format = "tree"
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
	FormatSARIF Format = "sarif"
)

// Options configures a single CLI invocation's output behavior.
type Options struct {
	Verbosity VerbosityLevel
	Format    Format
}

// NewDefaultOptions returns the CLI's baseline options.
func NewDefaultOptions() *Options {
	return &Options{Verbosity: VerbosityDefault, Format: FormatText}
}

func (o *Options) ShouldShowStatistics() bool {
	return o.Verbosity >= VerbosityVerbose
}

func (o *Options) ShouldShowDebug() bool {
	return o.Verbosity >= VerbosityDebug
}
