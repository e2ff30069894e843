package player

import "regexp"

const (
	// TestVideoURL is a known-stable watch page used to discover the current
	// player ID when no override is set.
	TestVideoURL = "https://www.youtube.com/watch?v=jNQXAC9IVRw"

	defaultBaseURL = "https://www.youtube.com"

	// playerJSPathFormat is the bundle path templated on the 8-digit lowercase
	// hex player ID.
	playerJSPathFormat = "/s/player/%08x/player_ias.vflset/en_US/base.js"

	// nsigFunctionName is the synthetic name the extracted n-parameter decoder
	// is rebound to, so consumers can invoke it without knowing the obfuscated
	// original name.
	nsigFunctionName = "decrypt_nsig"
)

// pattern is one structural matcher in an ordered fallback list. Name is used
// only for logging which candidates were attempted.
type pattern struct {
	name string
	re   *regexp.Regexp
}

// nsigFunctionArrays locates the array-literal lookup the player uses to pick
// the n-parameter decoder. Each candidate must yield the named groups "nfunc"
// (array variable name) and "idx" (element index); an empty "idx" means the
// captured identifier is the decoder itself. Ordered newest bundle revision
// first.
var nsigFunctionArrays = []pattern{
	{
		name: "n-plus-lookup",
		re:   regexp.MustCompile(`&&\(b="n+"\[[a-zA-Z0-9.+$]+\],c=a\.get\(b\)\)&&\(c=(?P<nfunc>[a-zA-Z0-9$]+)(?:\[(?P<idx>\d+)\])?\([a-zA-Z0-9]\)`),
	},
	{
		name: "fromcharcode-lookup",
		re:   regexp.MustCompile(`b=String\.fromCharCode\(110\),c=a\.get\(b\)\)&&\(c=(?P<nfunc>[a-zA-Z0-9$]+)(?:\[(?P<idx>\d+)\])?\([a-zA-Z0-9]\)`),
	},
	{
		name: "get-n-direct",
		re:   regexp.MustCompile(`\.get\("n"\)\)&&\(b=(?P<nfunc>[a-zA-Z0-9$]+)(?:\[(?P<idx>\d+)\])?\(b\)`),
	},
}

// nsigFunctionEndings are body-terminator shapes tried in order when cutting
// the decoder function out of the bundle. Each is appended to the escaped
// function identifier under (?ms); the "body" group is the body text starting
// at the parameter list.
var nsigFunctionEndings = []pattern{
	{
		name: "join-return",
		re:   regexp.MustCompile(`=\s*function(?P<body>[\S\s]*?\}\s*return [\w$]+?\.join\(""\)\s*\};)`),
	},
	{
		name: "enhanced-except-call",
		re:   regexp.MustCompile(`=\s*function(?P<body>[\S\s]*?\}\s*return \w+?\.call\(\w+?,\s*"enhanced_except[\S\s]*?\}\s*\};)`),
	},
	{
		name: "enhanced-except-any",
		re:   regexp.MustCompile(`=\s*function(?P<body>[\S\s]*?\}\s*return [\W\w$]+?\.call\([\w$]+?,\s*"enhanced_except[\S\s]*?\}\s*\};)`),
	},
}

var (
	// playerIDRegex finds the bundle version embedded in a watch page.
	playerIDRegex = regexp.MustCompile(`/s/player/([0-9a-f]{8})`)

	// signatureFunctionRegex locates the sig decoder by its characteristic
	// split-on-empty-string prologue.
	signatureFunctionRegex = regexp.MustCompile(`\b([a-zA-Z0-9_$]{2,})\s*=\s*function\(\s*a\s*\)\s*\{\s*a\s*=\s*a\.split\(\s*(?:""|[a-zA-Z0-9_$]+\[\d+\])\s*\)`)

	// helperObjectNameRegex finds the utility object the sig decoder body calls
	// into.
	helperObjectNameRegex = regexp.MustCompile(`;([A-Za-z0-9_$]{2,})\.[a-zA-Z0-9_$]+\(`)

	// signatureTimestampRegex extracts the scheme revision number.
	signatureTimestampRegex = regexp.MustCompile(`signatureTimestamp[=:](\d+)`)

	// globalVarRegex matches a top-level string-split or bracket-list variable
	// declared directly after the strict-mode prologue. Groups: code (the full
	// declaration), name, value.
	globalVarRegex = regexp.MustCompile(`'use\s+strict';\s*(?P<code>var\s+(?P<name>[a-zA-Z0-9_$]+)\s*=\s*(?P<value>(?:"[^"\\]*(?:\\.[^"\\]*)*"|'[^'\\]*(?:\\.[^'\\]*)*')\.split\((?:"[^"\\]*(?:\\.[^"\\]*)*"|'[^'\\]*(?:\\.[^'\\]*)*')\)|\[(?:(?:"[^"\\]*(?:\\.[^"\\]*)*"|'[^'\\]*(?:\\.[^'\\]*)*')\s*,?\s*)*\]))[;,]`)

	// nsigParamRegex pulls the original parameter name out of an extracted
	// function declaration.
	nsigParamRegex = regexp.MustCompile(`function\s+[a-zA-Z0-9_$]+\s*\(([a-zA-Z0-9_$]+)\)`)

	// plainGuardRegex matches the early-return guard when no global variable
	// was found in the bundle.
	plainGuardRegex = regexp.MustCompile(`;\s*if\s*\(\s*typeof\s+[a-zA-Z0-9_$]+\s*===?\s*(?:"undefined"|'undefined')\s*\)\s*return\s+\w+;`)
)
