package player

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tjmnmk/inv-sig-helper/internal/logger"
)

var extractorLog = logger.WithComponent(logger.ComponentExtractor)

// match holds the named captures of one successful structural match. Captures
// flow between extraction steps within a single orchestrator run only.
type match map[string]string

// firstMatch applies candidates in order against the bundle source and returns
// the named captures of the first one that matches. Exhaustion is a typed
// failure, never a panic; the attempted candidate names are logged to help
// diagnose upstream format drift.
func firstMatch(goal string, candidates []pattern, src string) (match, error) {
	attempted := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		groups := cand.re.FindStringSubmatch(src)
		if groups == nil {
			extractorLog.Warn("candidate did not match", map[string]interface{}{
				"goal":      goal,
				"candidate": cand.name,
			})
			attempted = append(attempted, cand.name)
			continue
		}
		m := make(match)
		for i, name := range cand.re.SubexpNames() {
			if name != "" && i < len(groups) {
				m[name] = groups[i]
			}
		}
		extractorLog.Debug("candidate matched", map[string]interface{}{
			"goal":      goal,
			"candidate": cand.name,
		})
		return m, nil
	}
	extractorLog.Error("all candidates exhausted", map[string]interface{}{
		"goal":      goal,
		"attempted": strings.Join(attempted, ","),
	})
	return nil, NewError(ErrCodeNsigRegexCompileFailed,
		fmt.Sprintf("%s: no candidate pattern matched", goal), attempted)
}

// extractNsigFunctionName locates the n-parameter decoder's real identifier.
// The array locator yields the lookup array's variable name and element index;
// a derived matcher (built from the escaped name) then resolves the array
// literal and selects the element.
func extractNsigFunctionName(playerJS string) (string, error) {
	m, err := firstMatch("nsig function array", nsigFunctionArrays, playerJS)
	if err != nil {
		return "", err
	}

	arrayName := m["nfunc"]
	idxStr := m["idx"]
	if idxStr == "" {
		// No array indirection in this bundle revision: the captured
		// identifier is the decoder itself.
		return arrayName, nil
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return "", NewError(ErrCodeNsigRegexCompileFailed, "nsig array index is not numeric", idxStr)
	}

	contextRe, err := regexp.Compile(`var ` + regexp.QuoteMeta(arrayName) + `\s*=\s*\[(.+?)][;,]`)
	if err != nil {
		return "", NewError(ErrCodeNsigRegexCompileFailed, "nsig array context regex failed to compile", err.Error())
	}
	groups := contextRe.FindStringSubmatch(playerJS)
	if groups == nil {
		return "", NewError(ErrCodeNsigRegexCompileFailed, "nsig array literal not found", arrayName)
	}
	elems := strings.Split(groups[1], ",")
	if idx >= len(elems) {
		return "", NewError(ErrCodeNsigRegexCompileFailed,
			fmt.Sprintf("nsig array index %d out of range (%d elements)", idx, len(elems)))
	}
	return strings.TrimSpace(elems[idx]), nil
}

// extractNsigFunctionCode cuts the decoder's full source out of the bundle,
// trying each known body-terminator shape in order, and rewrites it through the
// fixup pass so the result is self-contained.
func extractNsigFunctionCode(playerJS, funcName string) (string, error) {
	candidates := make([]pattern, 0, len(nsigFunctionEndings))
	for _, ending := range nsigFunctionEndings {
		re, err := regexp.Compile(`(?ms)` + regexp.QuoteMeta(funcName) + ending.re.String())
		if err != nil {
			return "", NewError(ErrCodeNsigRegexCompileFailed, "nsig ending regex failed to compile", err.Error())
		}
		candidates = append(candidates, pattern{name: ending.name, re: re})
	}

	m, err := firstMatch("nsig function ending", candidates, playerJS)
	if err != nil {
		return "", err
	}
	code := "function " + nsigFunctionName + m["body"]
	return fixupNsigCode(code, playerJS), nil
}

// extractSigFunction locates the sig decoder and returns its name and its full
// assignment-and-body source.
func extractSigFunction(playerJS string) (name string, body string, err error) {
	groups := signatureFunctionRegex.FindStringSubmatch(playerJS)
	if groups == nil {
		return "", "", NewError(ErrCodeNsigRegexCompileFailed, "signature function not found")
	}
	name = groups[1]

	bodyRe, err := regexp.Compile(regexp.QuoteMeta(name) + `=function\([a-zA-Z0-9_]+\)\{.+?\}`)
	if err != nil {
		return "", "", NewError(ErrCodeNsigRegexCompileFailed, "signature body regex failed to compile", err.Error())
	}
	body = bodyRe.FindString(playerJS)
	if body == "" {
		return "", "", NewError(ErrCodeNsigRegexCompileFailed, "signature function body not found", name)
	}
	return name, body, nil
}

// extractHelperObject returns the full literal declaration of the utility
// object referenced by the sig decoder body.
func extractHelperObject(playerJS, sigFunctionBody string) (string, error) {
	groups := helperObjectNameRegex.FindStringSubmatch(sigFunctionBody)
	if groups == nil {
		return "", NewError(ErrCodeNsigRegexCompileFailed, "helper object name not found in signature body")
	}
	helperName := groups[1]

	helperRe, err := regexp.Compile(`(var ` + regexp.QuoteMeta(helperName) + `=\{(?:.|\n)+?\}\};)`)
	if err != nil {
		return "", NewError(ErrCodeNsigRegexCompileFailed, "helper object regex failed to compile", err.Error())
	}
	body := helperRe.FindString(playerJS)
	if body == "" {
		return "", NewError(ErrCodeNsigRegexCompileFailed, "helper object body not found", helperName)
	}
	return body, nil
}

// buildSigCode assembles the self-contained sig decoder source. Order matters:
// forward declaration, global array (when the bundle has one), helper object,
// then the function assignment, so every fragment only references names
// declared before it.
func buildSigCode(playerJS, sigFunctionName, sigFunctionBody, helperObjectBody string) string {
	var b strings.Builder
	b.WriteString("var ")
	b.WriteString(sigFunctionName)
	b.WriteString(";")
	if globalVar, varName, ok := extractGlobalVar(playerJS); ok {
		extractorLog.Debug("prepending global variable to sig code", map[string]interface{}{
			"name": varName,
		})
		b.WriteString(globalVar)
		b.WriteString(";")
	}
	b.WriteString(helperObjectBody)
	b.WriteString(sigFunctionBody)
	return b.String()
}

// extractSignatureTimestamp returns the scheme revision number embedded in the
// bundle.
func extractSignatureTimestamp(playerJS string) (uint64, error) {
	groups := signatureTimestampRegex.FindStringSubmatch(playerJS)
	if groups == nil {
		return 0, NewError(ErrCodeNsigRegexCompileFailed, "signature timestamp not found")
	}
	ts, err := strconv.ParseUint(groups[1], 10, 64)
	if err != nil {
		return 0, NewError(ErrCodeNsigRegexCompileFailed, "signature timestamp is not numeric", groups[1])
	}
	return ts, nil
}

// extractGlobalVar finds the top-level string-split or list variable declared
// right after the strict-mode prologue. Returns the full declaration statement
// and the variable name.
func extractGlobalVar(playerJS string) (code string, name string, ok bool) {
	groups := globalVarRegex.FindStringSubmatch(playerJS)
	if groups == nil {
		return "", "", false
	}
	for i, n := range globalVarRegex.SubexpNames() {
		switch n {
		case "code":
			code = groups[i]
		case "name":
			name = groups[i]
		}
	}
	return code, name, true
}
