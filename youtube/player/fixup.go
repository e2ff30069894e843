package player

import (
	"regexp"

	"github.com/tjmnmk/inv-sig-helper/internal/logger"
)

var fixupLog = logger.WithComponent(logger.ComponentFixup)

// fixupNsigCode rewrites an extracted n-parameter decoder so it no longer
// depends on bundle-external state:
//
//  1. the function keeps its original parameter name,
//  2. the bundle's global array declaration (if any) is inlined at the top of
//     the body, and
//  3. the early-return guard protecting against an uninitialized global array
//     is removed, since the inlined declaration makes it unreachable.
//
// Pure text rewrite; the input is never executed.
func fixupNsigCode(code, playerJS string) string {
	result := code

	paramName := "a"
	if groups := nsigParamRegex.FindStringSubmatch(code); groups != nil {
		paramName = groups[1]
	}

	var guardRe *regexp.Regexp
	if globalVar, varName, ok := extractGlobalVar(playerJS); ok {
		fixupLog.Info("prepending decoder with global array variable", map[string]interface{}{
			"name": varName,
		})
		head := "function " + nsigFunctionName + "(" + paramName + "){"
		rest := result
		if len(rest) >= len(head) && rest[:len(head)] == head {
			rest = rest[len(head):]
		}
		result = head + globalVar + "; " + rest

		// The guard may compare against "undefined" or index into the global
		// array; either form short-circuits decoding outside the original
		// bundle context.
		guardRe = regexp.MustCompile(`;\s*if\s*\(\s*typeof\s+[a-zA-Z0-9_$]+\s*===?\s*(?:"undefined"|'undefined'|` +
			regexp.QuoteMeta(varName) + `\[\d+\])\s*\)\s*return\s+\w+;`)
	} else {
		fixupLog.Info("no global array variable found in player JS")
		guardRe = plainGuardRegex
	}

	if guardRe.MatchString(result) {
		fixupLog.Debug("removing early-return guard from decoder body")
		result = guardRe.ReplaceAllString(result, ";")
	} else {
		fixupLog.Debug("decoder body needed no guard fixup")
	}
	return result
}
