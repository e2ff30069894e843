package player

import "fmt"

// Synthetic player bundles for extraction tests. The shapes mirror real
// minified bundles closely enough for every pattern-library candidate to have
// a matching and a non-matching variant.

const (
	fixturePlayerID    = uint32(0x0004de42)
	fixturePlayerIDHex = "0004de42"
	fixtureTimestamp   = uint64(19834)
)

const fixtureGlobalVar = `var g="1,2,3".split(",")`

// fixtureNsigLookup matches the first nsig-array candidate.
const fixtureNsigLookup = `if(e&&(b="n"[+a.D],c=a.get(b))&&(c=kJ[0](c),a.set(b,c)),0)`

// fixtureNsigLookupAlt matches only the second (fromCharCode) candidate.
const fixtureNsigLookupAlt = `if(e&&(b=String.fromCharCode(110),c=a.get(b))&&(c=mB[1](c),a.set(b,c)),0)`

const fixtureNsigFunction = `zN=function(a){var d=a.split(""); if(typeof g==="undefined")return a;d.reverse();for(var e=0;e<0;e++){}return d.join("")};`

const fixtureHelperObject = `var qK={xK:function(a,b){a.reverse()},zR:function(a,b){return a.slice(b)}};`

const fixtureSigFunction = `pY=function(a){a=a.split("");qK.xK(a,1);a=qK.zR(a,2);return a.join("")};`

// testBundle is a complete bundle every extraction step succeeds on.
func testBundle() string {
	return `'use strict';` + fixtureGlobalVar + `;` +
		fixtureNsigLookup +
		`var kJ=[zN];` +
		fixtureNsigFunction +
		fixtureHelperObject +
		fixtureSigFunction +
		`var cfg={signatureTimestamp:19834,experiments:[]};`
}

// testBundleSecondCandidate only matches the second nsig-array candidate.
func testBundleSecondCandidate() string {
	return `'use strict';` + fixtureGlobalVar + `;` +
		fixtureNsigLookupAlt +
		`var mB=[q0,zN];` +
		fixtureNsigFunction +
		fixtureHelperObject +
		fixtureSigFunction +
		`var cfg={signatureTimestamp:19834,experiments:[]};`
}

// testBundleNoNsigEnding has a decoder body no ending candidate terminates.
func testBundleNoNsigEnding() string {
	return `'use strict';` + fixtureGlobalVar + `;` +
		fixtureNsigLookup +
		`var kJ=[zN];` +
		`zN=function(a){return 1};` +
		fixtureHelperObject +
		fixtureSigFunction +
		`var cfg={signatureTimestamp:19834,experiments:[]};`
}

func testWatchPage(playerIDHex string) string {
	return fmt.Sprintf(`<html><script>ytcfg.set({"PLAYER_JS_URL":"/s/player/%s/player_ias.vflset/en_US/base.js"});</script></html>`, playerIDHex)
}
