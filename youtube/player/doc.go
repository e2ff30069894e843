/*
Package player resolves and extracts, from YouTube's player bundle, the pieces
needed to reverse the platform's media-token obfuscation: the player ID, the
n-parameter decoder source, the signature decoder source with its helper
object, and the signature timestamp versioning the scheme.

The bundle format is adversarial and changes between revisions, so every
extraction goal is backed by an ordered list of structural matchers tried until
one succeeds. Captured names are escaped before being interpolated into derived
matchers. When a list is exhausted the run fails with a typed outcome and the
attempted candidates are logged; the shared cache is left untouched.

The extracted fragments are text only — this package never executes them. A
single Cache record holds the results for the whole process; Updater commits
the player ID, code fields and timestamp as one atomic group, and the cache
lock is never held across a network wait. Concurrent update runs may both do
the expensive fetch-and-extract work; both commit equivalent data, which is
preferred over serializing readers behind a multi-second round trip.
*/
package player
