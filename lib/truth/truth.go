/*package truth defines the record types for simulated "true" particle
interactions: the top-level Interaction record, the daughter Particle
sub-record, and the small helper types they share. These are plain data
aggregates with no behavior beyond default construction. A producer (typically
a generator-truth extraction step) fills the fields in directly, after which
the record is treated as read-only by every consumer, including the columnar
file layer in lib/cafio.

Every float field defaults to a sentinel NaN meaning "not computed / not
applicable". The sentinel is a specific bit pattern, not just any NaN, so that
consumers can tell an unset field apart from a NaN produced by a broken
upstream calculation. Use IsSentinel to test for it.*/
package truth

import (
	"math"
)

// sentinelBits is the bit pattern of a 32-bit signaling NaN, the same pattern
// that std::numeric_limits<float>::signaling_NaN() produces on the platforms
// that write the files we interoperate with. Serialization must preserve
// these bits exactly.
const sentinelBits = 0x7fa00000

// NaN is the sentinel value that every float field of Interaction and
// Particle defaults to. It means "not computed" or "not applicable".
var NaN = math.Float32frombits(sentinelBits)

// IsSentinel returns true if x is bit-identical to the sentinel NaN. A NaN
// with any other payload is not a sentinel: by convention it marks a value
// that a producer tried and failed to compute.
func IsSentinel(x float32) bool {
	return math.Float32bits(x) == sentinelBits
}
