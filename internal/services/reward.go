package services

// baseWindowSeconds is the portion of a round paying the standard rate.
// Anything beyond it comes from time-extension upgrades and pays double.
const baseWindowSeconds = 10.0

// ComputeReward maps a completed round to the coins it earns.
//
// Clicks inside the base window pay 1 coin each. When the round ran longer
// than the base window, clicks are assumed uniformly distributed over the
// round; the share attributable to the extension pays 2 coins each. The
// extension rate never pays less than the base rate, so the result is always
// at least clicks.
//
// Inputs are validated at the boundary: clicks >= 0, duration > 0.
func ComputeReward(clicks int64, duration float64) int64 {
	if duration <= baseWindowSeconds {
		return clicks
	}
	baseClicks := int64(float64(clicks) * baseWindowSeconds / duration)
	extraClicks := clicks - baseClicks
	return baseClicks + extraClicks*2
}
