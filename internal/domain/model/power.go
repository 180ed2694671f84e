package model

// ForceTriple is the transient result of one force evaluation, in Newtons.
// It is recomputed on every velocity evaluation and carries no identity.
type ForceTriple struct {
	Gravity float64
	Rolling float64
	Drag    float64
}

// Total sums the three force components.
func (f ForceTriple) Total() float64 {
	return f.Gravity + f.Rolling + f.Drag
}

// PowerBreakdown is the transient result of one power evaluation, in Watts.
//
// Exactly one of the two regimes is populated: while driving, LegPower,
// WheelPower, and DrivetrainLoss are set and BrakingPower is zero; while
// coasting or braking, BrakingPower holds the (non-negative) magnitude of
// the power the brakes must dissipate and the other three fields are zero.
type PowerBreakdown struct {
	LegPower       float64
	WheelPower     float64
	DrivetrainLoss float64
	BrakingPower   float64
}

// Effective reduces the breakdown to a single signed scalar for comparison:
// negative braking power when braking, leg power otherwise. The scalar is
// monotonically non-decreasing in velocity for physically sensible profiles,
// which is what licenses bisection in the velocity solver.
func (b PowerBreakdown) Effective() float64 {
	if b.BrakingPower > 0 {
		return -b.BrakingPower
	}
	return b.LegPower
}
