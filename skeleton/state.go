package skeleton

// AnimationState advances and applies animation to a skeleton.
// The renderer calls Update then Apply once per tick, before
// UpdateWorldTransform.
type AnimationState interface {
	Update(delta float64)
	Apply(s *Skeleton) bool
}

// NopState leaves the skeleton in whatever pose it already has.
type NopState struct{}

func (NopState) Update(float64) {}

func (NopState) Apply(*Skeleton) bool { return false }

// Procedural drives a skeleton from a function of accumulated time.
// It is useful for tools and tests that need motion without keyframes.
type Procedural struct {
	Time      float64
	TimeScale float64
	Pose      func(s *Skeleton, t float64)
}

// NewProcedural creates a Procedural state with a time scale of 1.
func NewProcedural(pose func(s *Skeleton, t float64)) *Procedural {
	return &Procedural{TimeScale: 1, Pose: pose}
}

func (p *Procedural) Update(delta float64) {
	p.Time += delta * p.TimeScale
}

func (p *Procedural) Apply(s *Skeleton) bool {
	if p.Pose == nil {
		return false
	}
	p.Pose(s, p.Time)
	return true
}
