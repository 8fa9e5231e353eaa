package ggchart

// Stage identifies one step of the Update lifecycle.
type Stage uint8

// Lifecycle stages in execution order. StageUpdate brackets the whole pass:
// its Before hooks run first and its After hooks run last.
const (
	StageUpdate Stage = iota
	StageSetDimensions
	StageBuildTicks
	StageTickToLabelConversion
	StageCalculateTickRotation
	StageFit

	numStages
)

var stageNames = [...]string{
	StageUpdate:                "update",
	StageSetDimensions:         "setDimensions",
	StageBuildTicks:            "buildTicks",
	StageTickToLabelConversion: "convertTicksToLabels",
	StageCalculateTickRotation: "calculateTickRotation",
	StageFit:                   "fit",
}

// String returns the name of the stage.
func (st Stage) String() string {
	if int(st) < len(stageNames) {
		return stageNames[st]
	}
	return "unknown"
}

// StageFunc is a hook or stage body.
type StageFunc func(s *Scale)

// lifecycle holds the hooks and stage overrides of one Scale.
type lifecycle struct {
	before [numStages][]StageFunc
	after  [numStages][]StageFunc
	run    [numStages]StageFunc
}

// Stages returns the stages run by Update inside the StageUpdate bracket,
// in order.
func Stages() []Stage {
	return []Stage{
		StageSetDimensions,
		StageBuildTicks,
		StageTickToLabelConversion,
		StageCalculateTickRotation,
		StageFit,
	}
}

// Update lays the scale out inside the offered space and returns the
// minimum size it needs. margins may be nil.
//
// Update replaces all layout state of the previous pass; only the
// configuration survives between passes.
func (s *Scale) Update(maxWidth, maxHeight float64, margins *Margins) Size {
	s.runHooks(s.lifecycle.before[StageUpdate])

	s.MaxWidth = maxWidth
	s.MaxHeight = maxHeight
	s.Margins = Margins{}
	if margins != nil {
		s.Margins = *margins
	}

	for _, st := range Stages() {
		s.runStage(st)
	}

	s.runHooks(s.lifecycle.after[StageUpdate])
	return s.MinSize
}

func (s *Scale) runStage(st Stage) {
	s.runHooks(s.lifecycle.before[st])
	if fn := s.lifecycle.run[st]; fn != nil {
		fn(s)
	} else {
		s.defaultStage(st)
	}
	s.runHooks(s.lifecycle.after[st])
}

func (s *Scale) runHooks(hooks []StageFunc) {
	for _, h := range hooks {
		h(s)
	}
}

func (s *Scale) defaultStage(st Stage) {
	switch st {
	case StageSetDimensions:
		s.SetDimensions()
	case StageBuildTicks:
		s.BuildTicks()
	case StageTickToLabelConversion:
		s.ConvertTicksToLabels()
	case StageCalculateTickRotation:
		s.CalculateTickRotation()
	case StageFit:
		s.Fit()
	}
}

// SetDimensions gives the unconstrained dimension the full offered size:
// the width of a horizontal axis, the height of a vertical one. The other
// dimension is decided by Fit.
func (s *Scale) SetDimensions() {
	if s.IsHorizontal() {
		s.Width = s.MaxWidth
	} else {
		s.Height = s.MaxHeight
	}
}

// BuildTicks asks the Variant for raw tick values. Without a Variant the
// values last given to SetTicks are used again.
func (s *Scale) BuildTicks() {
	if s.variant != nil {
		s.SetTicks(s.variant.BuildTicks(s))
		return
	}
	s.SetTicks(s.source)
}
