package types

// Stage is a coarse life phase derived from age.
type Stage string

const (
	StageChild      Stage = "child"
	StagePreteen    Stage = "preteen"
	StageTeen       Stage = "teen"
	StageYoungAdult Stage = "young_adult"
	StageAdult      Stage = "adult"
	StageMature     Stage = "mature"
	StageSenior     Stage = "senior"
)

type stageRange struct {
	stage    Stage
	min, max int
	name     string
	themes   []string
}

var stageRanges = []stageRange{
	{StageChild, 0, 9, "Childhood", []string{"sharing", "fairness", "friendship"}},
	{StagePreteen, 10, 12, "Preteen", []string{"honesty", "rules", "responsibility"}},
	{StageTeen, 13, 17, "Teenager", []string{"peer pressure", "independence", "identity"}},
	{StageYoungAdult, 18, 24, "Young Adult", []string{"professional ethics", "relationships", "social justice"}},
	{StageAdult, 25, 39, "Adult", []string{"family responsibility", "work-life balance", "community"}},
	{StageMature, 40, 59, "Mature", []string{"legacy", "leadership", "meaning"}},
	{StageSenior, 60, 120, "Senior", []string{"sharing wisdom", "legacy", "life review"}},
}

// StageForAge maps an age to its life stage. Ages past every range are senior.
func StageForAge(age int) Stage {
	for _, r := range stageRanges {
		if age >= r.min && age <= r.max {
			return r.stage
		}
	}
	return StageSenior
}

// Name returns the English display name of the stage.
func (s Stage) Name() string {
	for _, r := range stageRanges {
		if r.stage == s {
			return r.name
		}
	}
	return "Unknown"
}

// Themes returns the moral themes associated with the stage.
func (s Stage) Themes() []string {
	for _, r := range stageRanges {
		if r.stage == s {
			return r.themes
		}
	}
	return []string{"general"}
}

func (s Stage) Valid() bool {
	for _, r := range stageRanges {
		if r.stage == s {
			return true
		}
	}
	return false
}
