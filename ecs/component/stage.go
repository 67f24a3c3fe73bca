package component

// StageID identifies a scene. Only the stages run enemies.
type StageID int

const (
	SceneTitle StageID = iota
	Stage1
	Stage2
	Stage3
	SceneEnding
	SceneGameOver
)

func (s StageID) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case Stage1:
		return "stage1"
	case Stage2:
		return "stage2"
	case Stage3:
		return "stage3"
	case SceneEnding:
		return "ending"
	case SceneGameOver:
		return "game_over"
	}
	return "unknown"
}

// IsStage reports whether s is a playable stage.
func (s StageID) IsStage() bool {
	return s >= Stage1 && s <= Stage3
}

// RestartScene reports whether shots in s hit the start/restart target.
func (s StageID) RestartScene() bool {
	return s == SceneTitle || s == SceneGameOver
}

// ClearRule returns the bullet bulk-clear rule of s.
func (s StageID) ClearRule() ClearRule {
	switch s {
	case Stage1:
		return ClearGroupOfTen
	case Stage2:
		return ClearHomingBatch
	}
	return ClearNone
}

// Shooter returns the enemy variant whose bullets fill the pool in s.
func (s StageID) Shooter() Variant {
	switch s {
	case Stage2:
		return VariantBoss1
	case Stage3:
		return VariantBoss2
	}
	return VariantBasic
}

// StageQuery is implemented by whoever owns scene bookkeeping.
type StageQuery interface {
	IsStageActive(id StageID) bool
	CurrentStage() StageID
}
