package constants

// Skill is an entry of the fixed catalog tasks may require.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

var SkillCatalog = []Skill{
	{ID: "skill1", Name: "React"},
	{ID: "skill2", Name: "Firebase"},
	{ID: "skill3", Name: "TypeScript"},
	{ID: "skill4", Name: "Node.js"},
	{ID: "skill5", Name: "Python"},
}

func IsKnownSkill(id string) bool {
	for _, s := range SkillCatalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
