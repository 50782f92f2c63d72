// Package dashboard provides the static content of the dashboard overview.
package dashboard

// Stat is a headline number with its change since last period.
type Stat struct {
	Title  string
	Value  string
	Change string
	Up     bool
}

// Series is one line of the job trend table.
type Series struct {
	Label  string
	Values []int
	Change string
}

// SkillLevel compares a current skill level with its target, both percentages.
type SkillLevel struct {
	Skill   string
	Current int
	Target  int
}

// SkillGap is one row of the skill gap summary. Levels are on a 1-5 scale.
type SkillGap struct {
	Skill      string
	Category   string
	Current    int
	Required   int
	Importance string
}

// Gap returns how many levels the skill is short of the requirement.
func (g SkillGap) Gap() int {
	if g.Required < g.Current {
		return 0
	}
	return g.Required - g.Current
}

// Severity classifies the gap: "high" for two or more levels, "medium" for
// one, "low" otherwise.
func (g SkillGap) Severity() string {
	switch gap := g.Gap(); {
	case gap >= 2:
		return "high"
	case gap >= 1:
		return "medium"
	default:
		return "low"
	}
}

// Activity is a recent event on the user's timeline.
type Activity struct {
	Kind  string
	Title string
	Date  string
	Time  string
}

// Milestone is an upcoming goal with its completion percentage.
type Milestone struct {
	Title    string
	Due      string
	Progress int
	Category string
}

// Overview is everything the dashboard page shows below the header.
type Overview struct {
	Stats       []Stat
	TrendMonths []string
	Trends      []Series
	Skills      []SkillLevel
	Gaps        []SkillGap
	Activities  []Activity
	Milestones  []Milestone
}

// Static returns the overview content. It is not personalized yet.
func Static() Overview {
	return Overview{
		Stats: []Stat{
			{Title: "Applications", Value: "42", Change: "+8.2%", Up: true},
			{Title: "Interviews", Value: "9", Change: "+4.1%", Up: true},
			{Title: "Cert progress", Value: "68%", Change: "+2.4%", Up: true},
			{Title: "Skill growth", Value: "+12%", Change: "+3.8%", Up: true},
		},
		TrendMonths: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Trends: []Series{
			{Label: "Data Science", Values: []int{120, 135, 155, 180, 210, 245}, Change: "+18.5%"},
			{Label: "ML Engineer", Values: []int{80, 95, 125, 160, 195, 230}, Change: "+21.3%"},
			{Label: "Data Analyst", Values: []int{200, 205, 215, 225, 240, 250}, Change: "+8.2%"},
		},
		Skills: []SkillLevel{
			{Skill: "Python Programming", Current: 85, Target: 90},
			{Skill: "Machine Learning", Current: 70, Target: 85},
			{Skill: "Data Analysis", Current: 75, Target: 80},
			{Skill: "SQL & Databases", Current: 80, Target: 85},
			{Skill: "Cloud Computing", Current: 45, Target: 75},
			{Skill: "Statistics", Current: 60, Target: 80},
			{Skill: "Data Visualization", Current: 65, Target: 75},
			{Skill: "Communication", Current: 70, Target: 85},
		},
		Gaps: []SkillGap{
			{Skill: "Deep Learning", Category: "AI/ML", Current: 3, Required: 5, Importance: "high"},
			{Skill: "Cloud Deployment", Category: "DevOps", Current: 2, Required: 4, Importance: "high"},
			{Skill: "Data Visualization", Category: "Analytics", Current: 4, Required: 5, Importance: "medium"},
			{Skill: "Project Management", Category: "Delivery", Current: 3, Required: 4, Importance: "medium"},
		},
		Activities: []Activity{
			{Kind: "course_progress", Title: "Completed ML course module 4", Date: "Aug 12", Time: "10:30 AM"},
			{Kind: "assessment", Title: "Took Python skills assessment", Date: "Aug 11", Time: "03:15 PM"},
			{Kind: "job_application", Title: "Applied to Data Scientist at Acme", Date: "Aug 10", Time: "09:00 AM"},
			{Kind: "skill_update", Title: "Added Kubernetes to skills", Date: "Aug 9", Time: "07:45 PM"},
			{Kind: "certification", Title: "AWS Practitioner prep started", Date: "Aug 8", Time: "08:10 PM"},
		},
		Milestones: []Milestone{
			{Title: "ML Course", Due: "Aug 20", Progress: 75, Category: "learning"},
			{Title: "AWS Cert", Due: "Sep 5", Progress: 40, Category: "certification"},
			{Title: "Resume Update", Due: "Aug 15", Progress: 20, Category: "career"},
			{Title: "Data Viz Project", Due: "Aug 30", Progress: 60, Category: "project"},
		},
	}
}
