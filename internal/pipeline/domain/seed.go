package domain

import "time"

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedCandidates returns the starting pipeline. Each call returns a fresh
// slice so callers can own it.
func SeedCandidates() []Candidate {
	return []Candidate{
		{
			ID:          "1",
			Name:        "Sarah Jenkins",
			Email:       "sarah.j@example.com",
			Role:        "Senior Frontend Engineer",
			Company:     "TechFlow Inc.",
			Stage:       StageTechnical,
			AppliedDate: day("2024-02-15"),
			Avatar:      AvatarURL("sarah"),
			Notes:       "Strong React background, very impressive portfolio.",
		},
		{
			ID:          "2",
			Name:        "Michael Chen",
			Email:       "m.chen@example.com",
			Role:        "Product Designer",
			Company:     "CreativePulse",
			Stage:       StageApplied,
			AppliedDate: day("2024-02-20"),
			Avatar:      AvatarURL("michael"),
		},
		{
			ID:          "3",
			Name:        "Elena Rodriguez",
			Email:       "elena.r@example.com",
			Role:        "Backend Developer",
			Company:     "TechFlow Inc.",
			Stage:       StageJobOffer,
			AppliedDate: day("2024-01-10"),
			Avatar:      AvatarURL("elena"),
			Notes:       "Exceptional system design skills.",
		},
		{
			ID:          "4",
			Name:        "David Kim",
			Email:       "dkim@example.com",
			Role:        "DevOps Engineer",
			Company:     "CloudScale",
			Stage:       StageScreening,
			AppliedDate: day("2024-02-18"),
			Avatar:      AvatarURL("david"),
		},
	}
}
