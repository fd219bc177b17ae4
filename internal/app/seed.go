package app

import (
	"gorm.io/datatypes"

	"github.com/compasslearn/compass-backend/internal/types"
)

// starterCards is the out-of-the-box swipe deck, two cards per starter
// domain. Without a generator configured this is the entire card supply, so
// it must exist for the swipe flow to work at all.
func starterCards() []*types.CareerCard {
	return []*types.CareerCard{
		{
			Title:           "Software Engineer",
			DomainName:      "Technology",
			Description:     "Design, build and maintain software systems across the stack.",
			CoreSkills:      datatypes.JSON(`["Programming","Systems Design","Problem Solving"]`),
			SkillCategories: datatypes.JSON(`["technical","analytical"]`),
			Difficulty:      types.DifficultyIntermediate,
			Growth:          25,
			Source:          "seed",
		},
		{
			Title:           "Data Scientist",
			DomainName:      "Technology",
			Description:     "Turn raw data into models and decisions with statistics and code.",
			CoreSkills:      datatypes.JSON(`["Data Analysis","Statistics","Programming"]`),
			SkillCategories: datatypes.JSON(`["technical","analytical"]`),
			Difficulty:      types.DifficultyAdvanced,
			Growth:          35,
			Source:          "seed",
		},
		{
			Title:           "Registered Nurse",
			DomainName:      "Healthcare",
			Description:     "Provide direct patient care and coordinate treatment plans.",
			CoreSkills:      datatypes.JSON(`["Patient Care","Communication","Attention to Detail"]`),
			SkillCategories: datatypes.JSON(`["interpersonal","clinical"]`),
			Difficulty:      types.DifficultyIntermediate,
			Growth:          15,
			Source:          "seed",
		},
		{
			Title:           "Physical Therapist",
			DomainName:      "Healthcare",
			Description:     "Help patients recover movement and manage pain after injury.",
			CoreSkills:      datatypes.JSON(`["Patient Care","Biology","Communication"]`),
			SkillCategories: datatypes.JSON(`["interpersonal","clinical"]`),
			Difficulty:      types.DifficultyAdvanced,
			Growth:          18,
			Source:          "seed",
		},
		{
			Title:           "Financial Analyst",
			DomainName:      "Business",
			Description:     "Model company performance and guide investment decisions.",
			CoreSkills:      datatypes.JSON(`["Finance","Strategic Planning","Data Analysis"]`),
			SkillCategories: datatypes.JSON(`["analytical","business"]`),
			Difficulty:      types.DifficultyIntermediate,
			Growth:          9,
			Source:          "seed",
		},
		{
			Title:           "Marketing Manager",
			DomainName:      "Business",
			Description:     "Own campaigns and positioning from research to launch.",
			CoreSkills:      datatypes.JSON(`["Leadership","Negotiation","Strategic Planning"]`),
			SkillCategories: datatypes.JSON(`["business","creative"]`),
			Difficulty:      types.DifficultyBeginner,
			Growth:          10,
			Source:          "seed",
		},
		{
			Title:           "UX Designer",
			DomainName:      "Creative Arts",
			Description:     "Shape how products feel through research, flows and prototypes.",
			CoreSkills:      datatypes.JSON(`["Design","Creativity","Visual Composition"]`),
			SkillCategories: datatypes.JSON(`["creative","technical"]`),
			Difficulty:      types.DifficultyIntermediate,
			Growth:          16,
			Source:          "seed",
		},
		{
			Title:           "Content Creator",
			DomainName:      "Creative Arts",
			Description:     "Produce writing, video and visuals that build an audience.",
			CoreSkills:      datatypes.JSON(`["Storytelling","Creativity","Design"]`),
			SkillCategories: datatypes.JSON(`["creative"]`),
			Difficulty:      types.DifficultyBeginner,
			Growth:          20,
			Source:          "seed",
		},
		{
			Title:           "Electrician",
			DomainName:      "Skilled Trades",
			Description:     "Install and repair wiring and electrical systems safely.",
			CoreSkills:      datatypes.JSON(`["Hands-on Work","Safety Practices","Precision"]`),
			SkillCategories: datatypes.JSON(`["practical","technical"]`),
			Difficulty:      types.DifficultyIntermediate,
			Growth:          11,
			Source:          "seed",
		},
		{
			Title:           "HVAC Technician",
			DomainName:      "Skilled Trades",
			Description:     "Keep heating and cooling systems running in homes and buildings.",
			CoreSkills:      datatypes.JSON(`["Mechanical Reasoning","Hands-on Work","Precision"]`),
			SkillCategories: datatypes.JSON(`["practical"]`),
			Difficulty:      types.DifficultyBeginner,
			Growth:          13,
			Source:          "seed",
		},
		{
			Title:           "Research Scientist",
			DomainName:      "Science",
			Description:     "Design experiments and publish findings in a specialized field.",
			CoreSkills:      datatypes.JSON(`["Research","Experimentation","Scientific Writing"]`),
			SkillCategories: datatypes.JSON(`["analytical","academic"]`),
			Difficulty:      types.DifficultyAdvanced,
			Growth:          8,
			Source:          "seed",
		},
		{
			Title:           "Environmental Scientist",
			DomainName:      "Science",
			Description:     "Study ecosystems and advise on conservation and policy.",
			CoreSkills:      datatypes.JSON(`["Research","Statistics","Scientific Writing"]`),
			SkillCategories: datatypes.JSON(`["analytical","field"]`),
			Difficulty:      types.DifficultyIntermediate,
			Growth:          12,
			Source:          "seed",
		},
	}
}

// starterDomains is the out-of-the-box domain catalog. Seeding runs once on
// an empty table; operators can add more rows afterwards.
func starterDomains() []*types.CareerDomain {
	return []*types.CareerDomain{
		{
			Name:    "Technology",
			Icon:    "laptop",
			Color:   "#3B82F6",
			Skills:  datatypes.JSON(`["Programming","Data Analysis","Systems Design","Problem Solving"]`),
			Careers: datatypes.JSON(`["Software Engineer","Data Scientist","DevOps Engineer","Product Manager"]`),
		},
		{
			Name:    "Healthcare",
			Icon:    "heart-pulse",
			Color:   "#EF4444",
			Skills:  datatypes.JSON(`["Patient Care","Biology","Communication","Attention to Detail"]`),
			Careers: datatypes.JSON(`["Registered Nurse","Physician Assistant","Physical Therapist","Medical Technician"]`),
		},
		{
			Name:    "Business",
			Icon:    "briefcase",
			Color:   "#F59E0B",
			Skills:  datatypes.JSON(`["Leadership","Finance","Negotiation","Strategic Planning"]`),
			Careers: datatypes.JSON(`["Financial Analyst","Marketing Manager","Operations Manager","Entrepreneur"]`),
		},
		{
			Name:    "Creative Arts",
			Icon:    "palette",
			Color:   "#8B5CF6",
			Skills:  datatypes.JSON(`["Design","Storytelling","Visual Composition","Creativity"]`),
			Careers: datatypes.JSON(`["Graphic Designer","UX Designer","Content Creator","Art Director"]`),
		},
		{
			Name:    "Skilled Trades",
			Icon:    "wrench",
			Color:   "#10B981",
			Skills:  datatypes.JSON(`["Hands-on Work","Precision","Safety Practices","Mechanical Reasoning"]`),
			Careers: datatypes.JSON(`["Electrician","Plumber","HVAC Technician","Welder"]`),
		},
		{
			Name:    "Science",
			Icon:    "flask",
			Color:   "#06B6D4",
			Skills:  datatypes.JSON(`["Research","Experimentation","Statistics","Scientific Writing"]`),
			Careers: datatypes.JSON(`["Research Scientist","Lab Technician","Environmental Scientist","Biochemist"]`),
		},
	}
}
