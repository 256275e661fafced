package repository

import (
	"agriquest/internal/model"
	"agriquest/pkg/logger"

	"go.uber.org/zap"
)

func defaultUsers() []model.User {
	return []model.User{
		{
			ID:                  "user-1",
			Name:                "राज पटेल",
			Email:               "raj@example.com",
			Role:                model.RoleFarmer,
			Location:            "Kerala, India",
			SustainabilityScore: 785,
			Level:               "Eco Warrior",
			Badges:              []model.Badge{},
			CompletedQuests:     28,
			ActiveQuests:        3,
			JoinedDate:          "2024-01-15",
		},
		{
			ID:                  "user-2",
			Name:                "Dr. प्रिया शर्मा",
			Email:               "priya@example.com",
			Role:                model.RoleAEO,
			Location:            "Kerala, India",
			SustainabilityScore: 0,
			Level:               "Extension Officer",
			Badges:              []model.Badge{},
			CompletedQuests:     0,
			ActiveQuests:        0,
			JoinedDate:          "2024-01-10",
		},
	}
}

func defaultQuests() []model.Quest {
	return []model.Quest{
		{
			ID: "quest-1",
			Title: model.LocalizedText{
				EN: "Apply Organic Compost",
				HI: "जैविक खाद का प्रयोग करें",
				ML: "ജൈവവളം പ്രയോഗിക്കുക",
			},
			Description: model.LocalizedText{
				EN: "Apply homemade compost to your vegetable plot",
				HI: "अपने सब्जी के खेत में घर का बना खाद डालें",
				ML: "നിങ്ങളുടെ പച്ചക്കറി പ്ലോട്ടിൽ വീട്ടിൽ ഉണ്ടാക്കിയ കമ്പോസ്റ്റ് പ്രയോഗിക്കുക",
			},
			Points:       150,
			Difficulty:   model.DifficultyEasy,
			Category:     "Soil Health",
			Requirements: []string{"Take photos of compost application", "Record location"},
			Deadline:     "2024-12-31",
			Status:       model.QuestStatusActive,
			CreatedBy:    "admin",
			CreatedAt:    "2024-09-01",
		},
		{
			ID: "quest-2",
			Title: model.LocalizedText{
				EN: "Water Conservation Practice",
				HI: "जल संरक्षण अभ्यास",
				ML: "ജലസംരക്ഷണ പരിശീലനം",
			},
			Description: model.LocalizedText{
				EN: "Implement drip irrigation system",
				HI: "ड्रिप सिंचाई प्रणाली लागू करें",
				ML: "ഡ്രിപ്പ് ഇറിഗേഷൻ സിസ്റ്റം നടപ്പിലാക്കുക",
			},
			Points:       300,
			Difficulty:   model.DifficultyMedium,
			Category:     "Water Management",
			Requirements: []string{"Install drip irrigation", "Document water savings"},
			Deadline:     "2024-11-30",
			Status:       model.QuestStatusActive,
			CreatedBy:    "admin",
			CreatedAt:    "2024-09-01",
		},
	}
}

// EnsureDefaultData seeds the demo roster, quests and an empty
// submission list. Each collection is seeded only when its key is
// entirely absent; existing data, even malformed, is never overwritten.
// Safe to call on every start.
func (r *Repository) EnsureDefaultData() error {
	r.Lock()
	defer r.Unlock()

	log := logger.Logger()

	if !r.store.Has(keyUsers) {
		if err := r.store.Set(keyUsers, defaultUsers()); err != nil {
			return err
		}
		log.Info("seeded default users", zap.Int("count", 2))
	}

	if !r.store.Has(keyQuests) {
		if err := r.store.Set(keyQuests, defaultQuests()); err != nil {
			return err
		}
		log.Info("seeded default quests", zap.Int("count", 2))
	}

	if !r.store.Has(keySubmissions) {
		if err := r.store.Set(keySubmissions, []model.Submission{}); err != nil {
			return err
		}
	}

	return nil
}
