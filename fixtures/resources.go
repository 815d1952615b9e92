package fixtures

// ResourceItem refers to its title and description by i18n key.
type ResourceItem struct {
	TitleKey       string `json:"titleKey"`
	DescriptionKey string `json:"descriptionKey"`
	Link           string `json:"link"`
}

type ResourceCategory struct {
	CategoryKey string         `json:"categoryKey"`
	Items       []ResourceItem `json:"items"`
}

var resources = []ResourceCategory{
	{
		CategoryKey: "disease_info",
		Items: []ResourceItem{
			{"about_cholera_title", "about_cholera_desc", "https://en.wikipedia.org/wiki/Cholera"},
			{"typhoid_guide_title", "typhoid_guide_desc", "https://en.wikipedia.org/wiki/Typhoid_fever"},
			{"dengue_guide_title", "dengue_guide_desc", "https://www.who.int/news-room/fact-sheets/detail/dengue-and-severe-dengue"},
		},
	},
	{
		CategoryKey: "preventative_measures",
		Items: []ResourceItem{
			{"safe_water_title", "safe_water_desc", "https://www.who.int/news-room/fact-sheets/detail/drinking-water"},
			{"food_safety_title", "food_safety_desc", "https://www.who.int/news-room/fact-sheets/detail/food-safety"},
			{"hand_hygiene_title", "hand_hygiene_desc", "https://www.cdc.gov/handwashing/when-how-handwashing.html"},
		},
	},
	{
		CategoryKey: "gov_helplines",
		Items: []ResourceItem{
			{"national_helpline_title", "national_helpline_desc", "tel:1075"},
			{"state_helpline_title", "state_helpline_desc", "https://nhm.gov.in/index4.php?lang=1&level=0&linkid=141"},
			{"ambulance_services_title", "ambulance_services_desc", "tel:108"},
		},
	},
}

func Resources() []ResourceCategory {
	out := make([]ResourceCategory, len(resources))
	for i, c := range resources {
		out[i] = ResourceCategory{
			CategoryKey: c.CategoryKey,
			Items:       append([]ResourceItem(nil), c.Items...),
		}
	}
	return out
}
