package fixture

import "github.com/ibomair/appcore/internal/domain"

var Destinations = []domain.Destination{
	{
		Code:           "UYO",
		Name:           "Uyo",
		Country:        "Nigeria",
		Image:          "https://images.unsplash.com/photo-1569607933337-e5117c7e4f4a?w=800",
		Description:    "The capital of Akwa Ibom State, known for its hospitality and modern infrastructure.",
		Attractions:    []string{"Ibom Plaza", "Unity Park", "Ibom Tropicana"},
		Weather:        domain.Weather{Temp: 28, Condition: "Partly Cloudy"},
		FlightsPerWeek: 42,
	},
	{
		Code:           "ABV",
		Name:           "Abuja",
		Country:        "Nigeria",
		Image:          "https://images.unsplash.com/photo-1618828665011-0abd973f7bb8?w=800",
		Description:    "Nigeria's capital city, featuring modern architecture and diplomatic quarters.",
		Attractions:    []string{"Aso Rock", "National Mosque", "Millennium Park"},
		Weather:        domain.Weather{Temp: 30, Condition: "Sunny"},
		FlightsPerWeek: 28,
	},
	{
		Code:           "LOS",
		Name:           "Lagos",
		Country:        "Nigeria",
		Image:          "https://images.unsplash.com/photo-1618828665347-d870c38c95c7?w=800",
		Description:    "Nigeria's commercial hub and largest city, vibrant with culture and business.",
		Attractions:    []string{"Victoria Island", "Lekki Beach", "National Museum"},
		Weather:        domain.Weather{Temp: 29, Condition: "Humid"},
		FlightsPerWeek: 35,
	},
	{
		Code:           "ACC",
		Name:           "Accra",
		Country:        "Ghana",
		Image:          "https://images.unsplash.com/photo-1569530593440-e48dc137f7d0?w=800",
		Description:    "Ghana's capital, blending traditional culture with modern African dynamism.",
		Attractions:    []string{"Kwame Nkrumah Park", "Labadi Beach", "Makola Market"},
		Weather:        domain.Weather{Temp: 27, Condition: "Partly Cloudy"},
		FlightsPerWeek: 7,
	},
}

var News = []domain.NewsPost{
	{
		ID:          "1",
		Title:       "Ibom Air Expands Fleet with New Airbus A220",
		Excerpt:     "Strengthening our commitment to passenger comfort and operational efficiency.",
		Content:     "Ibom Air is proud to announce the addition of a new Airbus A220-300 to our growing fleet...",
		Image:       "https://images.unsplash.com/photo-1540962351504-03099e0a754b?w=800",
		Category:    "Fleet",
		PublishedAt: "2025-01-10T10:00:00",
		Author:      "Ibom Air Communications",
	},
	{
		ID:          "2",
		Title:       "New Route: Uyo to Accra Now Available",
		Excerpt:     "Connecting Nigeria and Ghana with daily flights starting February 2025.",
		Content:     "We are excited to launch our new international route connecting Uyo to Accra...",
		Image:       "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=800",
		Category:    "Routes",
		PublishedAt: "2025-01-08T14:00:00",
		Author:      "Ibom Air Communications",
	},
	{
		ID:          "3",
		Title:       "Ibom Flyer Loyalty Program Updates",
		Excerpt:     "Earn more points and enjoy exclusive benefits with our enhanced loyalty program.",
		Content:     "We have updated our Ibom Flyer program with more ways to earn and redeem points...",
		Image:       "https://images.unsplash.com/photo-1556388158-158ea5ccacbd?w=800",
		Category:    "Loyalty",
		PublishedAt: "2025-01-05T09:00:00",
		Author:      "Ibom Air Communications",
	},
}

var Advisories = []domain.TravelAdvisory{
	{
		ID:             "1",
		Title:          "Weather Advisory: Lagos Route",
		Severity:       domain.AdvisorySeverityInfo,
		AffectedRoutes: []string{"UYO-LOS", "LOS-UYO"},
		StartDate:      "2025-01-14T00:00:00",
		EndDate:        "2025-01-15T23:59:59",
		Message:        "Minor delays possible due to seasonal harmattan conditions. Please check flight status before departure.",
	},
}
