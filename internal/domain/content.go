package domain

type NewsPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	PublishedAt string `json:"publishedAt"`
	Author      string `json:"author"`
}

type AdvisorySeverity string

const (
	AdvisorySeverityInfo     AdvisorySeverity = "info"
	AdvisorySeverityWarning  AdvisorySeverity = "warning"
	AdvisorySeverityCritical AdvisorySeverity = "critical"
)

type TravelAdvisory struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Severity       AdvisorySeverity `json:"severity"`
	AffectedRoutes []string         `json:"affectedRoutes"`
	StartDate      string           `json:"startDate"`
	EndDate        string           `json:"endDate,omitempty"`
	Message        string           `json:"message"`
}

type Weather struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
}

type Destination struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Attractions    []string `json:"attractions"`
	Weather        Weather  `json:"weather"`
	FlightsPerWeek int      `json:"flightsPerWeek"`
	Price          float64  `json:"price,omitempty"`
}
