package providers

// WeatherProvider supplies a location's forecast. The shipped implementation
// returns static demo data; a real feed implements the same interface.
type WeatherProvider interface {
	Forecast(location string) (*WeatherReport, error)
}

type WeatherReport struct {
	Location    string         `json:"location"`
	Current     Conditions     `json:"current"`
	Forecast    []DayForecast  `json:"forecast"`
	Alerts      []WeatherAlert `json:"alerts"`
	FarmingTips []string       `json:"farming_tips"`
}

type Conditions struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
}

type DayForecast struct {
	Day           string `json:"day"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	Precipitation int    `json:"precipitation"`
}

type WeatherAlert struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StaticWeatherProvider serves the demo forecast for any location.
type StaticWeatherProvider struct{}

func NewStaticWeatherProvider() *StaticWeatherProvider {
	return &StaticWeatherProvider{}
}

func (p *StaticWeatherProvider) Forecast(location string) (*WeatherReport, error) {
	if location == "" {
		location = "Punjab"
	}

	return &WeatherReport{
		Location: location,
		Current: Conditions{
			Temperature: 28,
			Condition:   "Partly Cloudy",
			Humidity:    65,
			WindSpeed:   12,
		},
		Forecast: []DayForecast{
			{Day: "Today", High: 32, Low: 24, Condition: "Partly Cloudy", Precipitation: 10},
			{Day: "Tomorrow", High: 30, Low: 22, Condition: "Light Rain", Precipitation: 70},
			{Day: "Day 3", High: 27, Low: 20, Condition: "Rainy", Precipitation: 85},
			{Day: "Day 4", High: 29, Low: 21, Condition: "Cloudy", Precipitation: 20},
			{Day: "Day 5", High: 31, Low: 23, Condition: "Sunny", Precipitation: 5},
		},
		Alerts: []WeatherAlert{
			{
				Type:        "warning",
				Title:       "Heavy Rainfall Expected",
				Description: "Heavy to very heavy rainfall is expected in the next 48 hours. Postpone spraying activities.",
			},
		},
		FarmingTips: []string{
			"Avoid irrigation for the next 2 days due to expected rainfall",
			"Consider harvesting mature crops before the heavy rain",
			"Ensure proper drainage in fields to prevent waterlogging",
			"Store harvested produce in covered areas",
		},
	}, nil
}
