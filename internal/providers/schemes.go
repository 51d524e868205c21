package providers

// SchemeProvider supplies the government scheme catalogue.
type SchemeProvider interface {
	Schemes() ([]Scheme, error)
}

type Scheme struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Eligibility string `json:"eligibility"`
	Status      string `json:"status"`
	Link        string `json:"link"`
}

// StaticSchemeProvider serves the demo catalogue.
type StaticSchemeProvider struct{}

func NewStaticSchemeProvider() *StaticSchemeProvider {
	return &StaticSchemeProvider{}
}

func (p *StaticSchemeProvider) Schemes() ([]Scheme, error) {
	return []Scheme{
		{
			ID:          1,
			Title:       "PM-KISAN (Prime Minister Farmers Income Support)",
			Description: "Direct income support of ₹6,000 per year to all farmer families across the country.",
			Category:    "Income Support",
			Amount:      "₹6,000/year",
			Eligibility: "All landholding farmer families",
			Status:      "Active",
			Link:        "https://pmkisan.gov.in/",
		},
		{
			ID:          2,
			Title:       "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
			Description: "Crop insurance scheme providing financial support to farmers suffering crop loss/damage.",
			Category:    "Insurance",
			Amount:      "Up to ₹2 lakh",
			Eligibility: "All farmers growing notified crops",
			Status:      "Active",
			Link:        "https://pmfby.gov.in/",
		},
		{
			ID:          3,
			Title:       "Kisan Credit Card (KCC)",
			Description: "Credit support for agriculture and allied activities including crop cultivation.",
			Category:    "Credit",
			Amount:      "Based on crop pattern",
			Eligibility: "Farmers with land ownership documents",
			Status:      "Active",
			Link:        "https://www.pmkisan.gov.in/Rpt_BeneficiaryStatus_pub.aspx",
		},
		{
			ID:          4,
			Title:       "PM-KUSUM (Solar Agriculture Scheme)",
			Description: "Support for installation of solar pumps and grid connected solar power plants.",
			Category:    "Energy",
			Amount:      "60% subsidy",
			Eligibility: "Individual farmers, FPOs, cooperatives",
			Status:      "Active",
			Link:        "https://pmkusum.mnre.gov.in/",
		},
		{
			ID:          5,
			Title:       "National Agriculture Market (e-NAM)",
			Description: "Online trading platform for agricultural commodities to get better prices.",
			Category:    "Marketing",
			Amount:      "Platform access",
			Eligibility: "All farmers with produce",
			Status:      "Active",
			Link:        "https://enam.gov.in/",
		},
		{
			ID:          6,
			Title:       "Soil Health Card Scheme",
			Description: "Free soil testing and nutrient management recommendations for farmers.",
			Category:    "Advisory",
			Amount:      "Free testing",
			Eligibility: "All farmers",
			Status:      "Active",
			Link:        "https://soilhealth.dac.gov.in/",
		},
	}, nil
}
