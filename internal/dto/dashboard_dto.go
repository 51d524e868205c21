package dto

// FarmerStats mixes settled figures (summed from recorded trades) with
// projected figures (the demo estimate: 15% of listed crop value plus five
// rental days per month, 30% cost ratio).
type FarmerStats struct {
	CropListings       int64  `json:"crop_listings"`
	EquipmentListings  int64  `json:"equipment_listings"`
	TotalListings      int64  `json:"total_listings"`
	TotalEarnings      string `json:"total_earnings"`
	NetProfit          string `json:"net_profit"`
	ProjectedEarnings  string `json:"projected_earnings"`
	ProjectedNetProfit string `json:"projected_net_profit"`
}

type BuyerStats struct {
	TotalPurchases int64 `json:"total_purchases"`
	TotalRentals   int64 `json:"total_rentals"`
}

type DashboardResponse struct {
	Role  string      `json:"role"`
	Stats interface{} `json:"stats"`
}
