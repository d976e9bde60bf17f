package models

// GuideVisitCount число визитов гида за период
type GuideVisitCount struct {
	GuideID    int64  `json:"guideId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	VisitCount int    `json:"visitCount"`
}

// MonthlyOverviewResponse сводная статистика за месяц
type MonthlyOverviewResponse struct {
	Year           int               `json:"year"`
	Month          int               `json:"month"`
	TotalVisits    int               `json:"totalVisits"`
	DistinctGuides int               `json:"distinctGuides"`
	TotalTourists  int               `json:"totalTourists"`
	PresentCount   int               `json:"presentCount"`
	PresenceRate   float64           `json:"presenceRate"` // Проценты, 0..100
	GuideBreakdown []GuideVisitCount `json:"guideBreakdown"`
}

// GuidePerformanceResponse показатели гида за период
type GuidePerformanceResponse struct {
	GuideID         int64   `json:"guideId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalVisits     int     `json:"totalVisits"`
	AverageRating   float64 `json:"averageRating"` // Только по одобренным оценкам
	TotalTourists   int     `json:"totalTourists"`
	PresentTourists int     `json:"presentTourists"`
	PresenceRate    float64 `json:"presenceRate"`
}

// ActivityCount визиты по локации
type ActivityCount struct {
	Location   string `json:"location"`
	VisitCount int    `json:"visitCount"`
}

// PopularActivitiesResponse локации по убыванию числа визитов
type PopularActivitiesResponse struct {
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Activities []ActivityCount `json:"activities"`
}
