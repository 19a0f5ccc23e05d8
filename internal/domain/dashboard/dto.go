package dashboard

// StatsResponse carries the dashboard counters. present_days/absent_days are
// all-time totals; the *_today fields are the subset for the server's current
// date, so the payload is time-dependent and not cacheable.
type StatsResponse struct {
	TotalEmployees    int64 `json:"total_employees"`
	PresentDays       int64 `json:"present_days"`
	AbsentDays        int64 `json:"absent_days"`
	TotalPresentToday int64 `json:"total_present_today"`
	TotalAbsentToday  int64 `json:"total_absent_today"`
}

// PresentDaysItem is one row of the present-day leaderboard.
type PresentDaysItem struct {
	EmpID        int64  `json:"emp_id"`
	Name         string `json:"name"`
	Dept         string `json:"dept"`
	PresentCount int64  `json:"present_count"`
}

type PresentDaysResponse struct {
	Items []PresentDaysItem `json:"items"`
	Total int64             `json:"total"`
}
