package transport

// FrequentCaller is one entry of the repeat-caller ranking.
type FrequentCaller struct {
	CallerName  string `json:"callerName"`
	CallerPhone string `json:"callerPhone"`
	Times       int    `json:"times"`
	LastCall    string `json:"lastCall"`
}

// StaffCallCount is one bucket of the per-staff call volume.
type StaffCallCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StatsResponse is the KPI snapshot consumed by the dashboard.
type StatsResponse struct {
	TodaysCalls     int              `json:"todaysCalls"`
	OpenFollowups   int              `json:"openFollowups"`
	CompletionRate  int              `json:"completionRate"`
	FrequentCallers []FrequentCaller `json:"frequentCallers"`
	CallsPerStaff   []StaffCallCount `json:"callsPerStaff"`
}
