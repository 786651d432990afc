package domain

// StatusBucket is the per-status slice of an owner's listings.
type StatusBucket struct {
	Status Status
	Count  int64
	Views  int64
}

// Dashboard summarizes one agent's listings.
type Dashboard struct {
	StatusCounts    map[Status]int64 `json:"statusCounts"`
	TotalProperties int64            `json:"totalProperties"`
	TotalViews      int64            `json:"totalViews"`
	TotalInquiries  int64            `json:"totalInquiries"`
	RecentInquiries []Inquiry        `json:"recentInquiries"`
}

// BuildDashboard folds status buckets and the inquiry lists of the most
// recently updated listings into a Dashboard. Every known status is
// present in StatusCounts, zero when the owner has none.
func BuildDashboard(buckets []StatusBucket, totalInquiries int64, recent [][]Inquiry) Dashboard {
	d := Dashboard{
		StatusCounts:   make(map[Status]int64, len(Statuses)),
		TotalInquiries: totalInquiries,
	}
	for _, s := range Statuses {
		d.StatusCounts[s] = 0
	}
	for _, b := range buckets {
		d.StatusCounts[b.Status] += b.Count
		d.TotalProperties += b.Count
		d.TotalViews += b.Views
	}
	d.RecentInquiries = MergeRecentInquiries(recent, RecentInquiryLimit)
	return d
}
