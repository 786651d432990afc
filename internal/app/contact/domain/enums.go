package domain

// Category routes a submission to the right team.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryProperty    Category = "property"
	CategoryAgent       Category = "agent"
	CategoryTechnical   Category = "technical"
	CategoryComplaint   Category = "complaint"
	CategoryPartnership Category = "partnership"
)

var Categories = []Category{
	CategoryGeneral, CategoryProperty, CategoryAgent, CategoryTechnical, CategoryComplaint, CategoryPartnership,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Status is where a submission is in triage.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var Statuses = []Status{StatusNew, StatusInProgress, StatusResolved, StatusClosed}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}
