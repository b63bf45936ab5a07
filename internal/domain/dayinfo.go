package domain

import "time"

// DayInfo is the derived classification of one calendar day. It is
// recomputed on demand and never persisted.
//
// IsLabDay marks a college day that also carries a lab session; such a
// day keeps type college but drops to 2 available hours. Type lab is
// reserved for days with no college attendance at all (an explicit
// constraint, or a default lab weekday outside college term handling).
type DayInfo struct {
	Date           time.Time
	DayOfWeek      time.Weekday
	Type           DayType
	AvailableHours int
	IsLabDay       bool
	Constraint     *DayConstraint
}
